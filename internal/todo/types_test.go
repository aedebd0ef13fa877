package todo

import (
	"fmt"
	"testing"
)

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityLow, "low"},
		{PriorityMedium, "medium"},
		{PriorityHigh, "high"},
		{Priority(7), "priority(7)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String(): got %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		v       int
		want    Priority
		wantErr bool
	}{
		{name: "low", v: 1, want: PriorityLow},
		{name: "medium", v: 2, want: PriorityMedium},
		{name: "high", v: 3, want: PriorityHigh},
		{name: "zero", v: 0, wantErr: true},
		{name: "out of range", v: 4, wantErr: true},
		{name: "negative", v: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePriority(%d): expected error, got %v", tt.v, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%d): unexpected error: %v", tt.v, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%d): got %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh) {
		t.Errorf("priorities not ordered: low=%d medium=%d high=%d",
			PriorityLow, PriorityMedium, PriorityHigh)
	}
}

func TestSeed(t *testing.T) {
	todos := Seed(10)
	if len(todos) != 10 {
		t.Fatalf("Seed(10): got %d records, want 10", len(todos))
	}
	for i, td := range todos {
		if td.ID != i {
			t.Errorf("record %d: id %d, want %d", i, td.ID, i)
		}
		wantName := fmt.Sprintf("todo%d", i)
		if td.Name != wantName {
			t.Errorf("record %d: name %q, want %q", i, td.Name, wantName)
		}
		if !td.Priority.IsValid() {
			t.Errorf("record %d: invalid priority %d", i, td.Priority)
		}
		if len(td.Name) < NameMinLen || len(td.Name) > NameMaxLen {
			t.Errorf("record %d: name length %d out of bounds", i, len(td.Name))
		}
		if len(td.Description) < DescriptionMinLen || len(td.Description) > DescriptionMaxLen {
			t.Errorf("record %d: description length %d out of bounds", i, len(td.Description))
		}
	}
}

func TestSeedEmpty(t *testing.T) {
	if got := Seed(0); len(got) != 0 {
		t.Errorf("Seed(0): got %d records, want 0", len(got))
	}
}

func TestUpdateRequestIsZero(t *testing.T) {
	if !(UpdateRequest{}).IsZero() {
		t.Error("empty patch: IsZero() = false, want true")
	}
	name := "shopping"
	if (UpdateRequest{Name: &name}).IsZero() {
		t.Error("patch with name: IsZero() = true, want false")
	}
}
