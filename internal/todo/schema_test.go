package todo

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     CreateRequest
		wantErr  bool
		wantPath string
	}{
		{
			name: "valid with priority",
			body: `{"name":"Buy milk","description":"2% milk, 1 gal","priority":2}`,
			want: CreateRequest{Name: "Buy milk", Description: "2% milk, 1 gal", Priority: PriorityMedium},
		},
		{
			name: "priority defaults to low",
			body: `{"name":"Buy milk","description":"2% milk, 1 gal"}`,
			want: CreateRequest{Name: "Buy milk", Description: "2% milk, 1 gal", Priority: PriorityLow},
		},
		{
			name:     "name too short",
			body:     `{"name":"ab","description":"long enough"}`,
			wantErr:  true,
			wantPath: "name",
		},
		{
			name:     "name too long",
			body:     `{"name":"` + strings.Repeat("a", 101) + `","description":"long enough"}`,
			wantErr:  true,
			wantPath: "name",
		},
		{
			name:     "description too short",
			body:     `{"name":"Buy milk","description":"abcd"}`,
			wantErr:  true,
			wantPath: "description",
		},
		{
			name:     "description too long",
			body:     `{"name":"Buy milk","description":"` + strings.Repeat("d", 513) + `"}`,
			wantErr:  true,
			wantPath: "description",
		},
		{
			name:    "missing name",
			body:    `{"description":"long enough"}`,
			wantErr: true,
		},
		{
			name:    "missing description",
			body:    `{"name":"Buy milk"}`,
			wantErr: true,
		},
		{
			name:     "priority out of range",
			body:     `{"name":"Buy milk","description":"long enough","priority":4}`,
			wantErr:  true,
			wantPath: "priority",
		},
		{
			name:     "priority wrong type",
			body:     `{"name":"Buy milk","description":"long enough","priority":"high"}`,
			wantErr:  true,
			wantPath: "priority",
		},
		{
			name:    "malformed JSON",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "not an object",
			body:    `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCreate([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if tt.wantPath != "" {
					assertErrorPath(t, err, tt.wantPath)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantPath string
		check    func(t *testing.T, got UpdateRequest)
	}{
		{
			name: "empty patch",
			body: `{}`,
			check: func(t *testing.T, got UpdateRequest) {
				if !got.IsZero() {
					t.Errorf("empty patch decoded non-zero: %+v", got)
				}
			},
		},
		{
			name: "priority only",
			body: `{"priority":3}`,
			check: func(t *testing.T, got UpdateRequest) {
				if got.Name != nil || got.Description != nil {
					t.Errorf("unexpected fields set: %+v", got)
				}
				if got.Priority == nil || *got.Priority != PriorityHigh {
					t.Errorf("priority: got %v, want high", got.Priority)
				}
			},
		},
		{
			name: "null fields treated as absent",
			body: `{"name":null,"description":null,"priority":null}`,
			check: func(t *testing.T, got UpdateRequest) {
				if !got.IsZero() {
					t.Errorf("all-null patch decoded non-zero: %+v", got)
				}
			},
		},
		{
			name: "name and description",
			body: `{"name":"Walk dog","description":"around the block twice"}`,
			check: func(t *testing.T, got UpdateRequest) {
				if got.Name == nil || *got.Name != "Walk dog" {
					t.Errorf("name: got %v", got.Name)
				}
				if got.Description == nil || *got.Description != "around the block twice" {
					t.Errorf("description: got %v", got.Description)
				}
				if got.Priority != nil {
					t.Errorf("priority should be nil, got %v", *got.Priority)
				}
			},
		},
		{
			name:     "name too short",
			body:     `{"name":"ab"}`,
			wantErr:  true,
			wantPath: "name",
		},
		{
			name:     "description too long",
			body:     `{"description":"` + strings.Repeat("d", 513) + `"}`,
			wantErr:  true,
			wantPath: "description",
		},
		{
			name:     "priority out of range",
			body:     `{"priority":0}`,
			wantErr:  true,
			wantPath: "priority",
		},
		{
			name:    "malformed JSON",
			body:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateUpdate([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				if tt.wantPath != "" {
					assertErrorPath(t, err, tt.wantPath)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

// assertErrorPath checks that at least one field error points at path.
func assertErrorPath(t *testing.T, err error, path string) {
	t.Helper()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}
	for _, ve := range verrs {
		if ve.Path == path {
			return
		}
	}
	t.Errorf("no error for path %q in %v", path, verrs)
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"/name", "name"},
		{"#/priority", "priority"},
		{"/tasks/0/name", "tasks[0].name"},
	}
	for _, tt := range tests {
		if got := jsonPointerToPath(tt.ptr); got != tt.want {
			t.Errorf("jsonPointerToPath(%q): got %q, want %q", tt.ptr, got, tt.want)
		}
	}
}
