package todo

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Priority is the urgency classification of a to-do item.
// Values are ordered: a higher value means more urgent.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// IsValid reports whether p is one of the three defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority converts an integer wire value to a Priority.
func ParsePriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority %d, must be 1 (low), 2 (medium), or 3 (high)", v)
	}
	return p, nil
}

// Field length constraints, shared by create and update validation.
const (
	NameMinLen        = 3
	NameMaxLen        = 100
	DescriptionMinLen = 5
	DescriptionMaxLen = 512
)

// Todo is a single task record.
type Todo struct {
	ID          int      `json:"todo_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// CreateRequest is the body of a create call. Priority is optional
// and defaults to low when omitted.
type CreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority,omitempty"`
}

// UpdateRequest is the body of a partial update. Every field is a
// pointer so that "not supplied" is distinguishable from a supplied
// value; nil fields leave the stored record untouched.
type UpdateRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
}

// IsZero reports whether the patch supplies no fields at all.
func (r UpdateRequest) IsZero() bool {
	return r.Name == nil && r.Description == nil && r.Priority == nil
}

// Seed generates n synthetic records with sequential ids starting at 0
// and uniformly random priorities.
func Seed(n int) []Todo {
	todos := make([]Todo, 0, n)
	for i := 0; i < n; i++ {
		todos = append(todos, Todo{
			ID:          i,
			Name:        fmt.Sprintf("todo%d", i),
			Description: fmt.Sprintf("description%d", i),
			Priority:    Priority(rand.IntN(3) + 1),
		})
	}
	return todos
}

// ValidationError is a field-level validation failure with context.
type ValidationError struct {
	Path string // JSON path to the offending field, empty for body-level errors
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors aggregates every failure found in one request body.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}
