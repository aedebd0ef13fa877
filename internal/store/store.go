// Package store owns the in-memory to-do collection.
package store

import (
	"sync"

	"github.com/peterkahumu/fastapi-todo-project/internal/todo"
)

// Store holds the process-wide to-do collection in insertion order.
// All access goes through a single mutex; it is safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	todos []todo.Todo
}

// New constructs a Store pre-populated with seed synthetic records
// (ids 0..seed-1, random priorities).
func New(seed int) *Store {
	return &Store{todos: todo.Seed(seed)}
}

// List returns the collection in insertion order. A nil firstN returns
// everything; a non-negative firstN returns the first min(firstN, size)
// records; a negative firstN fails with ErrNegativeLimit.
func (s *Store) List(firstN *int) ([]todo.Todo, error) {
	if firstN != nil && *firstN < 0 {
		return nil, ErrNegativeLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.todos)
	if firstN != nil && *firstN < n {
		n = *firstN
	}
	out := make([]todo.Todo, n)
	copy(out, s.todos[:n])
	return out, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id int) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			return s.todos[i], nil
		}
	}
	return todo.Todo{}, ErrNotFound
}

// Create appends a new record, assigning it one more than the maximum
// id currently present (0 when the collection is empty).
func (s *Store) Create(req todo.CreateRequest) todo.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := -1
	for i := range s.todos {
		if s.todos[i].ID > maxID {
			maxID = s.todos[i].ID
		}
	}

	t := todo.Todo{
		ID:          maxID + 1,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
	}
	s.todos = append(s.todos, t)
	return t
}

// Update overwrites the fields supplied in the patch on the record with
// the given id and returns the updated record. Nil patch fields are
// left untouched. Fails with ErrNotFound when the id is absent.
func (s *Store) Update(id int, patch todo.UpdateRequest) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.todos[i].Name = *patch.Name
		}
		if patch.Description != nil {
			s.todos[i].Description = *patch.Description
		}
		if patch.Priority != nil {
			s.todos[i].Priority = *patch.Priority
		}
		return s.todos[i], nil
	}
	return todo.Todo{}, ErrNotFound
}

// Delete removes the record with the given id, preserving the order of
// the remaining records, and returns its final state. Fails with
// ErrNotFound when the id is absent. Ids of deleted records are not
// retired: the next create still assigns max-present + 1.
func (s *Store) Delete(id int) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			removed := s.todos[i]
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return removed, nil
		}
	}
	return todo.Todo{}, ErrNotFound
}

// Len returns the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.todos)
}
