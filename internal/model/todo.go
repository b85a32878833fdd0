// Package model defines the domain types for tudu.
package model

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Status is the two-state completion status of a todo.
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusDone       Status = "Done"
)

// ErrNotFound is returned by collection operations that target an id
// not present in the list.
var ErrNotFound = errors.New("todo not found")

// Todo is a single task record. The id is assigned at creation and
// never changes; the text is never empty.
type Todo struct {
	ID     string `json:"id"`
	Text   string `json:"todo"`
	Status Status `json:"status"`
}

// Done reports whether the todo has been completed.
func (t Todo) Done() bool { return t.Status == StatusDone }

// New builds a Todo with a fresh id and status Incomplete.
// Empty (or whitespace-only) text is a validation error.
func New(text string) (Todo, error) {
	text = strings.TrimSpace(text)
	if err := validation.Validate(text, validation.Required.Error("todo cannot be empty")); err != nil {
		return Todo{}, fmt.Errorf("todo: %w", err)
	}
	return Todo{
		ID:     uuid.NewString(),
		Text:   text,
		Status: StatusIncomplete,
	}, nil
}

// List is an insertion-ordered todo collection with unique ids.
type List []Todo

// Unfinished returns the subset still marked Incomplete, preserving
// insertion order.
func (l List) Unfinished() List {
	var out List
	for _, t := range l {
		if t.Status == StatusIncomplete {
			out = append(out, t)
		}
	}
	return out
}

// Complete marks the entry with the given id as Done. Every other
// entry keeps whatever status it already had.
func (l List) Complete(id string) error {
	for i := range l {
		if l[i].ID == id {
			l[i].Status = StatusDone
			return nil
		}
	}
	return ErrNotFound
}

// Stats counts completed and pending entries.
func (l List) Stats() (done, pending int) {
	for _, t := range l {
		if t.Done() {
			done++
		} else {
			pending++
		}
	}
	return
}
