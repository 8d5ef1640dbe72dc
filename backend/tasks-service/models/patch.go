package models

import (
	"bytes"
	"encoding/json"
)

// Optional records whether a JSON field was present in the request body.
// A present null decodes to the zero value and still counts as set.
type Optional[T any] struct {
	Value T
	Set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// TaskPatch is the partial update body. Only fields with Set are applied.
type TaskPatch struct {
	Title       Optional[string]       `json:"title"`
	Description Optional[string]       `json:"description"`
	Priority    Optional[TaskPriority] `json:"priority"`
	DueDate     Optional[string]       `json:"dueDate"`
	Status      Optional[TaskStatus]   `json:"status"`
}

func (p TaskPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Description.Set && !p.Priority.Set && !p.DueDate.Set && !p.Status.Set
}

// MarshalJSON writes only the fields that are set, so a client can send the
// same partial body the server expects.
func (p TaskPatch) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 5)
	if p.Title.Set {
		body["title"] = p.Title.Value
	}
	if p.Description.Set {
		body["description"] = p.Description.Value
	}
	if p.Priority.Set {
		body["priority"] = p.Priority.Value
	}
	if p.DueDate.Set {
		body["dueDate"] = p.DueDate.Value
	}
	if p.Status.Set {
		body["status"] = p.Status.Value
	}
	return json.Marshal(body)
}
