// internal/domain/homework/response.go
package homework

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is the decoded body of a homework_statuses call.
// Fields are kept raw so that missing keys can be told apart from empty ones.
type Response struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate json.RawMessage `json:"current_date"`
}

type record struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// Check validates the top-level shape of a response and returns the raw
// homework records, most recent first. Records themselves are not inspected.
// An empty slice means there are no new statuses.
func (r *Response) Check() ([]json.RawMessage, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: empty response", ErrValidation)
	}
	if isAbsent(r.Homeworks) {
		return nil, fmt.Errorf("%w: missing key %q", ErrValidation, "homeworks")
	}
	if isAbsent(r.CurrentDate) {
		return nil, fmt.Errorf("%w: missing key %q", ErrValidation, "current_date")
	}

	var ts int64
	if err := json.Unmarshal(r.CurrentDate, &ts); err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer timestamp", ErrValidation, "current_date")
	}

	trimmed := bytes.TrimSpace(r.Homeworks)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %q is not a list", ErrValidation, "homeworks")
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: cannot decode homeworks: %v", ErrValidation, err)
	}
	return records, nil
}

// Parse decodes a single homework record; both homework_name and status are required.
func Parse(raw json.RawMessage) (Homework, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Homework{}, fmt.Errorf("%w: cannot decode homework: %v", ErrValidation, err)
	}
	if rec.Name == nil {
		return Homework{}, fmt.Errorf("%w: homework has no key %q", ErrValidation, "homework_name")
	}
	if rec.Status == nil {
		return Homework{}, fmt.Errorf("%w: homework has no key %q", ErrValidation, "status")
	}
	return Homework{Name: *rec.Name, Status: Status(*rec.Status)}, nil
}

// Checkpoint returns the server-reported timestamp, or fallback when it is
// absent or not an integer.
func (r *Response) Checkpoint(fallback int64) int64 {
	if r == nil || isAbsent(r.CurrentDate) {
		return fallback
	}
	var ts int64
	if err := json.Unmarshal(r.CurrentDate, &ts); err != nil {
		return fallback
	}
	return ts
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
