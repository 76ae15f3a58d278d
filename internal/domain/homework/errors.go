package homework

import (
	"errors"
	"fmt"
)

var ErrFetch = errors.New("review API request failed")
var ErrValidation = errors.New("unexpected review API response")
var ErrUnknownStatus = errors.New("unknown homework status")
var ErrNotify = errors.New("message not sent")

// FetchError describes a failed request to the review API.
// StatusCode is zero when no response was received.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status code %d", ErrFetch, e.StatusCode)
	}
	return fmt.Sprintf("%v: %v", ErrFetch, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}
