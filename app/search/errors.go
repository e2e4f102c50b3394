package search

import (
	"fmt"
	"strings"
)

// ValidationError marks a request whose parameters failed validation, so the
// HTTP layer answers 400 instead of treating it as a server fault.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// AggregateFailure is returned when every enabled source failed and no result
// set could be assembled at all. A single working source never produces it.
type AggregateFailure struct {
	Errors []error
}

func (e *AggregateFailure) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("all sources failed: %s", strings.Join(msgs, "; "))
}
