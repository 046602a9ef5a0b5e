package kafka

import "fmt"

// PermanentError is a publish failure the broker will never accept, such as
// an event that does not encode. Retrying it is pointless.
type PermanentError struct {
	EventID string
	Err     error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("delivery event %q rejected", e.EventID)
	}
	return fmt.Sprintf("delivery event %q rejected: %v", e.EventID, e.Err)
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent marks err for the given event as not retryable.
func Permanent(eventID string, err error) error {
	return PermanentError{EventID: eventID, Err: err}
}
