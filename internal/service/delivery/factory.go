package delivery

import "github.com/google/uuid"

type uuidFactory struct{}

// NewIDFactory returns an IDFactory backed by random UUIDs.
func NewIDFactory() IDFactory {
	return uuidFactory{}
}

// NewID returns a random UUID string.
func (uuidFactory) NewID() string {
	return uuid.NewString()
}
