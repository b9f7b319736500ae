package guard

import "errors"

// ErrInvalidArgument is the identity shared by every guard failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned when a guard's precondition is violated.
// Message is the caller-supplied text and may be empty.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message == "" {
		return ErrInvalidArgument.Error()
	}
	return e.Message
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(message string) error {
	return &InvalidArgumentError{Message: message}
}

// IsInvalidArgument reports whether err is a guard failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// MessageOf returns the caller message carried by a guard failure,
// or an empty string if err is not one or has no message.
func MessageOf(err error) string {
	var iae *InvalidArgumentError
	if errors.As(err, &iae) {
		return iae.Message
	}
	return ""
}
