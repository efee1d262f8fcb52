package user

import "errors"

var (
	ErrNotRegistered     = errors.New("user not registered")
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrInvalidPin        = errors.New("invalid pin")
	ErrValidation        = errors.New("validation failed")
)

type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func validationError(code, message string) error {
	return &DomainError{Err: ErrValidation, Message: message, Code: code}
}
