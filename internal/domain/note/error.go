package note

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("note not found")
	ErrValidation     = errors.New("invalid note")
	ErrImageTooLarge  = errors.New("image is too large")
	ErrNotImage       = errors.New("file is not an image")
	ErrInvalidDataURI = errors.New("invalid data uri")
)
