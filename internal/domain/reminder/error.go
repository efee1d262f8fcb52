package reminder

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("reminder not found")
	ErrValidation = errors.New("invalid reminder")
)
