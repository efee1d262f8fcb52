package session

import "errors"

var (
	ErrWrongPhase = errors.New("operation is not available in the current phase")
	ErrLocked     = errors.New("diary is locked")
)
