package backup

import "errors"

var ErrMalformedDocument = errors.New("malformed backup document")
