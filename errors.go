package tablemap

import "errors"

// ErrInvalidIdentifier reports an identifier that cannot be converted, such
// as an empty name. Callers can match it with errors.Is.
var ErrInvalidIdentifier = errors.New("tablemap: invalid identifier")
