package repositories

import "errors"

// ErrNotFound is returned when a referenced entity id does not resolve.
var ErrNotFound = errors.New("not found")
