package repositories

import "errors"

// ErrNotFound is returned when the record a repository operation targets
// does not exist. Callers must not treat a missing target as a silent no-op.
var ErrNotFound = errors.New("record not found")
