package databases

import "errors"

// ErrNotInserted is returned when an insert produced no inserted id
var ErrNotInserted = errors.New("document was not inserted")
