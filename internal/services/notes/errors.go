package notes

import "errors"

// ErrNoteNotFound - no note with the referenced id exists.
var ErrNoteNotFound = errors.New("note not found")

// ErrStorageConflict is returned when the backend rejects a write over a
// data constraint. The wrapped error carries the constraint description.
var ErrStorageConflict = errors.New("storage conflict")

// ErrStorageUnavailable covers every other backend fault (connectivity,
// timeout, unexpected driver error).
var ErrStorageUnavailable = errors.New("storage unavailable")
