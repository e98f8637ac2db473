package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. malformed exchange, unknown section, bad frequency).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when a submitted contact duplicates an already
// logged contact under contest rules (same callsign, band, and mode).
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicate = errors.New("duplicate contact")

// ErrSerialization is returned by export functions when a contact cannot be
// rendered in the requested log format (e.g. missing required field).
// A partial contest log is invalid for submission, so the whole export fails.
var ErrSerialization = errors.New("serialization error")
