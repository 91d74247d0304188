package spacetime

import "errors"

// Sentinel errors for the extrusion package. Construction problems wrap
// ErrConfiguration, query problems wrap ErrIndexOutOfRange. Errors raised by
// the underlying spatial domain during delegated evaluation are returned
// unchanged, never wrapped - the extrusion layer has no basis for
// reinterpreting them.
var (
	ErrConfiguration   = errors.New("invalid extrusion configuration")
	ErrIndexOutOfRange = errors.New("index out of range")
)
