package halfedge

import "errors"

// Precondition errors. Operators wrap these with the offending handle and
// return them before mutating anything.
var (
	ErrNotOwned       = errors.New("element not owned by mesh")
	ErrUnused         = errors.New("element is unused")
	ErrBoundary       = errors.New("operation not valid on a boundary element")
	ErrTopology       = errors.New("invalid topology")
	ErrLength         = errors.New("attribute length does not match element count")
	ErrNotImplemented = errors.New("not implemented")
)
