package merge

import "errors"

// Merge errors.
var (
	// ErrMalformedSourceMesh means a source mesh breaks the accepted format:
	// material count differs from submesh count, attribute arrays are not
	// parallel, or a submesh indexes vertices outside its own vertex range.
	ErrMalformedSourceMesh = errors.New("malformed source mesh")

	// ErrMissingGeometry means a node selected for merging has no mesh or
	// no material list.
	ErrMissingGeometry = errors.New("missing geometry component")

	// ErrTooManyVertices means the merged mesh has more than 2^32 vertices
	// and cannot be addressed with 32-bit indices.
	ErrTooManyVertices = errors.New("merged vertex count exceeds 32-bit index range")

	// ErrPersistence wraps failures from saving a merged mesh. The merged
	// mesh and anything built from it remain valid.
	ErrPersistence = errors.New("persisting merged mesh")
)
