// Package matrix: sentinel error set.
//
// All errors returned by this package are the sentinels below, matched by
// callers via errors.Is. Context is added with fmt.Errorf("...: %w", ...)
// at the return site only; the sentinels themselves stay bare.
package matrix

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Build.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced vertex label is not
	// present in the snapshot's vertex index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
