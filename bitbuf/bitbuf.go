// Package bitbuf implements a growable in-memory byte buffer with
// bit-granularity access via two absolute bit cursors, following the
// big-endian pattern, where most-significant bits are written/read
// first within each byte.
package bitbuf

import (
	"fmt"
)

// UnderflowError reports a read that requested more bits than remain
// between the read and write cursors.
type UnderflowError struct {
	Requested uint64
	Available uint64
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("bit underflow; requested: %d, available: %d", e.Requested, e.Available)
}
