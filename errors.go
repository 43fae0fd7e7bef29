package bitstream

import (
	"errors"
	"fmt"

	"github.com/boisgera/bitstream/bitbuf"
)

// ReadErrorKind classifies the expected failure modes of a read.
type ReadErrorKind int

const (
	// ReadUnderflow indicates the requested bit or item count exceeds
	// what remains between the cursors.
	ReadUnderflow ReadErrorKind = iota

	// ReadMisaligned indicates a whole-byte read found a remaining
	// length that is not a multiple of 8.
	ReadMisaligned
)

// ReadError reports an expected end-of-data or undecodable condition.
// The stream's read cursor may be partially advanced by a failed
// multi-item read; callers needing atomicity bracket the read with
// Save/Restore.
type ReadError struct {
	Kind      ReadErrorKind
	Requested uint64
	Available uint64
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case ReadMisaligned:
		return fmt.Sprintf("read misaligned; expected: a multiple of 8 remaining bits, available: %d", e.Available)
	default:
		return fmt.Sprintf("read underflow; requested: %d bits, available: %d", e.Requested, e.Available)
	}
}

// WriteErrorKind classifies write rejections.
type WriteErrorKind int

const (
	// WriteInvalidValue indicates a writer rejected a value it cannot
	// encode.
	WriteInvalidValue WriteErrorKind = iota
)

// WriteError reports a value rejected by a writer.
type WriteError struct {
	Kind   WriteErrorKind
	Reason string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write rejected; %s", e.Reason)
}

// UnsupportedTypeError reports an identifier that resolves to neither a
// built-in codec nor a registered entry.
type UnsupportedTypeError struct {
	Identifier string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type identifier: %s", e.Identifier)
}

// SnapshotError reports a restore with a snapshot that is not owned by
// the stream or was already invalidated by a more recent restore.
type SnapshotError struct {
	Reason string
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot; %s", e.Reason)
}

// asReadError translates buffer-level underflows into the public read
// error taxonomy.
func asReadError(err error) error {
	var u *bitbuf.UnderflowError
	if errors.As(err, &u) {
		return &ReadError{Kind: ReadUnderflow, Requested: u.Requested, Available: u.Available}
	}
	return err
}
