package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boisgera/bitstream"
)

func TestSnapshotRestoreInOrder(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s0 := s.Save()
	s.WriteUint8('A')
	s1 := s.Save()
	s.WriteUint8('B')

	req.NoError(s.Restore(s1))
	req.Equal("01000001", s.String())

	req.NoError(s.Restore(s0))
	req.Equal("", s.String())
}

func TestSnapshotRestoreInvalidatesNewer(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s0 := s.Save()
	s.WriteUint8('A')
	s1 := s.Save()
	s.WriteUint8('B')

	req.NoError(s.Restore(s0))
	req.Equal("", s.String())

	err := s.Restore(s1)
	req.Error(err)
	serr := &bitstream.SnapshotError{}
	req.ErrorAs(err, &serr)
}

func TestSnapshotReRestore(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s.WriteBool(true)
	s1 := s.Save()
	s.WriteBool(false)

	// An inclusive restore keeps the found snapshot on the stack, so
	// restoring it again is valid.
	req.NoError(s.Restore(s1))
	s.WriteBool(true)
	req.NoError(s.Restore(s1))
	req.Equal("1", s.String())
}

func TestSaveDeduplicatesIdenticalCursors(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s.WriteBool(true)
	s1 := s.Save()
	s2 := s.Save()
	req.Equal(s1, s2)

	s.WriteBool(false)
	s3 := s.Save()
	req.NotEqual(s1, s3)
}

func TestSnapshotWrongStream(t *testing.T) {
	req := require.New(t)

	a := bitstream.New()
	b := bitstream.New()
	snap := a.Save()

	err := b.Restore(snap)
	req.Error(err)
	serr := &bitstream.SnapshotError{}
	req.ErrorAs(err, &serr)
}

// Restoring affects only cursors; a partial write's bytes stay in the
// buffer and are overwritten by the next write.
func TestRestoreDoesNotUnwrite(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s.WriteUint8(0x0F)
	snap := s.Save()

	s.WriteUint8(0xFF)
	req.NoError(s.Restore(snap))
	req.Equal("00001111", s.String())

	s.WriteUint8(0x55)
	req.Equal("0000111101010101", s.String())
}

// A failed read bracketed by a snapshot leaves no trace.
func TestSnapshotBracketsFailedRead(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s.WriteBytes([]byte("AB"))

	snap := s.Save()
	_, err := s.ReadBytes(1)
	req.NoError(err)
	_, err = s.ReadBytes(2)
	req.Error(err)
	req.NoError(s.Restore(snap))
	req.Equal("0100000101000010", s.String())
}

func TestSnapshotAffectsReadAndWriteCursors(t *testing.T) {
	req := require.New(t)

	s := bitstream.New()
	s.WriteBytes([]byte{0xAA, 0xBB})
	_, err := s.ReadBytes(1)
	req.NoError(err)

	snap := s.Save()
	s.WriteUint8(0xCC)
	_, err = s.ReadBytes(1)
	req.NoError(err)

	req.NoError(s.Restore(snap))
	req.Equal("10111011", s.String())
}
