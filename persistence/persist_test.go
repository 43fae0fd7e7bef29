package persistence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boisgera/bitstream"
	"github.com/boisgera/bitstream/persistence"
)

func TestPersistFetch(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	s := bitstream.New()
	s.WriteBytes([]byte("payload"))
	s.WriteBools([]bool{true, false, true})

	req.NoError(store.Persist("sample", s))

	// Persisting is non-destructive.
	req.Equal(uint64(8*7+3), s.Len())

	got, err := store.Fetch("sample")
	req.NoError(err)
	req.True(got.Equal(s))
	req.Equal(s.String(), got.String())
}

func TestPersistSkipsConsumedHistory(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	s := bitstream.New()
	s.WriteBytes([]byte{0xFF, 0x41})
	_, err := s.ReadBytes(1)
	req.NoError(err)

	req.NoError(store.Persist("tail", s))
	got, err := store.Fetch("tail")
	req.NoError(err)
	req.Equal("01000001", got.String())
}

func TestPersistEmptyStream(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	req.NoError(store.Persist("empty", bitstream.New()))
	got, err := store.Fetch("empty")
	req.NoError(err)
	req.Equal(uint64(0), got.Len())
}

func TestFetchMissing(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	_, err := store.Fetch("nope")
	req.ErrorIs(err, persistence.ErrStreamNotExist)
}

func TestOverwrite(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	a := bitstream.New()
	a.WriteUint8(1)
	req.NoError(store.Persist("slot", a))

	b := bitstream.New()
	b.WriteUint8(2)
	req.NoError(store.Persist("slot", b))

	got, err := store.Fetch("slot")
	req.NoError(err)
	req.True(got.Equal(b))
	req.False(got.Equal(a))
}

func TestDelete(t *testing.T) {
	req := require.New(t)

	store := persistence.NewStore(t.TempDir(), nil)

	s := bitstream.New()
	s.WriteBool(true)
	req.NoError(store.Persist("gone", s))
	req.NoError(store.Delete("gone"))
	req.NoError(store.Delete("gone"))

	_, err := store.Fetch("gone")
	req.ErrorIs(err, persistence.ErrStreamNotExist)
}
