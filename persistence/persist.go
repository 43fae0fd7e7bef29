// Package persistence stores streams on disk. It is composition on top
// of the core read/write contract: a persisted record carries only the
// remaining bit content, so consumed history is not written out.
package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/nullstyle/go-xdr/xdr3"

	"github.com/boisgera/bitstream"
	"github.com/boisgera/bitstream/shared"
)

var ErrStreamNotExist = errors.New("stream doesn't exist")

// streamRecord is the XDR-encoded on-disk form of a stream. Data holds
// the remaining content packed most-significant bit first; NumBits
// marks where the content ends within the last byte.
type streamRecord struct {
	NumBits uint64
	Data    []byte
}

// Store persists streams as files under a data directory.
type Store struct {
	dataDir string
	logger  shared.Logger
}

// NewStore returns a store writing under datadir, or DefaultDataDir if
// empty. A nil logger disables logging.
func NewStore(datadir string, logger shared.Logger) *Store {
	if datadir == "" {
		datadir = DefaultDataDir
	}
	if logger == nil {
		logger = shared.NoopLogger{}
	}
	return &Store{dataDir: datadir, logger: logger}
}

// Persist writes s's remaining content to the file for name,
// overwriting any previous record. The stream is not consumed.
func (st *Store) Persist(name string, s *bitstream.Stream) error {
	rec := streamRecord{NumBits: s.Len()}

	c := s.Copy()
	whole, err := c.ReadBytes(int(rec.NumBits / 8))
	if err != nil {
		return err
	}
	rec.Data = whole
	if rec.NumBits%8 != 0 {
		var last byte
		for i := uint64(0); i < rec.NumBits%8; i++ {
			bit, err := c.ReadBool()
			if err != nil {
				return err
			}
			if bit {
				last |= 0x80 >> i
			}
		}
		rec.Data = append(rec.Data, last)
	}

	var w bytes.Buffer
	if _, err := xdr.Marshal(&w, &rec); err != nil {
		return fmt.Errorf("serialization failure: %v", err)
	}

	if err := os.MkdirAll(st.dataDir, OwnerReadWriteExec); err != nil {
		return fmt.Errorf("dir creation failure: %v", err)
	}

	filename := streamFilename(st.dataDir, name)
	if err := os.WriteFile(filename, w.Bytes(), OwnerReadWrite); err != nil {
		return fmt.Errorf("write to disk failure: %v", err)
	}

	st.logger.Info("persisted stream %q: %d bits, %v on disk",
		name, rec.NumBits, bytefmt.ByteSize(uint64(w.Len())))

	return nil
}

// Fetch reads the record for name back into a fresh stream.
func (st *Store) Fetch(name string) (*bitstream.Stream, error) {
	data, err := os.ReadFile(streamFilename(st.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStreamNotExist
		}
		return nil, fmt.Errorf("read file failure: %v", err)
	}

	rec := streamRecord{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &rec); err != nil {
		return nil, err
	}
	if uint64(len(rec.Data)) != shared.NumBytes(rec.NumBits) {
		return nil, fmt.Errorf("invalid stream record; expected: %d bytes of content, found: %d",
			shared.NumBytes(rec.NumBits), len(rec.Data))
	}

	s := bitstream.New()
	whole := rec.NumBits / 8
	s.WriteBytes(rec.Data[:whole])
	for i := uint64(0); i < rec.NumBits%8; i++ {
		s.WriteBool(rec.Data[whole]&(0x80>>i) != 0)
	}

	st.logger.Debug("fetched stream %q: %d bits", name, rec.NumBits)

	return s, nil
}

// Delete removes the record for name. Deleting a missing record is not
// an error.
func (st *Store) Delete(name string) error {
	err := os.Remove(streamFilename(st.dataDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete failure: %v", err)
	}
	return nil
}
