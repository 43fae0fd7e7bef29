package bitstream

// Snapshot is an immutable record of a stream's cursor positions at a
// point in time. It carries the owning stream's identity and a
// monotonically increasing sequence id rather than a live reference;
// validity is checked against the stream's snapshot stack at restore
// time.
//
// A snapshot captures cursor positions only. Restoring past a partial
// write does not un-write buffer contents; later writes simply
// overwrite the bytes beyond the restored write cursor.
type Snapshot struct {
	stream   uint64
	readOff  uint64
	writeOff uint64
	seq      uint64
}

// Save captures the current cursor positions and pushes them on the
// stream's snapshot stack. If the cursors match the most recent
// snapshot, that snapshot is returned instead of pushing a duplicate.
func (s *Stream) Save() Snapshot {
	top := s.snaps[len(s.snaps)-1]
	if top.readOff == s.buf.ReadOffset() && top.writeOff == s.buf.WriteOffset() {
		return top
	}
	s.seq++
	snap := Snapshot{
		stream:   s.id,
		readOff:  s.buf.ReadOffset(),
		writeOff: s.buf.WriteOffset(),
		seq:      s.seq,
	}
	s.snaps = append(s.snaps, snap)
	return snap
}

// Restore rewinds the stream's cursors to snap and discards every
// snapshot taken after it. Snapshots may only be restored in an order
// consistent with a LIFO discipline: restoring an older snapshot
// invalidates all newer ones, and restoring an already-invalidated
// snapshot fails with a SnapshotError.
func (s *Stream) Restore(snap Snapshot) error {
	if snap.stream != s.id {
		return &SnapshotError{Reason: "snapshot belongs to another stream"}
	}
	for i := len(s.snaps) - 1; i >= 0; i-- {
		if s.snaps[i] == snap {
			s.snaps = s.snaps[:i+1]
			s.buf.SetOffsets(snap.readOff, snap.writeOff)
			return nil
		}
	}
	return &SnapshotError{Reason: "snapshot invalidated by an earlier restore"}
}
