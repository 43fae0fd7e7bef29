package persistence

import (
	"path/filepath"

	"github.com/spacemeshos/smutil"
)

// OwnerReadWriteExec is a standard owner read / write / exec file permission.
const OwnerReadWriteExec = 0700

// OwnerReadWrite is a standard owner read / write file permission.
const OwnerReadWrite = 0600

const streamFileExt = ".bits"

// DefaultDataDir is where streams are persisted when the store is
// created with an empty data directory.
var DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "bitstream", "data")

func streamFilename(datadir, name string) string {
	return filepath.Join(datadir, name+streamFileExt)
}
