// Package testutil builds $I fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/trashkit/internal/format"
)

// Midnight2020 is 2020-01-01T00:00:00Z as a FILETIME.
const Midnight2020 format.Filetime = 132223104000000000

// RecordBytes encodes a Windows 10 $I record for name. NameLength is the byte
// count of the UTF-16 name including a NUL terminator, which is appended.
func RecordBytes(t *testing.T, name string, size uint64, deleted format.Filetime) []byte {
	t.Helper()

	full := name + "\x00"
	return format.AppendRecord(nil, format.Record{
		Header:       format.VersionWindows,
		FileSize:     size,
		DeletionTime: deleted,
		NameLength:   uint32(len(format.EncodeUTF16LE(full))),
		FileName:     full,
	})
}

// WriteFile writes data to a file named name inside a per-test temp directory
// and returns its path.
//
// Example:
//
//	path := testutil.WriteFile(t, "$IABC123.txt", testutil.RecordBytes(t, `C:\a.txt`, 1, testutil.Midnight2020))
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", path, err)
	}
	return path
}
