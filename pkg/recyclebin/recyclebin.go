package recyclebin

import (
	"fmt"
	"io"

	"github.com/joshuapare/trashkit/internal/format"
	"github.com/joshuapare/trashkit/internal/mmfile"
)

// Record is one decoded $I file. See format.Record for the field layout.
type Record = format.Record

// SystemTime is the UTC calendar breakdown of a deletion time.
type SystemTime = format.SystemTime

// Filetime is a Windows FILETIME (100ns ticks since 1601-01-01 UTC).
type Filetime = format.Filetime

// ErrInsufficientData is returned when the input is shorter than the fixed
// part of a record.
var ErrInsufficientData = format.ErrInsufficientData

// Decode decodes a single $I record from b.
func Decode(b []byte) (Record, error) {
	return format.DecodeRecord(b)
}

// Read reads r to EOF and decodes the result.
func Read(r io.Reader) (Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Record{}, err
	}
	return Decode(b)
}

// ParseFile loads the file at path and decodes it. Errors opening or reading
// the file are returned as-is (typically *fs.PathError); decode errors are
// wrapped with the path.
func ParseFile(path string) (Record, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return Record{}, err
	}
	defer release()

	rec, err := Decode(data)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Format renders rec as the one-line summary printed by infotrash.
func Format(rec Record) string {
	return rec.String()
}
