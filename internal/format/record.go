package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/joshuapare/trashkit/internal/buf"
)

// Record is one decoded $I file.
//
// FileName is decoded from every byte after the name length field. NameLength
// is kept exactly as stored and is not used to bound the name.
type Record struct {
	Header       uint64
	FileSize     uint64
	DeletionTime Filetime
	NameLength   uint32
	FileName     string
}

// DecodeRecord decodes a $I record from b, reading each field once, in order.
func DecodeRecord(b []byte) (Record, error) {
	if len(b) < MinRecordSize {
		return Record{}, fmt.Errorf("record: %w (need %d bytes, have %d)",
			ErrInsufficientData, MinRecordSize, len(b))
	}

	// The length check above guarantees every fixed-field read succeeds.
	c := buf.NewCursor(b)
	header, _ := c.U64LE()
	fileSize, _ := c.U64LE()
	low, _ := c.U32LE()
	high, _ := c.U32LE()
	nameLength, _ := c.U32LE()

	return Record{
		Header:       header,
		FileSize:     fileSize,
		DeletionTime: NewFiletime(low, high),
		NameLength:   nameLength,
		FileName:     DecodeUTF16LE(c.Rest()),
	}, nil
}

// AppendRecord appends the on-disk encoding of r to b. The name is encoded
// from FileName; NameLength is written as given.
func AppendRecord(b []byte, r Record) []byte {
	b = buf.AppendU64LE(b, r.Header)
	b = buf.AppendU64LE(b, r.FileSize)
	b = buf.AppendU32LE(b, r.DeletionTime.Low())
	b = buf.AppendU32LE(b, r.DeletionTime.High())
	b = buf.AppendU32LE(b, r.NameLength)
	return append(b, EncodeUTF16LE(r.FileName)...)
}

// Version returns the header interpreted as a format version number.
func (r Record) Version() uint64 { return r.Header }

// SystemTime returns the deletion time broken into calendar fields.
func (r Record) SystemTime() SystemTime { return r.DeletionTime.SystemTime() }

// DeletedAt returns the deletion time as a UTC time.Time.
func (r Record) DeletedAt() time.Time { return r.DeletionTime.Time() }

// DisplayName returns FileName without its NUL terminator.
func (r Record) DisplayName() string {
	return strings.TrimRight(r.FileName, "\x00")
}

// String renders r as
//
//	<name> | Deleted on <day>/<month>/<year> <hour>:<minute>:<second> UTC
//
// with no zero padding.
func (r Record) String() string {
	st := r.SystemTime()
	return fmt.Sprintf("%s | Deleted on %d/%d/%d %d:%d:%d UTC",
		r.DisplayName(), st.Day, st.Month, st.Year, st.Hour, st.Minute, st.Second)
}
