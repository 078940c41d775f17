// Package format houses the low-level decoder for Windows Recycle Bin "$I"
// metadata records. It stays independent from the public API so that
// pkg/recyclebin can present the data in a more ergonomic form.
package format

// $I record layout (little-endian):
//
//	0x00  header      u64  version marker, not validated
//	0x08  file size   u64  size of the deleted file in bytes
//	0x10  time low    u32  FILETIME dwLowDateTime
//	0x14  time high   u32  FILETIME dwHighDateTime
//	0x18  name length u32  byte count of the encoded name (Windows 10+)
//	0x1C  name        ...  UTF-16LE path, runs to the end of the buffer
const (
	HeaderOffset     = 0x00
	FileSizeOffset   = 0x08
	TimeLowOffset    = 0x10
	TimeHighOffset   = 0x14
	NameLengthOffset = 0x18
	NameOffset       = 0x1C

	// FixedHeaderSize covers header, file size and deletion time.
	FixedHeaderSize = NameLengthOffset

	// MinRecordSize is the smallest buffer DecodeRecord accepts: the fixed
	// header plus the name length field.
	MinRecordSize = NameOffset
)

// Known values of the header field. They are informational only; the decoder
// always uses the Windows 10 layout.
const (
	VersionLegacy  uint64 = 1 // Vista through 8.1, fixed 520-byte name field
	VersionWindows uint64 = 2 // Windows 10 and later, length-prefixed name
)

const (
	// utf16UnitSize is the number of bytes per UTF-16 code unit.
	utf16UnitSize = 2
)
