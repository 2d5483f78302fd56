package snapshot

import (
	"errors"
	"fmt"
)

const (
	// Magic identifies function-space snapshot files (ASCII: "FSP1").
	Magic uint32 = 0x46535031

	// Version is the current file format version.
	Version uint32 = 1

	// maxCodecName bounds the codec name length read from a header, so a
	// corrupt length field cannot trigger a huge allocation.
	maxCodecName = 255
)

var (
	// ErrInvalidMagic is returned when a file does not start with Magic.
	ErrInvalidMagic = errors.New("snapshot: invalid magic number")

	// ErrInvalidVersion is returned for unsupported format versions.
	ErrInvalidVersion = errors.New("snapshot: unsupported version")

	// ErrUnknownCodec is returned when the codec named in the header is not
	// registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
)

// ChecksumMismatchError is returned when the stored payload checksum does
// not match the bytes read.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("snapshot: checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// header precedes the compressed payload. Fixed-size fields are encoded
// little-endian; the codec name follows as nameLen raw bytes.
type header struct {
	Magic      uint32
	Version    uint32
	NameLen    uint16
	Checksum   uint32 // CRC32 (IEEE) of the compressed payload
	PayloadLen uint64
}
