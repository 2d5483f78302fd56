package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/funcspace"
	"github.com/hupe1980/funcspace/codec"
)

type options struct {
	codec codec.Codec
	level zstd.EncoderLevel
}

func defaultOptions() options {
	return options{
		codec: codec.Default,
		level: zstd.SpeedDefault,
	}
}

// Option configures snapshot encoding.
type Option func(*options)

// WithCodec sets the payload codec. If nil is passed, codec.Default is
// used. The codec's name is stored in the header, so files written with a
// non-default codec still open without configuration.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompressionLevel maps a zstd compression level (1-22) onto the
// encoder. Higher levels trade write time for smaller files; reads are
// unaffected.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = zstd.EncoderLevelFromZstd(level)
	}
}

// Write encodes snap and writes a self-describing snapshot stream to w.
func Write(w io.Writer, snap *funcspace.Snapshot, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := o.codec.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(o.level))
	if err != nil {
		return fmt.Errorf("snapshot: zstd encoder: %w", err)
	}
	defer enc.Close()
	compressed := enc.EncodeAll(payload, make([]byte, 0, len(payload)/4))

	name := o.codec.Name()
	hdr := header{
		Magic:      Magic,
		Version:    Version,
		NameLen:    uint16(len(name)),
		Checksum:   crc32.ChecksumIEEE(compressed),
		PayloadLen: uint64(len(compressed)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("snapshot: write codec name: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	return nil
}

// Read reads a snapshot stream from r, validating magic, version and
// checksum before decoding the payload.
func Read(r io.Reader) (*funcspace.Snapshot, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if hdr.Magic != Magic {
		return nil, ErrInvalidMagic
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, hdr.Version)
	}
	if hdr.NameLen == 0 || hdr.NameLen > maxCodecName {
		return nil, fmt.Errorf("%w: name length %d", ErrUnknownCodec, hdr.NameLen)
	}

	name := make([]byte, hdr.NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("snapshot: read codec name: %w", err)
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	compressed := make([]byte, hdr.PayloadLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	if actual := crc32.ChecksumIEEE(compressed); actual != hdr.Checksum {
		return nil, &ChecksumMismatchError{Expected: hdr.Checksum, Actual: actual}
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd decoder: %w", err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}

	var snap funcspace.Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal: %w", err)
	}
	return &snap, nil
}

// Save writes a snapshot file at path, replacing any existing file.
func Save(path string, snap *funcspace.Snapshot, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	if err := Write(f, snap, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a snapshot file from path.
func Load(path string) (*funcspace.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
