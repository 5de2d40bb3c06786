// Package png implements the PNG chunk wire format: the 4-byte type
// code with its property bits, the length-prefixed checksummed chunk
// record, and a thin container over the ordered chunk sequence of a
// whole file. Payload semantics (decompression, filtering) are out of
// scope; the package guarantees byte-exact framing and integrity only.
package png

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Signature is the 8-byte sequence every PNG stream starts with.
var Signature = [8]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// File is an ordered sequence of decoded chunks. It enforces no
// chunk-ordering rules; IHDR-first and friends are a concern for
// whoever interprets the chunks.
type File struct {
	chunks []Chunk
}

// Decode parses a complete PNG stream: the signature followed by
// back-to-back chunk records. Every record goes through the strict
// chunk decoder, so a single bad type or checksum fails the whole
// parse; use ScanChunks for a lenient walk.
func Decode(data []byte) (*File, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != string(Signature[:]) {
		return nil, ErrInvalidSignature
	}

	f := &File{}
	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 4 {
			return nil, fmt.Errorf("chunk at offset %d: %w", off, ErrTruncatedHeader)
		}
		length := binary.BigEndian.Uint32(data[off : off+4])
		end := uint64(off) + uint64(length) + chunkOverhead
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("chunk at offset %d: %w", off, ErrSizeMismatch)
		}
		chunk, err := DecodeChunk(data[off:end])
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", off, err)
		}
		f.chunks = append(f.chunks, chunk)
		off = int(end)
	}
	return f, nil
}

// ReadFile reads an entire file into memory and decodes it.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Chunks returns the chunks in file order. The slice is a read-only
// view; callers must not modify it.
func (f *File) Chunks() []Chunk {
	return f.chunks
}

// ChunkByType returns the first chunk whose type code renders as name.
func (f *File) ChunkByType(name string) (Chunk, bool) {
	for _, c := range f.chunks {
		if c.Type().String() == name {
			return c, true
		}
	}
	return Chunk{}, false
}

// AppendChunk adds a chunk at the end of the sequence.
func (f *File) AppendChunk(c Chunk) {
	f.chunks = append(f.chunks, c)
}

// Bytes encodes the whole file: signature, then each chunk in order.
func (f *File) Bytes() []byte {
	size := len(Signature)
	for _, c := range f.chunks {
		size += int(c.Length()) + chunkOverhead
	}
	buf := make([]byte, 0, size)
	buf = append(buf, Signature[:]...)
	for _, c := range f.chunks {
		buf = append(buf, c.Bytes()...)
	}
	return buf
}
