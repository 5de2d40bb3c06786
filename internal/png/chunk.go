package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// chunkOverhead is the fixed framing around a chunk payload:
// 4 length + 4 type + 4 CRC bytes.
const chunkOverhead = 12

// Chunk is one length-prefixed, type-tagged, checksummed PNG record.
// It is an immutable value; length and CRC are computed once at
// construction and never recomputed on read.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk builds a Chunk from an already-validated type and a payload.
// The payload is copied. The type is trusted as-is; nothing re-checks
// its reserved bit here. Payloads longer than 4 GiB do not fit the wire
// format's 32-bit length field and are a caller bug.
func NewChunk(typ ChunkType, data []byte) Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return Chunk{
		length: uint32(len(owned)),
		typ:    typ,
		data:   owned,
		crc:    chunkCRC(typ, owned),
	}
}

// DecodeChunk parses one complete chunk record. The buffer must hold
// exactly one record: 4-byte big-endian length, 4 type bytes, the
// payload, and a trailing 4-byte big-endian CRC over type+payload.
func DecodeChunk(buf []byte) (Chunk, error) {
	if len(buf) < 4 {
		return Chunk{}, fmt.Errorf("%w: got %d bytes", ErrTruncatedHeader, len(buf))
	}
	length := binary.BigEndian.Uint32(buf[:4])
	if uint64(len(buf)) != uint64(length)+chunkOverhead {
		return Chunk{}, fmt.Errorf("%w: declared %d+%d bytes, got %d",
			ErrSizeMismatch, length, chunkOverhead, len(buf))
	}

	typ, err := ChunkTypeFromBytes([4]byte{buf[4], buf[5], buf[6], buf[7]})
	if err != nil {
		return Chunk{}, err
	}

	data := make([]byte, length)
	copy(data, buf[8:len(buf)-4])

	declared := binary.BigEndian.Uint32(buf[len(buf)-4:])
	// CRC covers the type and payload bytes, never the framing.
	if actual := crc32.ChecksumIEEE(buf[4 : len(buf)-4]); declared != actual {
		return Chunk{}, fmt.Errorf("%w: declared %d, computed %d",
			ErrChecksumMismatch, declared, actual)
	}

	return Chunk{length: length, typ: typ, data: data, crc: declared}, nil
}

// chunkCRC is the PNG chunk checksum: CRC-32/ISO-HDLC over the type code
// followed by the payload. crc32.IEEE is that exact parameterization.
func chunkCRC(typ ChunkType, data []byte) uint32 {
	b := typ.Bytes()
	sum := crc32.ChecksumIEEE(b[:])
	return crc32.Update(sum, crc32.IEEETable, data)
}

// Length returns the payload byte count.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the payload. The slice is a read-only view into the
// chunk; callers must not modify it.
func (c Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum over type+payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// Text returns the payload as a string, failing if it is not valid
// UTF-8. Only meaningful for text-bearing chunk types; the codec itself
// does not care what the payload is.
func (c Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrInvalidUTF8, c.typ)
	}
	return string(c.data), nil
}

// Bytes encodes the chunk in its canonical wire form, the exact inverse
// of DecodeChunk.
func (c Chunk) Bytes() []byte {
	buf := make([]byte, 0, int(c.length)+chunkOverhead)
	buf = binary.BigEndian.AppendUint32(buf, c.length)
	t := c.typ.Bytes()
	buf = append(buf, t[:]...)
	buf = append(buf, c.data...)
	buf = binary.BigEndian.AppendUint32(buf, c.crc)
	return buf
}

// Equal reports whether two chunks have the same length, type, payload,
// and CRC.
func (c Chunk) Equal(o Chunk) bool {
	if c.length != o.length || c.typ != o.typ || c.crc != o.crc {
		return false
	}
	return string(c.data) == string(o.data)
}
