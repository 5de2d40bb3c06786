package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// RawChunk is one chunk record split out of a stream without any
// validation of its type or checksum. It exists so integrity checks can
// report every bad record instead of stopping at the first one.
type RawChunk struct {
	Offset int64
	Length uint32
	Type   [4]byte
	Data   []byte
	CRC    uint32
}

// ExpectedCRC computes the checksum the record should carry.
func (r RawChunk) ExpectedCRC() uint32 {
	sum := crc32.ChecksumIEEE(r.Type[:])
	return crc32.Update(sum, crc32.IEEETable, r.Data)
}

// CRCValid reports whether the declared checksum matches the computed
// one.
func (r RawChunk) CRCValid() bool {
	return r.CRC == r.ExpectedCRC()
}

// TypeValid reports whether the type field would pass the strict type
// constructor.
func (r RawChunk) TypeValid() bool {
	_, err := ChunkTypeFromBytes(r.Type)
	return err == nil
}

// ScanChunks splits a PNG stream into raw records after the signature.
// Records with bad checksums or type codes are returned as-is; only
// truncation (a record extending past the buffer) is an error, since
// the walk cannot continue past it.
func ScanChunks(data []byte) ([]RawChunk, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != string(Signature[:]) {
		return nil, ErrInvalidSignature
	}

	var chunks []RawChunk
	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 8 {
			return chunks, fmt.Errorf("chunk at offset %d: %w", off, ErrTruncatedHeader)
		}
		length := binary.BigEndian.Uint32(data[off : off+4])
		end := uint64(off) + uint64(length) + chunkOverhead
		if end > uint64(len(data)) {
			return chunks, fmt.Errorf("chunk at offset %d: %w", off, ErrSizeMismatch)
		}

		r := RawChunk{
			Offset: int64(off),
			Length: length,
			Data:   data[off+8 : end-4],
			CRC:    binary.BigEndian.Uint32(data[end-4 : end]),
		}
		copy(r.Type[:], data[off+4:off+8])
		chunks = append(chunks, r)
		off = int(end)
	}
	return chunks, nil
}
