package png

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMessage = "This is where your secret message will be!"

const testCRC = 2882656334

func encodeTestChunk(t *testing.T, typ string, data string, crc uint32) []byte {
	t.Helper()
	buf := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	buf = append(buf, typ...)
	buf = append(buf, data...)
	return binary.BigEndian.AppendUint32(buf, crc)
}

func TestNewChunk(t *testing.T) {
	typ, err := ChunkTypeFromString("RuSt")
	require.NoError(t, err)

	chunk := NewChunk(typ, []byte(testMessage))
	require.Equal(t, uint32(42), chunk.Length())
	require.Equal(t, uint32(testCRC), chunk.CRC())
	require.Equal(t, typ, chunk.Type())
	require.Equal(t, []byte(testMessage), chunk.Data())
}

func TestNewChunkCopiesData(t *testing.T) {
	typ, err := ChunkTypeFromString("teXt")
	require.NoError(t, err)

	data := []byte("hello")
	chunk := NewChunk(typ, data)
	data[0] = 'X'
	require.Equal(t, []byte("hello"), chunk.Data())
}

func TestDecodeChunk(t *testing.T) {
	buf := encodeTestChunk(t, "RuSt", testMessage, testCRC)
	chunk, err := DecodeChunk(buf)
	require.NoError(t, err)

	require.Equal(t, uint32(42), chunk.Length())
	require.Equal(t, "RuSt", chunk.Type().String())
	require.Equal(t, uint32(testCRC), chunk.CRC())

	text, err := chunk.Text()
	require.NoError(t, err)
	require.Equal(t, testMessage, text)
}

func TestDecodeChunkLengthMatchesData(t *testing.T) {
	buf := encodeTestChunk(t, "RuSt", testMessage, testCRC)
	chunk, err := DecodeChunk(buf)
	require.NoError(t, err)
	require.Equal(t, int(chunk.Length()), len(chunk.Data()))
}

func TestDecodeChunkChecksumMismatch(t *testing.T) {
	buf := encodeTestChunk(t, "RuSt", testMessage, testCRC-1)
	_, err := DecodeChunk(buf)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestDecodeChunkTruncatedHeader(t *testing.T) {
	_, err := DecodeChunk([]byte{0, 0, 0})
	require.ErrorIs(t, err, ErrTruncatedHeader)

	_, err = DecodeChunk(nil)
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestDecodeChunkSizeMismatch(t *testing.T) {
	buf := encodeTestChunk(t, "RuSt", testMessage, testCRC)

	_, err := DecodeChunk(buf[:len(buf)-1])
	require.ErrorIs(t, err, ErrSizeMismatch)

	_, err = DecodeChunk(append(buf, 0))
	require.ErrorIs(t, err, ErrSizeMismatch)

	// Declared length larger than the payload actually present.
	grown := encodeTestChunk(t, "RuSt", testMessage, testCRC)
	binary.BigEndian.PutUint32(grown[:4], 43)
	_, err = DecodeChunk(grown)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodeChunkInvalidType(t *testing.T) {
	buf := encodeTestChunk(t, "Ru1t", testMessage, testCRC)
	_, err := DecodeChunk(buf)
	require.ErrorIs(t, err, ErrInvalidChunkType)

	// Reserved bit set: strict decoding refuses it before the CRC runs.
	buf = encodeTestChunk(t, "Rust", testMessage, testCRC)
	_, err = DecodeChunk(buf)
	require.ErrorIs(t, err, ErrInvalidChunkType)
}

func TestChunkRoundTrip(t *testing.T) {
	typ, err := ChunkTypeFromString("RuSt")
	require.NoError(t, err)

	chunk := NewChunk(typ, []byte(testMessage))
	decoded, err := DecodeChunk(chunk.Bytes())
	require.NoError(t, err)
	require.True(t, chunk.Equal(decoded))
	require.Equal(t, chunk.Bytes(), decoded.Bytes())
}

func TestChunkRoundTripEmptyPayload(t *testing.T) {
	typ, err := ChunkTypeFromString("IEND")
	require.NoError(t, err)

	chunk := NewChunk(typ, nil)
	require.Equal(t, uint32(0), chunk.Length())

	decoded, err := DecodeChunk(chunk.Bytes())
	require.NoError(t, err)
	require.True(t, chunk.Equal(decoded))
}

// Any single bit flip inside the type or data region must break the
// checksum (or the type check, for type bytes).
func TestDecodeChunkBitFlipSensitivity(t *testing.T) {
	clean := encodeTestChunk(t, "RuSt", testMessage, testCRC)

	for i := 4; i < len(clean)-4; i++ {
		for bit := 0; bit < 8; bit++ {
			buf := make([]byte, len(clean))
			copy(buf, clean)
			buf[i] ^= 1 << bit

			_, err := DecodeChunk(buf)
			require.Error(t, err, "flip byte %d bit %d", i, bit)
			if i >= 8 {
				require.ErrorIs(t, err, ErrChecksumMismatch, "flip byte %d bit %d", i, bit)
			}
		}
	}
}

func TestChunkTextInvalidUTF8(t *testing.T) {
	typ, err := ChunkTypeFromString("teXt")
	require.NoError(t, err)

	chunk := NewChunk(typ, []byte{0xFF, 0xFE, 0xFD})
	_, err = chunk.Text()
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestChunkBytesLayout(t *testing.T) {
	typ, err := ChunkTypeFromString("RuSt")
	require.NoError(t, err)

	chunk := NewChunk(typ, []byte(testMessage))
	buf := chunk.Bytes()

	require.Len(t, buf, len(testMessage)+12)
	require.Equal(t, uint32(len(testMessage)), binary.BigEndian.Uint32(buf[:4]))
	require.Equal(t, "RuSt", string(buf[4:8]))
	require.Equal(t, testMessage, string(buf[8:len(buf)-4]))
	require.Equal(t, uint32(testCRC), binary.BigEndian.Uint32(buf[len(buf)-4:]))
}
