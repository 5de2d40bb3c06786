package png

import "errors"

// Decode and construction failures. All of them are deterministic
// functions of the input bytes; callers branch with errors.Is.
var (
	// ErrTruncatedHeader means fewer than 4 bytes were supplied, not
	// enough to read the declared length.
	ErrTruncatedHeader = errors.New("truncated chunk header")

	// ErrSizeMismatch means the declared length plus the 12 bytes of
	// framing does not equal the buffer length.
	ErrSizeMismatch = errors.New("chunk size mismatch")

	// ErrInvalidChunkType means the type field failed the
	// alphabetic-and-reserved-bit check.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrInvalidLength means a chunk type string was not exactly 4
	// characters.
	ErrInvalidLength = errors.New("chunk type must be 4 characters")

	// ErrInvalidCharacter means a chunk type string contained a
	// non-ASCII-letter character.
	ErrInvalidCharacter = errors.New("chunk type character must be an ASCII letter")

	// ErrChecksumMismatch means the recomputed CRC disagrees with the
	// declared trailing CRC.
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	// ErrInvalidUTF8 means a chunk payload was read as text but is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("chunk data is not valid UTF-8")

	// ErrInvalidSignature means the buffer does not start with the
	// 8-byte PNG signature.
	ErrInvalidSignature = errors.New("invalid PNG signature")

	// ErrInvalidIHDR means an IHDR chunk payload is malformed.
	ErrInvalidIHDR = errors.New("invalid IHDR chunk")
)
