package png

import "fmt"

// ChunkType is a 4-byte PNG chunk type code.
//
// From the PNG spec, type codes are restricted to uppercase and lowercase
// ASCII letters (65-90 and 97-122), and bit 5 of each byte doubles as a
// property flag:
//
//	byte 0: 0 (uppercase) = critical, 1 (lowercase) = ancillary
//	byte 1: 0 (uppercase) = public, 1 (lowercase) = private
//	byte 2: must be 0 (uppercase) in files conforming to this PNG version
//	byte 3: 0 (uppercase) = unsafe to copy, 1 (lowercase) = safe to copy
//
// ChunkType is comparable; two values are equal iff their 4 bytes match.
type ChunkType struct {
	b [4]byte
}

// ChunkTypeFromBytes builds a ChunkType from 4 raw bytes. All bytes must
// be ASCII letters and the reserved bit (byte 2) must be clear; this is
// the constructor chunk decoding goes through.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidChunkType, b[:])
		}
	}
	t := ChunkType{b: b}
	if !t.IsReservedBitValid() {
		return ChunkType{}, fmt.Errorf("%w: %q has its reserved bit set", ErrInvalidChunkType, b[:])
	}
	return t, nil
}

// ChunkTypeFromString builds a ChunkType from a 4-character string of
// ASCII letters. Unlike ChunkTypeFromBytes it does not check the reserved
// bit, so the result may report IsValid() == false; callers building
// chunks for a conforming file should check IsValid themselves.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	var t ChunkType
	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidCharacter, s)
		}
		t.b[i] = s[i]
	}
	return t, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Bytes returns the 4 raw bytes of the type code.
func (t ChunkType) Bytes() [4]byte {
	return t.b
}

// IsValid reports whether the code conforms to the current PNG spec
// version: all ASCII letters with the reserved bit clear.
func (t ChunkType) IsValid() bool {
	for _, c := range t.b {
		if !isASCIILetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether the chunk is required for display
// (uppercase first letter).
func (t ChunkType) IsCritical() bool {
	return t.b[0]>>5&1 == 0
}

// IsPublic reports whether the code is publicly registered
// (uppercase second letter).
func (t ChunkType) IsPublic() bool {
	return t.b[1]>>5&1 == 0
}

// IsReservedBitValid reports whether the reserved bit (third letter
// case) is clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t.b[2]>>5&1 == 0
}

// IsSafeToCopy reports whether editors unaware of this chunk's meaning
// may still copy it (lowercase fourth letter).
func (t ChunkType) IsSafeToCopy() bool {
	return t.b[3]>>5&1 == 1
}

// String renders the code as ASCII. Both constructors only admit ASCII
// letters, so the result is always 4 printable characters.
func (t ChunkType) String() string {
	return string(t.b[:])
}
