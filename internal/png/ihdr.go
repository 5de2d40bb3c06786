package png

import (
	"encoding/binary"
	"fmt"
)

// ColorType is the IHDR color type field.
type ColorType byte

const (
	ColorGrayscale      ColorType = 0
	ColorTruecolor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTruecolorAlpha ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "Grayscale"
	case ColorTruecolor:
		return "Truecolor"
	case ColorIndexed:
		return "Indexed"
	case ColorGrayscaleAlpha:
		return "Grayscale+Alpha"
	case ColorTruecolorAlpha:
		return "Truecolor+Alpha"
	}
	return fmt.Sprintf("ColorType(%d)", byte(c))
}

// PaletteUsed reports bit 0 of the color type.
func (c ColorType) PaletteUsed() bool {
	return c&1 == 1
}

// ColorUsed reports bit 1 of the color type.
func (c ColorType) ColorUsed() bool {
	return c&2 == 2
}

// AlphaUsed reports bit 2 of the color type.
func (c ColorType) AlphaUsed() bool {
	return c&4 == 4
}

// AllowsBitDepth reports whether the PNG spec permits the given bit
// depth for this color type.
func (c ColorType) AllowsBitDepth(depth byte) bool {
	switch c {
	case ColorGrayscale:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8 || depth == 16
	case ColorIndexed:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8
	case ColorTruecolor, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		return depth == 8 || depth == 16
	}
	return false
}

// IHDR is the decoded image header chunk payload.
type IHDR struct {
	Width       uint32
	Height      uint32
	BitDepth    byte
	ColorType   ColorType
	Compression byte
	Filter      byte
	Interlace   byte
}

const ihdrLength = 13

// DecodeIHDR interprets a generic chunk as an image header. The chunk
// must carry the IHDR type code and a well-formed 13-byte payload.
func DecodeIHDR(c Chunk) (IHDR, error) {
	if c.Type().String() != "IHDR" {
		return IHDR{}, fmt.Errorf("%w: type is %s", ErrInvalidIHDR, c.Type())
	}
	data := c.Data()
	if len(data) != ihdrLength {
		return IHDR{}, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidIHDR, len(data), ihdrLength)
	}

	h := IHDR{
		Width:       binary.BigEndian.Uint32(data[0:4]),
		Height:      binary.BigEndian.Uint32(data[4:8]),
		BitDepth:    data[8],
		ColorType:   ColorType(data[9]),
		Compression: data[10],
		Filter:      data[11],
		Interlace:   data[12],
	}

	if h.Width == 0 || h.Height == 0 {
		return IHDR{}, fmt.Errorf("%w: zero dimension %dx%d", ErrInvalidIHDR, h.Width, h.Height)
	}
	switch h.ColorType {
	case ColorGrayscale, ColorTruecolor, ColorIndexed, ColorGrayscaleAlpha, ColorTruecolorAlpha:
	default:
		return IHDR{}, fmt.Errorf("%w: unknown color type %d", ErrInvalidIHDR, byte(h.ColorType))
	}
	if !h.ColorType.AllowsBitDepth(h.BitDepth) {
		return IHDR{}, fmt.Errorf("%w: bit depth %d not allowed for %s", ErrInvalidIHDR, h.BitDepth, h.ColorType)
	}
	if h.Compression != 0 {
		return IHDR{}, fmt.Errorf("%w: unknown compression method %d", ErrInvalidIHDR, h.Compression)
	}
	if h.Filter != 0 {
		return IHDR{}, fmt.Errorf("%w: unknown filter method %d", ErrInvalidIHDR, h.Filter)
	}
	if h.Interlace > 1 {
		return IHDR{}, fmt.Errorf("%w: unknown interlace method %d", ErrInvalidIHDR, h.Interlace)
	}
	return h, nil
}

// SampleDepth is the significant bits per sample: the palette sample
// depth is always 8 regardless of the declared bit depth.
func (h IHDR) SampleDepth() byte {
	if h.ColorType == ColorIndexed {
		return 8
	}
	return h.BitDepth
}
