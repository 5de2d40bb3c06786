// Package inspect builds human- and machine-readable reports about the
// chunk structure of PNG files.
package inspect

import (
	"fmt"
	"os"

	"github.com/pngspect/pngspect/internal/png"
)

// Field is one name/value line of the general section.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ChunkEntry describes one decoded chunk record.
type ChunkEntry struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safeToCopy"`
}

// Report is the full inspection result for one file.
type Report struct {
	Ref     string       `json:"ref"`
	General []Field      `json:"general"`
	Chunks  []ChunkEntry `json:"chunks"`
}

// File reads and strictly decodes a PNG file and summarizes it.
func File(path string) (Report, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return Report{}, err
	}

	f, err := png.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}

	report := Report{Ref: path}
	report.General = append(report.General,
		Field{Name: "Complete name", Value: path},
		Field{Name: "Format", Value: "PNG"},
		Field{Name: "File size", Value: formatBytes(stat.Size())},
		Field{Name: "Chunk count", Value: fmt.Sprintf("%d", len(f.Chunks()))},
	)

	if ihdrChunk, ok := f.ChunkByType("IHDR"); ok {
		if h, err := png.DecodeIHDR(ihdrChunk); err == nil {
			report.General = append(report.General,
				Field{Name: "Width", Value: fmt.Sprintf("%d pixels", h.Width)},
				Field{Name: "Height", Value: fmt.Sprintf("%d pixels", h.Height)},
				Field{Name: "Bit depth", Value: fmt.Sprintf("%d bits", h.BitDepth)},
				Field{Name: "Color type", Value: h.ColorType.String()},
			)
			if h.Interlace == 1 {
				report.General = append(report.General, Field{Name: "Interlace", Value: "Adam7"})
			}
		}
	}

	for i, c := range f.Chunks() {
		typ := c.Type()
		report.Chunks = append(report.Chunks, ChunkEntry{
			Index:      i,
			Type:       typ.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Critical:   typ.IsCritical(),
			Public:     typ.IsPublic(),
			SafeToCopy: typ.IsSafeToCopy(),
		})
	}
	return report, nil
}

// Files inspects several files in order, stopping at the first failure.
func Files(paths []string) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		report, err := File(path)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
