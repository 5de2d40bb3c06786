package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/pngspect/pngspect/internal/png"
)

// ChunkStatus is the integrity result for one raw chunk record.
type ChunkStatus struct {
	Offset      int64  `json:"offset"`
	Type        string `json:"type"`
	Length      uint32 `json:"length"`
	CRC         uint32 `json:"crc"`
	ExpectedCRC uint32 `json:"expectedCrc"`
	CRCValid    bool   `json:"crcValid"`
	TypeValid   bool   `json:"typeValid"`
}

// VerifyReport lists the integrity status of every chunk record in a
// file. ScanErr is non-empty when the walk could not reach the end of
// the buffer (a record extends past it).
type VerifyReport struct {
	Ref     string        `json:"ref"`
	Chunks  []ChunkStatus `json:"chunks"`
	ScanErr string        `json:"scanError,omitempty"`
}

// OK reports whether every record scanned cleanly to the end of the
// file with a valid type and checksum.
func (r VerifyReport) OK() bool {
	if r.ScanErr != "" {
		return false
	}
	for _, c := range r.Chunks {
		if !c.CRCValid || !c.TypeValid {
			return false
		}
	}
	return true
}

// RenderVerifyText renders a verify report, one line per record.
func RenderVerifyText(report VerifyReport, colored bool) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", report.Ref)
	for _, c := range report.Chunks {
		mark := "ok"
		switch {
		case !c.TypeValid:
			mark = "BAD TYPE"
		case !c.CRCValid:
			mark = fmt.Sprintf("BAD CRC (want 0x%08X)", c.ExpectedCRC)
		}
		if colored {
			if mark == "ok" {
				mark = color.Green.Render(mark)
			} else {
				mark = color.Red.Render(mark)
			}
		}
		fmt.Fprintf(&buf, "%08x  %s  %10d bytes  crc 0x%08X  %s\n",
			c.Offset, printableType(c.Type), c.Length, c.CRC, mark)
	}
	if report.ScanErr != "" {
		fmt.Fprintf(&buf, "scan stopped early: %s\n", report.ScanErr)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// printableType keeps the fixed-width layout intact when a corrupt
// type field holds non-printable bytes.
func printableType(name string) string {
	out := []byte(name)
	for i, c := range out {
		if c < 0x20 || c > 0x7E {
			out[i] = '.'
		}
	}
	return string(out)
}

// RenderVerifyJSON renders a verify report as indented JSON.
func RenderVerifyJSON(report VerifyReport) string {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(data)
}

// VerifyFile walks a file's chunk records leniently and reports the
// state of each one, bad records included. Only an unreadable file or
// a missing signature is an error.
func VerifyFile(path string) (VerifyReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return VerifyReport{}, err
	}

	chunks, scanErr := png.ScanChunks(data)
	if errors.Is(scanErr, png.ErrInvalidSignature) {
		return VerifyReport{}, fmt.Errorf("%s: %w", path, scanErr)
	}

	report := VerifyReport{Ref: path}
	if scanErr != nil {
		report.ScanErr = scanErr.Error()
	}
	for _, c := range chunks {
		report.Chunks = append(report.Chunks, ChunkStatus{
			Offset:      c.Offset,
			Type:        string(c.Type[:]),
			Length:      c.Length,
			CRC:         c.CRC,
			ExpectedCRC: c.ExpectedCRC(),
			CRCValid:    c.CRCValid(),
			TypeValid:   c.TypeValid(),
		})
	}
	return report, nil
}
