package inspect

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gookit/color"
)

// RenderText renders reports in an aligned name/value layout plus a
// chunk table. With colored set, critical chunk types and invalid CRC
// marks are highlighted for terminals.
func RenderText(reports []Report, colored bool) string {
	var buf bytes.Buffer
	for i, report := range reports {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("General\n")
		for _, field := range report.General {
			buf.WriteString(padRight(field.Name, 24))
			buf.WriteString(": ")
			buf.WriteString(field.Value)
			buf.WriteString("\n")
		}

		buf.WriteString("\nChunks\n")
		for _, entry := range report.Chunks {
			typ := entry.Type
			if colored {
				if entry.Critical {
					typ = color.Bold.Render(typ)
				} else {
					typ = color.Gray.Render(typ)
				}
			}
			fmt.Fprintf(&buf, "%-4d %s  %10d bytes  crc 0x%08X  %s\n",
				entry.Index, typ, entry.Length, entry.CRC, chunkFlags(entry))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func chunkFlags(entry ChunkEntry) string {
	flags := make([]string, 0, 3)
	if entry.Critical {
		flags = append(flags, "critical")
	} else {
		flags = append(flags, "ancillary")
	}
	if entry.Public {
		flags = append(flags, "public")
	} else {
		flags = append(flags, "private")
	}
	if entry.SafeToCopy {
		flags = append(flags, "safe-to-copy")
	}
	return strings.Join(flags, ",")
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
