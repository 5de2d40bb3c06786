package cli

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pngspect/pngspect/internal/png"
)

func writeSamplePNG(t *testing.T) string {
	t.Helper()

	ihdr := binary.BigEndian.AppendUint32(nil, 2)
	ihdr = binary.BigEndian.AppendUint32(ihdr, 2)
	ihdr = append(ihdr, 8, byte(png.ColorGrayscale), 0, 0, 0)

	f := &png.File{}
	for _, entry := range []struct {
		typ  string
		data []byte
	}{
		{typ: "IHDR", data: ihdr},
		{typ: "tEXt", data: []byte("hello from pngspect")},
		{typ: "IEND", data: nil},
	} {
		typ, err := png.ChunkTypeFromString(entry.typ)
		require.NoError(t, err)
		f.AppendChunk(png.NewChunk(typ, entry.data))
	}

	path := filepath.Join(t.TempDir(), "sample.png")
	require.NoError(t, os.WriteFile(path, f.Bytes(), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"pngspect"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunChunks(t *testing.T) {
	path := writeSamplePNG(t)

	code, stdout, stderr := run(t, "chunks", "--no-color", path)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stdout, "IHDR")
	require.Contains(t, stdout, "tEXt")
	require.Contains(t, stdout, "IEND")
	require.Contains(t, stdout, "Chunk count")
}

func TestRunChunksJSON(t *testing.T) {
	path := writeSamplePNG(t)

	code, stdout, _ := run(t, "chunks", "-o", "json", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"type": "IHDR"`)
}

func TestRunInfo(t *testing.T) {
	path := writeSamplePNG(t)

	code, stdout, _ := run(t, "info", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Format")
	require.Contains(t, stdout, "PNG")
	require.Contains(t, stdout, "Grayscale")
	require.NotContains(t, stdout, "crc")
}

func TestRunVerify(t *testing.T) {
	path := writeSamplePNG(t)

	code, stdout, _ := run(t, "verify", "--no-color", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "ok")

	// Corrupt the tEXt payload: verify must fail with exit code 1.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[8+25+8] ^= 0x01
	require.NoError(t, os.WriteFile(path, data, 0o644))

	code, stdout, _ = run(t, "verify", "--no-color", path)
	require.Equal(t, 1, code)
	require.Contains(t, stdout, "BAD CRC")
}

func TestRunPrint(t *testing.T) {
	path := writeSamplePNG(t)

	code, stdout, _ := run(t, "print", path, "tEXt")
	require.Equal(t, 0, code)
	require.Equal(t, "hello from pngspect\n", stdout)

	code, _, stderr := run(t, "print", path, "pHYs")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "no pHYs chunk")

	code, _, stderr = run(t, "print", path, "not-a-type")
	require.Equal(t, 2, code)
	require.NotEmpty(t, stderr)
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := run(t, "version")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "pngspect")
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := run(t, "chunks", filepath.Join(t.TempDir(), "missing.png"))
	require.Equal(t, 1, code)
	require.NotEmpty(t, stderr)

	code, _, stderr = run(t, "bogus")
	require.Equal(t, 2, code)
	require.NotEmpty(t, stderr)

	path := writeSamplePNG(t)
	code, _, stderr = run(t, "chunks", "-o", "xml", path)
	require.Equal(t, 2, code)
	require.Contains(t, stderr, "unsupported output format")
}

func TestRunConfFile(t *testing.T) {
	path := writeSamplePNG(t)
	confPath := filepath.Join(t.TempDir(), "pngspect.yml")
	require.NoError(t, os.WriteFile(confPath, []byte("output: json\n"), 0o644))

	code, stdout, _ := run(t, "--conf", confPath, "chunks", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"type": "IHDR"`)
}
