// Package cli implements the pngspect command line.
package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/pngspect/pngspect/internal/conf"
	"github.com/pngspect/pngspect/internal/inspect"
	"github.com/pngspect/pngspect/internal/png"
)

type flags struct {
	Conf    string `help:"path to a config file" default:"pngspect.yml"`
	Output  string `short:"o" help:"output format, text or json (overrides the config file)"`
	NoColor bool   `help:"disable colors in text output"`

	Chunks  chunksCmd  `cmd:"" help:"List the chunk records of PNG files."`
	Info    infoCmd    `cmd:"" help:"Show a summary of a PNG file."`
	Verify  verifyCmd  `cmd:"" help:"Check every chunk record's type and checksum."`
	Print   printCmd   `cmd:"" help:"Print a chunk's payload as text."`
	Version versionCmd `cmd:"" help:"Print the version."`
}

type chunksCmd struct {
	Files []string `arg:"" help:"PNG files to inspect."`
}

type infoCmd struct {
	File string `arg:"" help:"PNG file to summarize."`
}

type verifyCmd struct {
	File string `arg:"" help:"PNG file to check."`
}

type printCmd struct {
	File string `arg:"" help:"PNG file to read."`
	Type string `arg:"" help:"4-letter chunk type code, e.g. tEXt."`
}

type versionCmd struct{}

// Run parses args (including the program name) and executes one
// command. It returns the process exit code: 0 on success, 1 when a
// file fails to parse or verify, 2 on usage or config errors.
func Run(args []string, stdout, stderr io.Writer) int {
	var cli flags
	parser, err := kong.New(&cli,
		kong.Name("pngspect"),
		kong.Description("PNG chunk codec and inspection tool"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 2
	}

	cfg, _, err := conf.Load(cli.Conf)
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 2
	}

	output := cfg.Output
	if cli.Output != "" {
		output = cli.Output
	}
	if output != "text" && output != "json" {
		fmt.Fprintf(stderr, "pngspect: unsupported output format: %q\n", output)
		return 2
	}
	colored := *cfg.Color && !cli.NoColor

	switch ctx.Command() {
	case "chunks <files>":
		return runChunks(cli.Chunks.Files, output, colored, stdout, stderr)
	case "info <file>":
		return runInfo(cli.Info.File, output, stdout, stderr)
	case "verify <file>":
		return runVerify(cli.Verify.File, output, colored, stdout, stderr)
	case "print <file> <type>":
		return runPrint(cli.Print.File, cli.Print.Type, stdout, stderr)
	case "version":
		Version(stdout)
		return 0
	}
	fmt.Fprintf(stderr, "pngspect: unknown command %q\n", ctx.Command())
	return 2
}

func runChunks(paths []string, output string, colored bool, stdout, stderr io.Writer) int {
	reports, err := inspect.Files(paths)
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 1
	}
	if output == "json" {
		fmt.Fprintln(stdout, inspect.RenderJSON(reports))
	} else {
		fmt.Fprintln(stdout, inspect.RenderText(reports, colored))
	}
	return 0
}

func runInfo(path string, output string, stdout, stderr io.Writer) int {
	report, err := inspect.File(path)
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 1
	}
	if output == "json" {
		fmt.Fprintln(stdout, inspect.RenderJSON([]inspect.Report{report}))
		return 0
	}
	for _, field := range report.General {
		fmt.Fprintf(stdout, "%-24s: %s\n", field.Name, field.Value)
	}
	return 0
}

func runVerify(path string, output string, colored bool, stdout, stderr io.Writer) int {
	report, err := inspect.VerifyFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 1
	}
	if output == "json" {
		fmt.Fprintln(stdout, inspect.RenderVerifyJSON(report))
	} else {
		fmt.Fprintln(stdout, inspect.RenderVerifyText(report, colored))
	}
	if !report.OK() {
		return 1
	}
	return 0
}

func runPrint(path, typeName string, stdout, stderr io.Writer) int {
	if _, err := png.ChunkTypeFromString(typeName); err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 2
	}

	f, err := png.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 1
	}
	chunk, ok := f.ChunkByType(typeName)
	if !ok {
		fmt.Fprintf(stderr, "pngspect: %s: no %s chunk\n", path, typeName)
		return 1
	}
	text, err := chunk.Text()
	if err != nil {
		fmt.Fprintf(stderr, "pngspect: %s\n", err)
		return 1
	}
	fmt.Fprintln(stdout, text)
	return 0
}
