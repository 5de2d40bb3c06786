package cli

import (
	"fmt"
	"io"
)

// version is overridden at build time with -ldflags.
var version = "v0.0.0"

func Version(stdout io.Writer) {
	fmt.Fprintf(stdout, "pngspect %s\n", version)
}
