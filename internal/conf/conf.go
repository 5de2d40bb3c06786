// Package conf loads the optional pngspect configuration file.
package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Conf holds CLI defaults. Command-line flags override it.
type Conf struct {
	// Output is the default render format, "text" or "json".
	Output string `yaml:"output"`

	// Color enables terminal colors in text output.
	Color *bool `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Conf {
	enabled := true
	return &Conf{
		Output: "text",
		Color:  &enabled,
	}
}

// Load reads a configuration file. A missing file is not an error: the
// defaults are returned and found is false. A file that exists but does
// not parse or validate is an error.
func Load(fpath string) (conf *Conf, found bool, err error) {
	conf = Default()

	byts, err := os.ReadFile(fpath)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, false, nil
		}
		return nil, false, err
	}

	if err := yaml.UnmarshalStrict(byts, conf); err != nil {
		return nil, true, fmt.Errorf("%s: %w", fpath, err)
	}
	if err := conf.validate(); err != nil {
		return nil, true, fmt.Errorf("%s: %w", fpath, err)
	}
	return conf, true, nil
}

func (c *Conf) validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported output format: %q", c.Output)
	}
	if c.Color == nil {
		enabled := true
		c.Color = &enabled
	}
	return nil
}
