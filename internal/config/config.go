package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"

	"github.com/wucyAAA/iconopaque/internal/color"
)

const (
	EnvPrefix = "ICONOPAQUE"
	FileName  = "iconopaque.yaml"

	DefaultSource      = "assets/favicon.png"
	DefaultDestination = "assets/icon_opaque.png"
	DefaultBackground  = "white"
	DefaultQuality     = 85
)

type Config struct {
	Source      string `fig:"source" default:"assets/favicon.png"`
	Destination string `fig:"destination" default:"assets/icon_opaque.png"`
	Background  string `fig:"background" default:"white"`
	// JPEG quality, 1-100
	Quality int `fig:"quality" default:"85"`
	// Strict makes failures non-zero exits instead of printed advisories.
	Strict bool `fig:"strict"`
	Debug  bool `fig:"debug"`
}

// WithFlags binds the configuration to fs. Flags only override file and
// environment values when they are set explicitly.
func (c *Config) WithFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Source, "source", "s", DefaultSource, "source image")
	fs.StringVarP(&c.Destination, "destination", "d", DefaultDestination, "output image, format taken from the extension")
	fs.StringVar(&c.Background, "background", DefaultBackground, "background colour (name, #rgb or #rrggbb)")
	fs.IntVar(&c.Quality, "quality", DefaultQuality, "JPEG quality (1-100)")
	fs.BoolVar(&c.Strict, "strict", false, "exit with a non-zero status when the conversion fails")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
}

// LoadConfig loads a configuration file into the given struct.
// The path param specifies a directory to look for iconopaque.yaml in;
// when empty, the working directory and ./configs are searched. A missing
// file is not an error. Environment variables with the prefix ICONOPAQUE_
// override file values.
func LoadConfig(config any, path string) error {
	dirs := []string{path}
	if path == "" {
		dirs = []string{".", "configs"}
	}
	err := fig.Load(config, fig.File(FileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		if path != "" {
			return fmt.Errorf("%s not found in %s", FileName, path)
		}
		return fig.Load(config, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	return err
}

// Load fills c from the configuration file and the environment, keeps the
// values of flags explicitly set on fs, and validates the result.
func (c *Config) Load(path string, fs *pflag.FlagSet) error {
	var loaded Config
	if err := LoadConfig(&loaded, path); err != nil {
		return err
	}

	changed := func(name string) bool { return fs != nil && fs.Changed(name) }
	if !changed("source") {
		c.Source = loaded.Source
	}
	if !changed("destination") {
		c.Destination = loaded.Destination
	}
	if !changed("background") {
		c.Background = loaded.Background
	}
	if !changed("quality") {
		c.Quality = loaded.Quality
	}
	if !changed("strict") {
		c.Strict = loaded.Strict
	}
	if !changed("debug") {
		c.Debug = loaded.Debug
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return errors.New("source path is empty")
	}
	if c.Destination == "" {
		return errors.New("destination path is empty")
	}
	if filepath.Clean(c.Source) == filepath.Clean(c.Destination) {
		return fmt.Errorf("source and destination are the same file: %s", c.Source)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality %d out of range (1-100)", c.Quality)
	}
	if _, err := color.ParseBackground(c.Background); err != nil {
		return err
	}
	return nil
}

// Dump prints the effective configuration.
func (c *Config) Dump() string {
	return fmt.Sprintf("source=%s destination=%s background=%s quality=%d strict=%v",
		c.Source, c.Destination, c.Background, c.Quality, c.Strict)
}

