// Package config loads diff settings from layered sources with predictable precedence: built-in defaults, then a JSON file, then environment variables. Later sources
// overwrite earlier ones key by key.
//
// The JSON file is either an explicit path (a leading "~" expands to the home directory) or the nearest file named FileName found by searching upward from a starting
// directory. Missing files and empty files contribute nothing. A file that cannot be parsed, or any value that cannot be coerced to its setting's type, fails the load
// with an error naming the source. Unknown keys are ignored. Empty environment variables are treated as unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/codalotl/unidiff/internal/diff"
)

// FileName is the config file looked for when no explicit path is given.
const FileName = ".unidiff.json"

// Setting keys, as they appear in the JSON file.
const (
	KeyDisable              = "disable"
	KeyContext              = "context"
	KeyAlgorithm            = "algorithm"
	KeyMaxCost              = "max_cost"
	KeyMissingNewlineMarker = "missing_newline_marker"
)

// EnvVars maps each setting key to the environment variable that overrides it.
var EnvVars = map[string]string{
	KeyDisable:              "UNIDIFF_DISABLE",
	KeyContext:              "UNIDIFF_CONTEXT",
	KeyAlgorithm:            "UNIDIFF_ALGORITHM",
	KeyMaxCost:              "UNIDIFF_MAX_COST",
	KeyMissingNewlineMarker: "UNIDIFF_MISSING_NEWLINE_MARKER",
}

// Config is the resolved set of diff settings.
type Config struct {
	Disable              bool   // Disable turns off config diff generation entirely.
	Context              int    // Context is the number of unchanged lines around each change.
	Algorithm            string // Algorithm names a diff.Algorithm (see diff.ParseAlgorithm).
	MaxCost              int    // MaxCost bounds the Myers search; <= 0 means unbounded.
	MissingNewlineMarker bool   // MissingNewlineMarker emits "\ No newline at end of file" markers.

	origin map[string]Origin
}

// Origin records which source set a key.
type Origin struct {
	SourceType       string // "default", "json_file", or "env".
	SourceIdentifier string // File path for "json_file"; empty otherwise.
}

// Default returns the built-in defaults.
func Default() Config {
	var c Config
	if err := c.apply(defaultsSource{}); err != nil {
		panic(fmt.Sprintf("config: defaults do not apply: %v", err))
	}
	return c
}

// Options controls where Load looks for settings.
type Options struct {
	// File, if set, is the JSON file to read. A missing file is not an error.
	File string

	// SearchFrom is where the upward search for FileName starts when File is empty. If empty, the working directory is used. Set NoSearch to skip the search.
	SearchFrom string
	NoSearch   bool
}

// Load resolves settings from defaults, the JSON file chosen by opts, and the environment, in that order.
func Load(opts Options) (Config, error) {
	srcs := []source{defaultsSource{}}
	switch {
	case opts.File != "":
		srcs = append(srcs, &jsonFileSource{path: ExpandPath(opts.File)})
	case !opts.NoSearch:
		if path := FindNearest(FileName, opts.SearchFrom); path != "" {
			srcs = append(srcs, &jsonFileSource{path: path})
		}
	}
	srcs = append(srcs, envSource{vars: EnvVars})

	var c Config
	for _, src := range srcs {
		if err := c.apply(src); err != nil {
			return Config{}, err
		}
	}
	if _, err := diff.ParseAlgorithm(c.Algorithm); err != nil {
		return Config{}, fmt.Errorf("%s: %w", c.OriginOf(KeyAlgorithm).name(), err)
	}
	if c.Context < 0 {
		return Config{}, fmt.Errorf("%s: %s: must not be negative, got %d", c.OriginOf(KeyContext).name(), KeyContext, c.Context)
	}
	return c, nil
}

// OriginOf reports which source last set key. The zero Origin means no source set it.
func (c Config) OriginOf(key string) Origin {
	return c.origin[key]
}

// Options converts c to diff engine options. The algorithm is assumed valid (Load checks it); an unknown name selects Myers.
func (c Config) Options() []diff.Option {
	alg, _ := diff.ParseAlgorithm(c.Algorithm)
	opts := []diff.Option{
		diff.WithAlgorithm(alg),
		diff.WithMaxCost(c.MaxCost),
	}
	if c.MissingNewlineMarker {
		opts = append(opts, diff.WithMissingNewlineMarker())
	}
	return opts
}

func (c *Config) apply(src source) error {
	values, err := src.values()
	if err != nil {
		// Missing or unreadable files contribute nothing.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil
		}
		return fmt.Errorf("%s: %w", src.origin().name(), err)
	}

	for key, raw := range values {
		set, ok := setters[key]
		if !ok {
			continue
		}
		if err := set(c, raw); err != nil {
			return fmt.Errorf("%s: %s: %w", src.origin().name(), key, err)
		}
		if c.origin == nil {
			c.origin = map[string]Origin{}
		}
		c.origin[key] = src.origin()
	}
	return nil
}

var setters = map[string]func(c *Config, raw any) error{
	KeyDisable: func(c *Config, raw any) (err error) {
		c.Disable, err = coerceBool(raw)
		return err
	},
	KeyContext: func(c *Config, raw any) (err error) {
		c.Context, err = coerceInt(raw)
		return err
	},
	KeyAlgorithm: func(c *Config, raw any) (err error) {
		c.Algorithm, err = coerceString(raw)
		return err
	},
	KeyMaxCost: func(c *Config, raw any) (err error) {
		c.MaxCost, err = coerceInt(raw)
		return err
	},
	KeyMissingNewlineMarker: func(c *Config, raw any) (err error) {
		c.MissingNewlineMarker, err = coerceBool(raw)
		return err
	},
}

func (o Origin) name() string {
	switch o.SourceType {
	case "default":
		return "Defaults"
	case "json_file":
		return "JSON File: " + o.SourceIdentifier
	case "env":
		return "ENV"
	}
	return o.SourceType
}
