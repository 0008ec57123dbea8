package cli

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeseed/pkg/errors"
)

// Config is the optional TOML configuration file. Command-line flags take
// precedence over values set here.
//
//	output   = "fixtures/DBInitial.json"
//	seed     = 42
//	dot      = "fixtures/tree.dot"
//	svg      = "fixtures/tree.svg"
//	detailed = true
//	verbose  = false
//
// Relative paths are resolved against the directory holding the file.
type Config struct {
	Output   string  `toml:"output"`
	Seed     *uint64 `toml:"seed"`
	DOT      string  `toml:"dot"`
	SVG      string  `toml:"svg"`
	Detailed bool    `toml:"detailed"`
	Verbose  bool    `toml:"verbose"`
}

// loadConfig decodes the TOML file at path. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	base := filepath.Dir(path)
	cfg.Output = resolvePath(base, cfg.Output)
	cfg.DOT = resolvePath(base, cfg.DOT)
	cfg.SVG = resolvePath(base, cfg.SVG)
	return &cfg, nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// applyConfig copies config values into opts for every flag the user did
// not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *Config, opts *generateOptions) {
	flags := cmd.Flags()
	if cfg.Output != "" && !flags.Changed("output") {
		opts.output = cfg.Output
	}
	if cfg.Seed != nil && !flags.Changed("seed") {
		opts.seed = *cfg.Seed
		opts.seeded = true
	}
	if cfg.DOT != "" && !flags.Changed("dot") {
		opts.dot = cfg.DOT
	}
	if cfg.SVG != "" && !flags.Changed("svg") {
		opts.svg = cfg.SVG
	}
	if cfg.Detailed && !flags.Changed("detailed") {
		opts.detailed = true
	}
}
