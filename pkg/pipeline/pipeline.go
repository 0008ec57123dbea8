// Package pipeline provides the generate → validate → export pipeline for
// treeseed.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Count:  pipeline.ParseCount(arg),
//	    Output: "DBInitial.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Count, result.Path)
//
// # Counts
//
// Requested counts are never rejected. [ParseCount] falls back to
// [DefaultNodes] when its input is missing or not an integer, and clamps
// everything else into [MinNodes, MaxNodes].
package pipeline

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/treeseed/pkg/errors"
	"github.com/matzehuels/treeseed/pkg/tree"
)

const (
	// MinNodes is the smallest tree that will be generated.
	MinNodes = 10

	// MaxNodes is the largest tree that will be generated.
	MaxNodes = 1_000_000

	// DefaultNodes is used when no count, or an unparsable one, is given.
	DefaultNodes = 10

	// OutputFile is the fixed name of the generated document.
	OutputFile = "DBInitial.json"
)

// Format constants for exported artifacts.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Options contains all configuration for one generation run.
type Options struct {
	// Count is the number of nodes to generate. Zero means DefaultNodes;
	// other values are clamped into [MinNodes, MaxNodes].
	Count int

	// Output is the JSON destination. Empty means DefaultOutputPath().
	Output string

	// Seed makes the run reproducible. Nil picks a random seed, which is
	// reported in the Result.
	Seed *uint64

	// DOT and SVG are optional diagram destinations.
	DOT string
	SVG string

	// Detailed adds node ids to diagram labels.
	Detailed bool

	validated bool
}

// Result describes a completed run.
type Result struct {
	// Roots is the generated forest (always a single root).
	Roots []*tree.Node

	// Path is the JSON file that was written.
	Path string

	// Count is the number of nodes in the written document.
	Count int

	// Depth is the number of levels in the tree.
	Depth int

	// Seed reproduces this run when passed back in Options.Seed.
	Seed uint64

	// Bytes is the size of the JSON document.
	Bytes int64

	// Artifacts maps diagram formats to the paths they were written to.
	Artifacts map[string]string

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution timings.
type Stats struct {
	BuildTime  time.Duration
	ExportTime time.Duration
}

// ValidateAndSetDefaults clamps the count, fills in the output path, and
// checks every destination path. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Count == 0 {
		o.Count = DefaultNodes
	}
	o.Count = ClampCount(o.Count)

	if o.Output == "" {
		o.Output = DefaultOutputPath()
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	for _, p := range []string{o.DOT, o.SVG} {
		if p == "" {
			continue
		}
		if err := errors.ValidateOutputPath(p); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ClampCount constrains n into [MinNodes, MaxNodes].
func ClampCount(n int) int {
	return max(MinNodes, min(n, MaxNodes))
}

// ParseCount converts a command-line argument into a node count.
//
// An empty or non-integer argument yields DefaultNodes. Integers are clamped
// into [MinNodes, MaxNodes], including ones too large to fit in an int.
// Surrounding whitespace and underscore digit separators are accepted, so
// "1_000" means 1000.
func ParseCount(arg string) int {
	s := strings.TrimSpace(arg)
	if s == "" {
		return DefaultNodes
	}
	if strings.Contains(s, "_") {
		if !validUnderscores(s) {
			return DefaultNodes
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return DefaultNodes
		}
		if strings.HasPrefix(s, "-") {
			n = math.MinInt
		} else {
			n = math.MaxInt
		}
	}
	return ClampCount(n)
}

// validUnderscores reports whether every underscore in s sits between two
// digits.
func validUnderscores(s string) bool {
	for i := range len(s) {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// DefaultOutputPath returns OutputFile inside the directory holding the
// running executable. If that directory cannot be determined the file is
// placed in the working directory.
func DefaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return OutputFile
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), OutputFile)
}
