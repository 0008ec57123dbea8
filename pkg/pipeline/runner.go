package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeseed/pkg/errors"
	seedio "github.com/matzehuels/treeseed/pkg/io"
	"github.com/matzehuels/treeseed/pkg/observability"
	"github.com/matzehuels/treeseed/pkg/render/nodelink"
	"github.com/matzehuels/treeseed/pkg/tree"
)

// Runner executes generation runs. It holds no per-run state, so one Runner
// may serve several runs in sequence.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute builds a tree, validates it, writes it as JSON and writes any
// requested diagrams. The context is checked between stages; a failure while
// writing leaves whatever the filesystem holds at that point.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	g := tree.NewGenerator()
	if opts.Seed != nil {
		g = tree.NewSeededGenerator(*opts.Seed)
	}
	hooks := observability.Generator()

	result := &Result{
		Path:      opts.Output,
		Seed:      g.Seed(),
		Artifacts: make(map[string]string),
	}

	// Stage 1: Build
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks.OnBuildStart(ctx, opts.Count, g.Seed())
	r.Logger.Debug("building tree", "nodes", opts.Count, "seed", g.Seed())

	buildStart := time.Now()
	roots := g.Build(opts.Count)
	if err := tree.Validate(roots); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "generated tree is invalid")
	}
	result.Roots = roots
	result.Count = tree.Count(roots)
	result.Depth = tree.Depth(roots)
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, result.Count, result.Depth, result.Stats.BuildTime)

	// Stage 2: Export
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exportStart := time.Now()
	n, err := seedio.ExportJSON(roots, opts.Output)
	hooks.OnExportComplete(ctx, FormatJSON, opts.Output, n, time.Since(exportStart), err)
	if err != nil {
		return nil, err
	}
	result.Bytes = n

	// Stage 3: Diagrams
	if err := r.writeDiagrams(ctx, roots, opts, result); err != nil {
		return nil, err
	}
	result.Stats.ExportTime = time.Since(exportStart)

	return result, nil
}

func (r *Runner) writeDiagrams(ctx context.Context, roots []*tree.Node, opts Options, result *Result) error {
	if opts.DOT == "" && opts.SVG == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dot, err := nodelink.ToDOT(roots, nodelink.Options{Detailed: opts.Detailed})
	if err != nil {
		return err
	}

	if opts.DOT != "" {
		start := time.Now()
		err := seedio.WriteFile(opts.DOT, []byte(dot))
		observability.Generator().OnExportComplete(ctx, FormatDOT, opts.DOT, int64(len(dot)), time.Since(start), err)
		if err != nil {
			return err
		}
		result.Artifacts[FormatDOT] = opts.DOT
	}

	if opts.SVG != "" {
		start := time.Now()
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err == nil {
			err = seedio.WriteFile(opts.SVG, svg)
		}
		observability.Generator().OnExportComplete(ctx, FormatSVG, opts.SVG, int64(len(svg)), time.Since(start), err)
		if err != nil {
			return fmt.Errorf("svg: %w", err)
		}
		result.Artifacts[FormatSVG] = opts.SVG
	}

	return nil
}
