package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeseed/pkg/pipeline"
)

type generateOptions struct {
	config   string
	output   string
	seed     uint64
	seeded   bool
	dot      string
	svg      string
	detailed bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   appName + " [N]",
		Short: "Generate a random tree-shaped JSON seed document",
		Long: `Generate a random tree of N nodes and write it as pretty-printed JSON.

N defaults to 10. Values outside [10, 1000000] are clamped and values that
are not integers fall back to the default. The document is written to
DBInitial.json next to the executable unless --output is given.`,
		Example: `  # Generate the default 10-node tree
  treeseed

  # Generate 5000 nodes into a fixtures directory
  treeseed 5000 -o fixtures/DBInitial.json

  # Reproduce a previous run and draw it
  treeseed 200 --seed 42 --svg tree.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seeded = cmd.Flags().Changed("seed")
			return c.runGenerate(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: "+pipeline.OutputFile+" next to the executable)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible tree")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "also write a Graphviz DOT diagram to this path")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also render an SVG diagram to this path")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node ids in diagram labels")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.config != "" {
		cfg, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg, opts)
		if cfg.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		logger.Debug("loaded config", "path", opts.config)
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	count := pipeline.ParseCount(arg)
	logger.Debug("node count", "arg", arg, "count", count)

	popts := pipeline.Options{
		Count:    count,
		Output:   opts.output,
		DOT:      opts.dot,
		SVG:      opts.svg,
		Detailed: opts.detailed,
	}
	if opts.seeded {
		seed := opts.seed
		popts.Seed = &seed
	}

	var spinner *Spinner
	if count >= spinnerThreshold {
		spinner = newSpinner(ctx, c.Err, "Generating tree...")
		spinner.Start()
	}

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	prog.done("Generated tree", "depth", result.Depth, "seed", result.Seed)
	for format, path := range result.Artifacts {
		logger.Info("Wrote diagram", "format", format, "path", path)
	}
	printGenerated(c.Out, result.Count, result.Path)
	return nil
}
