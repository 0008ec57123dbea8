package cli

import (
	"github.com/spf13/cobra"

	seedio "github.com/matzehuels/treeseed/pkg/io"
	"github.com/matzehuels/treeseed/pkg/pipeline"
	"github.com/matzehuels/treeseed/pkg/tree"
)

func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file]",
		Short: "Check that a generated document is a well-formed tree",
		Long: `Read a document written by treeseed and check its tree invariants:
a single root with a null parentId, unique ids, parentIds that match the
containing node, and no deleted nodes.

Defaults to DBInitial.json next to the executable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := pipeline.DefaultOutputPath()
			if len(args) > 0 {
				path = args[0]
			}
			return c.runVerify(cmd, path)
		},
	}
}

func (c *CLI) runVerify(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	roots, err := seedio.ImportJSON(path)
	if err != nil {
		return err
	}
	if err := tree.Validate(roots); err != nil {
		return err
	}

	count, depth := tree.Count(roots), tree.Depth(roots)
	if count < pipeline.MinNodes || count > pipeline.MaxNodes {
		printWarning(c.Out, "%d nodes is outside the generated range [%d, %d]", count, pipeline.MinNodes, pipeline.MaxNodes)
	}
	prog.done("Verified document", "nodes", count)
	printVerified(c.Out, path, count, depth)
	return nil
}
