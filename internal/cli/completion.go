package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionWriters maps each supported shell to its cobra generator.
var completionWriters = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

func completionShells() []string {
	shells := make([]string, 0, len(completionWriters))
	for s := range completionWriters {
		shells = append(shells, s)
	}
	slices.Sort(shells)
	return shells
}

func (c *CLI) completionCommand() *cobra.Command {
	shells := completionShells()
	return &cobra.Command{
		Use:   "completion <" + strings.Join(shells, "|") + ">",
		Short: "Print a shell completion script",
		Long: `Print a completion script for treeseed to stdout, e.g.

  source <(treeseed completion bash)
  treeseed completion fish > ~/.config/fish/completions/treeseed.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionWriters[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
