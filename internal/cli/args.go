package cli

import (
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var negativeCountRe = regexp.MustCompile(`^-\d[\d_]*$`)

// NormalizeArgs moves a negative node count such as "-5" behind a "--"
// terminator so pflag reads it as the positional N instead of a shorthand
// flag. Arguments already past a "--", and values of flags that take one
// ("--seed -5"), are left alone.
func NormalizeArgs(root *cobra.Command, args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !negativeCountRe.MatchString(a) {
			continue
		}
		if i > 0 && takesValue(root, args[i-1]) {
			continue
		}
		out := slices.Concat(args[:i], args[i+1:])
		return append(out, "--", a)
	}
	return args
}

// takesValue reports whether tok is a flag of root that consumes the next
// argument as its value.
func takesValue(root *cobra.Command, tok string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if name == "" || strings.Contains(name, "=") {
			return false
		}
		f = lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) })
	case strings.HasPrefix(tok, "-") && len(tok) == 2:
		short := tok[1:]
		f = lookupFlag(root, func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(short) })
	}
	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(root *cobra.Command, find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	if f := find(root.Flags()); f != nil {
		return f
	}
	return find(root.PersistentFlags())
}
