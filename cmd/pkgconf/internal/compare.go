package internal

import (
	"fmt"

	"github.com/goplus/pkgconfig/pkgs/version"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [version] [version|specifier]",
	Short: "Compare two versions without running pkg-config",
	Long: `Compare prints -1, 0 or 1 when the second argument is a plain version.
If it starts with a comparator (=, ==, >, >=, <, <=) it prints whether the
first version satisfies it.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	policy, err := version.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}
	spec, err := version.ParseSpecifier(args[1])
	if err != nil {
		return err
	}
	if spec.Op != version.OpNone {
		ok, err := spec.Match(policy, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	}
	r, err := policy.Compare(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r)
	return nil
}
