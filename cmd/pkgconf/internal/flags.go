package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goplus/pkgconfig/pkgconfig"
	"github.com/goplus/pkgconfig/pkgs/flags"
	"github.com/spf13/cobra"
)

var (
	flagStatic   bool
	flagTokens   bool
	flagSeparate bool
	flagOnly     string
)

var cflagsCmd = &cobra.Command{
	Use:   "cflags [package]",
	Short: "Print the compiler flags of a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runCFlags,
}

var libsCmd = &cobra.Command{
	Use:   "libs [package]",
	Short: "Print the linker flags of a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibs,
}

var parseCmd = &cobra.Command{
	Use:   "parse [package...]",
	Short: "Print the parsed build flags of packages as JSON",
	Long: `Parse queries the compiler and linker flags of the packages and prints
define_macros, include_dirs, library_dirs and libraries as JSON.

With --separate every package is queried on its own and the results are
concatenated in argument order. With --only a single category is printed,
one value per line.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	for _, cmd := range []*cobra.Command{cflagsCmd, libsCmd, parseCmd} {
		cmd.Flags().BoolVar(&flagStatic, "static", false, "Include flags for static linking")
	}
	parseCmd.Flags().BoolVar(&flagTokens, "tokens", false, "Print the raw flag tokens instead of JSON")
	parseCmd.Flags().BoolVar(&flagSeparate, "separate", false, "Query each package separately and merge the results")
	parseCmd.Flags().StringVar(&flagOnly, "only", "", "Print only one category: define_macros, include_dirs, library_dirs or libraries")
	rootCmd.AddCommand(cflagsCmd, libsCmd, parseCmd)
}

func queryOptions() []pkgconfig.QueryOption {
	if flagStatic {
		return []pkgconfig.QueryOption{pkgconfig.Static()}
	}
	return nil
}

func runCFlags(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	out, err := c.CFlags(cmd.Context(), args[0], queryOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runLibs(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	out, err := c.Libs(cmd.Context(), args[0], queryOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	pkgs := strings.Join(args, " ")
	if flagTokens {
		opts := []string{"--cflags", "--libs"}
		if flagStatic {
			opts = append(opts, "--static")
		}
		out, err := c.Query(cmd.Context(), pkgs, opts...)
		if err != nil {
			return err
		}
		for _, tok := range flags.Split(out) {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	}
	fs, err := parseFlags(cmd.Context(), c, args)
	if err != nil {
		return err
	}
	if flagOnly != "" {
		return printCategory(cmd, fs, flags.Category(flagOnly))
	}
	return printJSON(cmd, fs)
}

func parseFlags(ctx context.Context, c *pkgconfig.Client, pkgs []string) (flags.FlagSet, error) {
	if !flagSeparate {
		return c.Parse(ctx, strings.Join(pkgs, " "), queryOptions()...)
	}
	fs := flags.New()
	for _, pkg := range pkgs {
		one, err := c.Parse(ctx, pkg, queryOptions()...)
		if err != nil {
			return flags.FlagSet{}, err
		}
		fs.Merge(one)
	}
	return fs, nil
}

func printCategory(cmd *cobra.Command, fs flags.FlagSet, cat flags.Category) error {
	var values []string
	switch cat {
	case flags.DefineMacros:
		values = fs.Macros()
	case flags.IncludeDirs, flags.LibraryDirs, flags.Libraries:
		values = fs.Get(cat)
	default:
		return fmt.Errorf("unknown flag category %q", cat)
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

func printJSON(cmd *cobra.Command, fs flags.FlagSet) error {
	data, err := json.MarshalIndent(fs, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal flags: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
