package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists [package]",
	Short: "Exit with an error unless the package is known",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

var modversionCmd = &cobra.Command{
	Use:   "modversion [package]",
	Short: "Print the version of a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runModversion,
}

var installedCmd = &cobra.Command{
	Use:   "installed [package] [specifier]",
	Short: "Check whether a package matches a version specifier",
	Long: `Installed prints true if the package exists and its version matches the
specifier, e.g. ">= 1.2" or "==3.2.1", and false otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runInstalled,
}

var requiresCmd = &cobra.Command{
	Use:   "requires [package]",
	Short: "Print the packages a package requires",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequires,
}

var listAllCmd = &cobra.Command{
	Use:   "list-all",
	Short: "Print the names of all known packages",
	Args:  cobra.NoArgs,
	RunE:  runListAll,
}

func init() {
	rootCmd.AddCommand(existsCmd, modversionCmd, installedCmd, requiresCmd, listAllCmd)
}

func runExists(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ok, err := c.Exists(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("package %s not found", args[0])
	}
	return nil
}

func runModversion(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	v, err := c.ModVersion(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runInstalled(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ok, err := c.Installed(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}

func runRequires(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	reqs, err := c.Requires(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(reqs) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(reqs, "\n"))
	}
	return nil
}

func runListAll(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	pkgs, err := c.ListAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(pkgs) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pkgs, "\n"))
	}
	return nil
}
