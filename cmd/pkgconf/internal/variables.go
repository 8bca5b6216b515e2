package internal

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var variablesCmd = &cobra.Command{
	Use:   "variables [package]",
	Short: "Print all variables of a package as name=value",
	Args:  cobra.ExactArgs(1),
	RunE:  runVariables,
}

var variableCmd = &cobra.Command{
	Use:   "variable [package] [name]",
	Short: "Print one variable of a package",
	Args:  cobra.ExactArgs(2),
	RunE:  runVariable,
}

func init() {
	rootCmd.AddCommand(variablesCmd, variableCmd)
}

func runVariables(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	vars, err := c.Variables(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, vars[name])
	}
	return nil
}

func runVariable(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	val, err := c.Variable(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}
