package cli

import (
	"fmt"

	"github.com/Flyrell/paycal/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:     "set <key> <value>",
	Short:   "Change a setting in ~/.paycal/config.json",
	Example: "  paycal config set anchor 2026-01-11\n  paycal config set store sqlite",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	if err := config.Set(homeDir, key, value); err != nil {
		return err
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	v, _ := cfg.Value(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", Primary(key), v)))
	return nil
}
