package cli

import (
	"fmt"

	"github.com/Flyrell/paycal/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Print one setting, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		var key string
		if len(args) > 0 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		v, err := cfg.Value(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, v)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s\n\n", Silent(config.ConfigPath(homeDir)))
	for _, k := range config.Keys() {
		v, _ := cfg.Value(k)
		_, _ = fmt.Fprintf(w, "  %s = %s\n", Primary(fmt.Sprintf("%-15s", k)), Text(v))
	}
	return nil
}
