package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusRemoveCmd = LeafCommand{
	Use:     "remove <day>",
	Aliases: []string{"rm"},
	Short:   "Remove the status of a day",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		confirm := NewConfirmFunc()
		if yes {
			confirm = AlwaysYes()
		}
		return runStatusRemove(cmd, homeDir, args[0], confirm, time.Now)
	},
}.Build()

func runStatusRemove(cmd *cobra.Command, homeDir, dayArg string, confirm ConfirmFunc, nowFn func() time.Time) error {
	day, err := resolveDay(dayArg, nowFn())
	if err != nil {
		return err
	}

	e, err := openEnv(homeDir, loggerFor(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	text, ok, err := e.store.Get(cmd.Context(), day)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no status for %s", day)
	}

	w := cmd.OutOrStdout()
	confirmed, err := confirm(fmt.Sprintf("Remove status '%s' for %s?", text, day))
	if err != nil {
		return err
	}
	if !confirmed {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("cancelled"))
		return nil
	}

	if err := e.store.Delete(cmd.Context(), day); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("removed status for %s", Primary(day))))
	return nil
}
