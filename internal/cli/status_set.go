package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Flyrell/paycal/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// quickStatuses are offered when no status text is given on the command line.
var quickStatuses = []string{"8hrs", "off", "canal", "custom..."}

var statusSetCmd = LeafCommand{
	Use:     "set <day> [status...]",
	Short:   "Set the status of a day (a blank status clears it)",
	Example: "  paycal status set today 10hrs 2ot\n  paycal status set 2025-08-11 off",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := getHomeDir()
		if err != nil {
			return err
		}
		text := strings.Join(args[1:], " ")
		return runStatusSet(cmd, homeDir, args[0], text, NewPromptKit(), isTerminal(os.Stdin), time.Now)
	},
}.Build()

func runStatusSet(
	cmd *cobra.Command,
	homeDir, dayArg, text string,
	pk PromptKit,
	interactive bool,
	nowFn func() time.Time,
) error {
	day, err := resolveDay(dayArg, nowFn())
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		if !interactive {
			return fmt.Errorf("status text required (e.g. paycal status set %s 8hrs)", day)
		}
		text, err = promptStatus(pk, day)
		if err != nil {
			return err
		}
	}

	log := loggerFor(cmd)
	e, err := openEnv(homeDir, log)
	if err != nil {
		return err
	}
	defer func() { _ = e.Close() }()

	if err := store.Save(cmd.Context(), e.store, day, text); err != nil {
		return err
	}
	log.Debug("status saved", zap.String("day", day), zap.String("status", text))

	w := cmd.OutOrStdout()
	if strings.TrimSpace(text) == "" {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("cleared status for %s", Primary(day))))
		return nil
	}
	printStatusLine(w, day, text)
	return nil
}

// promptStatus asks for a status, offering the common ones first.
func promptStatus(pk PromptKit, day string) (string, error) {
	idx, err := pk.Select(fmt.Sprintf("Status for %s", day), quickStatuses)
	if err != nil {
		return "", err
	}
	if idx >= 0 && idx < len(quickStatuses)-1 {
		return quickStatuses[idx], nil
	}
	return pk.Prompt(fmt.Sprintf("Status for %s", day))
}
