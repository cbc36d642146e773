package cli

import (
	"fmt"
	"io"

	"github.com/Flyrell/paycal/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "paycal",
	Short:         "Biweekly pay periods, paydays and hours from daily statuses",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(periodsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loggerFor returns a debug console logger when --verbose is set and a
// no-op logger otherwise.
func loggerFor(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return logging.Nop()
	}
	log, err := logging.New("debug", "console")
	if err != nil {
		return logging.Nop()
	}
	return log
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "%s\n", Error("error: "+err.Error()))
}
