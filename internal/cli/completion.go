package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Flyrell/paycal/internal/config"
	"github.com/spf13/cobra"
)

var validShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = newCompletionCmd()

func newCompletionCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:     "completion [SHELL]",
		Short:   "Generate shell completion script",
		Example: "  source <(paycal completion bash)",
		Args:    cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = detectShell(os.Getenv("SHELL"))
				if shell == "" {
					return fmt.Errorf("could not detect shell from $SHELL; please specify one explicitly (bash, zsh, fish, powershell)")
				}
			}
			return runCompletion(cmd, shell)
		},
	}.Build()
	cmd.ValidArgs = validShells
	return cmd
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)

	configGetCmd.ValidArgsFunction = completeConfigKeys
	configSetCmd.ValidArgsFunction = completeConfigKeys
}

func runCompletion(cmd *cobra.Command, shell string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return root.GenBashCompletionV2(out, true)
	case "zsh":
		return root.GenZshCompletion(out)
	case "fish":
		return root.GenFishCompletion(out, true)
	case "powershell":
		return root.GenPowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (valid: bash, zsh, fish, powershell)", shell)
	}
}

// detectShell maps a $SHELL path to a supported shell name.
func detectShell(shellPath string) string {
	switch base := filepath.Base(shellPath); base {
	case "bash", "zsh", "fish":
		return base
	}
	return ""
}

// completeConfigKeys completes the key argument of config get/set.
func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
}
