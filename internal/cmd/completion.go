package cmd

import (
	"fmt"

	"github.com/neighborbank/cli/pkg/feed"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/service"
	"github.com/neighborbank/cli/pkg/session"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Print a shell completion script",
	Long: `Print a completion script for neighborbank.

Besides command names, the script completes the feed sorts your role may
use and the values of the profile flags.`,
	Example: `  # current shell only
  source <(neighborbank completion bash)
  neighborbank completion fish | source

  # every new zsh session
  neighborbank completion zsh > "${fpath[1]}/_neighborbank"`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return fmt.Errorf("unknown shell: %s", args[0])
	},
}

// completionRole is the role sort completion is offered for.
var completionRole = func() session.Role {
	sess, err := service.CurrentSession()
	if err != nil {
		logger.Debug("Completing as guest", "error", err)
	}
	return sess.Role
}

func completeSort(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	sorts := feed.AllowedSorts(completionRole())
	names := make([]string, 0, len(sorts))
	for _, s := range sorts {
		names = append(names, string(s))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
