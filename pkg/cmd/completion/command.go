package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/app"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

// NewCommand returns the "symcheck completion" command.
// It takes the root command so it can generate completions for the full tree.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	var noDescFlag bool

	cmd := &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `Print a shell completion script for symcheck.

  bash:  source <(symcheck completion bash)
  zsh:   symcheck completion zsh > "${fpath[1]}/_symcheck"
  fish:  symcheck completion fish > ~/.config/fish/completions/symcheck.fish
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := generate(root, args[0], a.OutWriter, !noDescFlag); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDescFlag, "no-descriptions", false, "Leave command and flag descriptions out of the script")
	return cmd
}

func generate(root *cobra.Command, shell string, w io.Writer, desc bool) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, desc)
	case "zsh":
		if desc {
			return root.GenZshCompletion(w)
		}
		return root.GenZshCompletionNoDesc(w)
	case "fish":
		return root.GenFishCompletion(w, desc)
	case "powershell":
		if desc {
			return root.GenPowerShellCompletionWithDesc(w)
		}
		return root.GenPowerShellCompletion(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}
