package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/mimeview/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [dir]",
	Short: "Browse a directory and see which handler renders each file",
	Long: `Launch an interactive terminal browser for a directory. Each file shows the
handler that would render it, or "download" when none claims its type.
Changes to config.toml are picked up while the browser runs.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Open directory / show file details
  Esc      - Back / parent directory
  H        - Toggle handler list
  r        - Refresh
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}

	app, err := tui.NewApp(&tui.Ports{Viewer: viewer}, dir)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	stop := startWatch(cmd.Context())
	defer stop()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
