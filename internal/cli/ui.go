package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phrazzld/taskpad/internal/tui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive task screen",
	Long: `Open a terminal screen with a form for new tasks and the list of the
five most recent open tasks.

Switch focus with Tab, submit or complete with Enter, refresh with r,
quit with Esc.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(tui.New(cmd.Context(), API), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
