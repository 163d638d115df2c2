package cli

import (
	"github.com/spf13/cobra"

	"github.com/chaiwat-s/onepage/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Import   service.ImportService
	Timeline service.TimelineService

	// IsInteractive reports whether stdin is an interactive terminal.
	// Review forms and the browse TUI refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "onepage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "onepage",
		Short: "Import government project briefs and track them as one-page records",
	}

	root.AddCommand(
		newImportCmd(app),
		newProjectCmd(app),
		newTimelineCmd(app),
		newBrowseCmd(app),
	)

	return root
}
