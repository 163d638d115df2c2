package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaiwat-s/onepage/internal/cli/formatter"
)

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline ID",
		Short: "Render a project's schedule as a fiscal-year Gantt chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			view, err := app.Timeline.Build(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatGantt(view))
			return nil
		},
	}
}
