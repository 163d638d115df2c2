package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaiwat-s/onepage/internal/calendar"
	"github.com/chaiwat-s/onepage/internal/cli/formatter"
	"github.com/chaiwat-s/onepage/internal/domain"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	// 1. Exact code match (case-insensitive, indexed lookup)
	if p, err := app.Projects.GetByCode(ctx, input); err == nil {
		return p.ID, nil
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	// 2. Exact UUID match
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage imported project records",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var fiscalYear int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List project records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var projects []*domain.Project
			var err error
			if cmd.Flags().Changed("fiscal-year") {
				// Accept the Buddhist Era numbering users type as well as
				// the Gregorian year records are stored under.
				projects, err = app.Projects.ListByFiscalYear(ctx, calendar.ToGregorianYear(fiscalYear))
			} else {
				projects, err = app.Projects.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().IntVar(&fiscalYear, "fiscal-year", 0, "Filter by fiscal year (Buddhist Era or Gregorian)")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show the full one-page record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(p))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var code, name, owner, status string
	var progress int
	var budget int64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("code") {
				p.Code = strings.ToUpper(code)
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("owner") {
				p.OwnerName = owner
			}
			if cmd.Flags().Changed("status") {
				p.Status = domain.ProjectStatus(status)
			}
			if cmd.Flags().Changed("progress") {
				p.Progress = progress
			}
			if cmd.Flags().Changed("budget") {
				p.Budget = budget
			}
			p.UpdatedAt = time.Now().UTC()

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Updated project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Short project code, e.g. PJ-001")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&owner, "owner", "", "Responsible person")
	cmd.Flags().StringVar(&status, "status", "", "Project status (on_track|at_risk|delayed|done)")
	cmd.Flags().IntVar(&progress, "progress", 0, "Percent complete (0-100)")
	cmd.Flags().Int64Var(&budget, "budget", 0, "Budget in whole baht")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}
