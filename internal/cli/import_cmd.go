package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chaiwat-s/onepage/internal/cli/formatter"
	"github.com/chaiwat-s/onepage/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	var title string
	var review, dryRun bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project brief (PDF or plain text)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if dryRun {
				result, err := app.Import.PreviewFile(ctx, args[0], title)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", formatter.FormatImportPreview(result.Project, result.DefaultedFields))
				fmt.Println(formatter.Dim("Dry run, nothing was saved."))
				return nil
			}

			if review {
				return runImportReview(ctx, app, args[0], title)
			}

			result, err := app.Import.ImportFile(ctx, args[0], title)
			if err != nil {
				return err
			}
			printImportResult(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Project title override when the document has none")
	cmd.Flags().BoolVar(&review, "review", false, "Review and edit extracted fields before saving")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract and display without saving")

	return cmd
}

// runImportReview previews the extraction, then lets the user correct the
// fields the extractor most often gets wrong before saving.
func runImportReview(ctx context.Context, app *App, path, title string) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("--review requires an interactive terminal")
	}

	result, err := app.Import.PreviewFile(ctx, path, title)
	if err != nil {
		return err
	}
	p := result.Project

	fmt.Printf("%s\n", formatter.FormatImportPreview(p, result.DefaultedFields))

	budgetStr := strconv.FormatInt(p.Budget, 10)
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ชื่อโครงการ").
				Value(&p.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("หน่วยงาน").
				Value(&p.Department),
			huh.NewInput().
				Title("ผู้รับผิดชอบ").
				Value(&p.OwnerName),
			huh.NewInput().
				Title("งบประมาณ (บาท)").
				Value(&budgetStr).
				Validate(validateBudget),
			huh.NewConfirm().
				Title("บันทึกโครงการนี้?").
				Value(&confirmed),
		),
	).WithTheme(onepageHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running review form: %w", err)
	}
	if !confirmed {
		fmt.Println(formatter.Dim("Import cancelled."))
		return nil
	}

	budget, err := strconv.ParseInt(strings.TrimSpace(budgetStr), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", budgetStr, err)
	}
	p.Budget = budget

	if err := app.Import.Save(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Imported project %s [%s]\n", p.Name, p.DisplayID())
	return nil
}

func printImportResult(result *service.ImportResult) {
	p := result.Project
	fmt.Printf("Imported project %s [%s]\n", p.Name, p.DisplayID())
	if len(result.DefaultedFields) > 0 {
		fmt.Printf("%s\n", formatter.StyleYellow.Render(
			fmt.Sprintf("Fields defaulted (not found in document): %s",
				strings.Join(result.DefaultedFields, ", "))))
	}
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateBudget(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("must be a whole number of baht")
	}
	if n < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}
