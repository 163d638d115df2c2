package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chaiwat-s/onepage/internal/cli/formatter"
	"github.com/chaiwat-s/onepage/internal/domain"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse project records interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			m := newBrowseModel(app)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// browseProjectsLoadedMsg signals that project list data has been loaded.
type browseProjectsLoadedMsg struct {
	projects []*domain.Project
	err      error
}

// browseDetailLoadedMsg carries the rendered one-page card plus the Gantt
// chart for the selected project.
type browseDetailLoadedMsg struct {
	content string
	err     error
}

// browseModel is the bubbletea model for the browse TUI. It has two modes:
// the navigable project list, and a scrollable detail viewport opened with
// enter.
type browseModel struct {
	app      *App
	projects []*domain.Project
	cursor   int
	loading  bool
	err      error

	// Filtering
	filtering bool
	filter    string

	// Detail mode
	showingDetail bool
	detailVP      viewport.Model

	width  int
	height int
}

func newBrowseModel(app *App) *browseModel {
	vp := viewport.New(0, 0)
	return &browseModel{
		app:      app,
		loading:  true,
		detailVP: vp,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadProjects()
}

func (m *browseModel) loadProjects() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		projects, err := app.Projects.List(context.Background())
		return browseProjectsLoadedMsg{projects: projects, err: err}
	}
}

func (m *browseModel) loadDetail(projectID string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		p, err := app.Projects.GetByID(ctx, projectID)
		if err != nil {
			return browseDetailLoadedMsg{err: err}
		}
		content := formatter.FormatProjectInspect(p)
		if view, err := app.Timeline.Build(ctx, projectID); err == nil {
			content += "\n" + formatter.FormatGantt(view)
		}
		return browseDetailLoadedMsg{content: content}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detailVP.Width = msg.Width
		m.detailVP.Height = msg.Height - 2
		return m, nil

	case browseProjectsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		return m, nil

	case browseDetailLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.showingDetail = true
		m.detailVP.SetContent(msg.content)
		m.detailVP.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.showingDetail {
			return m.updateDetail(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleProjects()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			return m, m.loadDetail(visible[m.cursor].ID)
		}
	case "/":
		m.filtering = true
		m.filter = ""
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.cursor = 0
		}
	default:
		if len(msg.Runes) > 0 {
			m.filter += string(msg.Runes)
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.showingDetail = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.detailVP, cmd = m.detailVP.Update(msg)
	return m, cmd
}

func (m *browseModel) visibleProjects() []*domain.Project {
	if m.filter == "" {
		return m.projects
	}
	lf := strings.ToLower(m.filter)
	var filtered []*domain.Project
	for _, p := range m.projects {
		if strings.Contains(strings.ToLower(p.Name), lf) ||
			strings.Contains(strings.ToLower(p.Code), lf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading projects...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.showingDetail {
		return m.detailVP.View() + "\n" + formatter.Dim("  ↑/↓ scroll  esc back")
	}

	visible := m.visibleProjects()

	var b strings.Builder
	b.WriteString("\n")

	if m.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + m.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No projects found.") + "\n")
		return b.String()
	}

	for i, p := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%-8s %s  %s  %s\n",
			cursor,
			formatter.StyleGreen.Render(p.DisplayID()),
			nameStyle.Render(padRight(p.Name, 30)),
			formatter.StatusPill(p.Status),
			formatter.Dim("ปีงบ "+formatter.FiscalYearBE(p.FiscalYear)),
		))
	}

	b.WriteString("\n  " + formatter.Dim("enter detail  / filter  q quit"))
	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
