package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

// RunsKeyMap defines the key bindings for the recordings list.
type RunsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewRunsTable builds a table listing recordings, newest first.
func NewRunsTable(runs []breakout.Recording, height int) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Misses", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Arena", Width: 8},
		{Title: "Result", Width: 9},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 13},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Misses),
			strconv.FormatUint(r.Ticks, 10),
			fmt.Sprintf("%dx%d", r.Arena.X, r.Arena.Y),
			r.Phase.String(),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// RunsModel is the Bubble Tea model for browsing recordings.
type RunsModel struct {
	runs     []breakout.Recording
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	height   int
	selected int64
	quitting bool
}

// NewRunsModel creates a browser over the given recordings.
func NewRunsModel(runs []breakout.Recording, height int) RunsModel {
	return RunsModel{
		runs:   runs,
		table:  NewRunsTable(runs, height-6),
		help:   help.New(),
		keys:   DefaultRunsKeyMap(),
		height: height,
	}
}

// Selected returns the ID chosen with enter, 0 if the list was closed.
func (m RunsModel) Selected() int64 {
	return m.selected
}

// Init initializes the model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the recordings list.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				m.selected = m.runs[i].ID
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-6, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the list.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("RECORDED RUNS"))
	b.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a game with `breakout play`.")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// BrowseRuns shows the recordings list and returns the ID the user picked,
// or 0 if they quit.
func BrowseRuns(runs []breakout.Recording, height int) (int64, error) {
	p := tea.NewProgram(NewRunsModel(runs, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(RunsModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
