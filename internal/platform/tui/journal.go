package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// JournalSource is the read side of the run journal.
type JournalSource interface {
	RecentRuns(limit int) ([]storage.Run, error)
	Stats() (*storage.JournalStats, error)
}

var _ JournalSource = (*storage.Store)(nil)

// maxJournalRows limits how many runs the viewer loads.
const maxJournalRows = 200

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay seed"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel lists recorded runs, newest first.
type JournalModel struct {
	source   JournalSource
	runs     []storage.Run
	stats    *storage.JournalStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	selected *storage.Run
	quitting bool
}

// NewJournalModel creates a journal viewer and loads the runs.
func NewJournalModel(source JournalSource, width, height int) JournalModel {
	m := JournalModel{
		source: source,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Seed", Width: 20},
		{Title: "Score", Width: 6},
		{Title: "Ticks", Width: 7},
		{Title: "Pipes", Width: 6},
		{Title: "Cause", Width: 9},
		{Title: "Player", Width: 10},
	}

	height := m.height - 9 // Title, stats, borders, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads runs and stats from the source.
func (m *JournalModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.source.RecentRuns(maxJournalRows)
	if err != nil {
		m.loadErr = err
		m.updateTableRows()
		return
	}
	m.runs = runs

	stats, err := m.source.Stats()
	if err != nil {
		m.loadErr = err
	}
	m.stats = stats
	m.updateTableRows()
}

// updateTableRows copies the loaded runs into the table.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Spawned),
			r.Cause,
			r.Player,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				run := m.runs[i]
				m.selected = &run
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("RUN JOURNAL"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.statsLine()))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.tableContent()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the whole journal.
func (m JournalModel) statsLine() string {
	if m.loadErr != nil {
		return "error: " + m.loadErr.Error()
	}
	if m.stats == nil || m.stats.Runs == 0 {
		return "no runs recorded"
	}
	return fmt.Sprintf("%d runs, %d ticks played, mean score %.1f, last played %s",
		m.stats.Runs, m.stats.TotalTicks, m.stats.MeanScore,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// tableContent renders the table or an empty message.
func (m JournalModel) tableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay with --journal to keep a log.")
	}
	return m.table.View()
}

// Selected returns the run picked for replay, or nil.
func (m JournalModel) Selected() *storage.Run {
	return m.selected
}

// RunJournal shows the journal viewer. It returns the run the user picked
// for replay, or nil if they quit.
func RunJournal(source JournalSource, width, height int) (*storage.Run, error) {
	p := tea.NewProgram(
		NewJournalModel(source, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(JournalModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
