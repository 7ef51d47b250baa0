package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	tint "github.com/lrstanley/bubbletint"
	"github.com/ygelfand/tocview/internal/dom"
	"github.com/ygelfand/tocview/internal/tableview"
	"github.com/ygelfand/tocview/internal/ui"
)

type HelpKey struct {
	Key  string
	Desc string
}

// MountedMsg carries the cells of a freshly mounted view
type MountedMsg struct {
	Headers []string
	Rows    [][]string
}

// Model shows a TableView in the terminal
type Model struct {
	view  *tableview.TableView
	theme tint.Tint
	table table.Model

	ready  bool
	width  int
	height int
}

func New(view *tableview.TableView, theme tint.Tint) *Model {
	schema := view.Schema()
	return &Model{
		view:  view,
		theme: theme,
		table: ui.NewTable(ui.Columns(schema, nil), theme),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.mount
}

func (m *Model) mount() tea.Msg {
	headers, rows := dom.Cells(m.view.Mount())
	slog.Debug("TUI: view mounted", "columns", len(headers), "rows", len(rows))
	return MountedMsg{Headers: headers, Rows: rows}
}

func (m *Model) Ready() bool {
	return m.ready
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case MountedMsg:
		cols := ui.Columns(msg.Headers, msg.Rows)
		m.table = ui.NewTable(cols, m.theme)
		m.table.SetRows(ui.TableRows(cols, msg.Rows))
		m.resize()
		m.ready = true
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(ui.GetTableHeight(m.height))
}

func (m *Model) View() string {
	if !m.ready {
		return ui.HintStyle(m.theme).Padding(1).Render("Loading...")
	}

	var sb strings.Builder
	sb.WriteString(ui.TitleStyle(m.theme).Render("Table of Contents"))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	if len(m.table.Rows()) == 0 {
		sb.WriteString(ui.HintStyle(m.theme).Render("No records."))
		sb.WriteString("\n")
	}

	var hints []string
	for _, k := range m.HelpKeys() {
		hints = append(hints, fmt.Sprintf("%s %s", k.Key, k.Desc))
	}
	sb.WriteString(ui.HintStyle(m.theme).Render(strings.Join(hints, " • ")))
	return sb.String()
}

func (m *Model) HelpKeys() []HelpKey {
	return []HelpKey{
		{Key: "j/down", Desc: "Move Down"},
		{Key: "k/up", Desc: "Move Up"},
		{Key: "q", Desc: "Quit"},
	}
}
