package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

type historyKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k historyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Select, k.Quit}
}

func (k historyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHistoryKeyMap() historyKeyMap {
	return historyKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "previous page")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view entries")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// HistoryModel browses the session's history one page at a time. Choosing a
// date selects it on the session and quits.
type HistoryModel struct {
	session *tracker.Session
	store   *tracker.Store
	keys    historyKeyMap
	help    help.Model
	cursor  int
	// Selected is the date chosen with enter, or "" if the user quit.
	Selected string
}

// NewHistoryModel opens the history view on session.
func NewHistoryModel(session *tracker.Session, store *tracker.Store) HistoryModel {
	if !session.ShowHistory() {
		session.ToggleHistory()
	}
	return HistoryModel{
		session: session,
		store:   store,
		keys:    newHistoryKeyMap(),
		help:    help.New(),
	}
}

func (m HistoryModel) Init() tea.Cmd { return nil }

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	dates := m.session.HistoryPage()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(dates)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Next):
		if m.session.NextPage() {
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.keys.Prev):
		if m.session.PrevPage() {
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor < len(dates) && m.session.SelectDate(dates[m.cursor]) {
			m.Selected = dates[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m HistoryModel) View() string {
	var b strings.Builder
	b.WriteString(Header("History"))
	b.WriteString("\n")
	b.WriteString(RenderHistoryPage(m.store, m.session.HistoryPage(), m.session.Page(), m.session.TotalPages(), m.cursor))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// RunHistory runs the interactive history browser and returns the chosen
// date, or "" if none was chosen.
func RunHistory(session *tracker.Session, store *tracker.Store) (string, error) {
	final, err := tea.NewProgram(NewHistoryModel(session, store)).Run()
	if err != nil {
		return "", err
	}
	return final.(HistoryModel).Selected, nil
}
