package tui

import (
	"context"
	"strings"

	"github.com/Vovarama1992/cloudio/internal/domain/views"
	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// modal holds the pending alert; it is shared with the search view by pointer.
type modal struct {
	msg string
}

func (m *modal) Alert(msg string) { m.msg = msg }

type model struct {
	api         ports.SearchAPI
	view        *views.SearchView
	alert       *modal
	searchInput textinput.Model
	list        list.Model
	width       int
	height      int
}

type resultItem struct {
	result models.SearchResult
}

func (r resultItem) Title() string       { return r.result.Text }
func (r resultItem) Description() string { return r.result.Source }
func (r resultItem) FilterValue() string { return r.result.Text }

func initialModel(api ports.SearchAPI, log *logger.ZapLogger) model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Results"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	alert := &modal{}
	return model{
		api:         api,
		view:        views.NewSearchView(api, alert, log),
		alert:       alert,
		searchInput: ti,
		list:        l,
	}
}

type searchMsg struct {
	query   string
	results []models.SearchResult
	err     error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// doSearch issues one request; overlapping searches are not cancelled and
// whichever answers last wins.
func (m model) doSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.api.Search(context.Background(), query)
		return searchMsg{query: query, results: results, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.alert.msg != "" {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyEsc:
				m.alert.msg = ""
			case tea.KeyCtrlC:
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.view.Query = m.searchInput.Value()
			return m, m.doSearch(m.view.Query)
		case tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-6)
		m.searchInput.Width = msg.Width - 10
		return m, nil

	case searchMsg:
		if err := m.view.Apply(msg.query, msg.results, msg.err); err == nil {
			m.list.SetItems(toItems(m.view.Results))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func toItems(results []models.SearchResult) []list.Item {
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, resultItem{result: r})
	}
	return items
}

var (
	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

func (m model) View() string {
	var b strings.Builder

	// no loading indicator: the previous results stay until the answer arrives
	b.WriteString(searchStyle.Render(m.searchInput.View()))
	b.WriteString("\n\n")

	if m.alert.msg != "" {
		b.WriteString(alertStyle.Render(m.alert.msg + "\n\n[Enter] OK"))
		b.WriteString("\n\n")
	}

	if len(m.view.Results) == 0 {
		b.WriteString("No results.\n")
	} else {
		b.WriteString(m.list.View())
	}

	b.WriteString(helpStyle.Render("[Enter]search [↑/↓]scroll [Esc]quit"))
	return b.String()
}

func Run(api ports.SearchAPI, log *logger.ZapLogger) error {
	p := tea.NewProgram(initialModel(api, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
