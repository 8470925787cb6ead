package status

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ranchfarm/ranch-farmer/internal/application"
)

// sessionRenderedMsg carries the index of the next session to lay out.
type sessionRenderedMsg int

// listModel lays sessions out one message at a time and quits after the
// last one.
type listModel struct {
	statuses []application.SessionStatus
	opts     RenderOptions
	styles   styles
	sections []string
	done     bool
}

func newListModel(statuses []application.SessionStatus, opts RenderOptions) listModel {
	return listModel{
		statuses: statuses,
		opts:     opts,
		styles:   newStyles(),
		sections: make([]string, 0, len(statuses)),
	}
}

func nextSession(i int) tea.Cmd {
	return func() tea.Msg {
		return sessionRenderedMsg(i)
	}
}

func (m listModel) Init() tea.Cmd {
	return nextSession(0)
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	i, ok := msg.(sessionRenderedMsg)
	if !ok {
		return m, nil
	}

	if int(i) >= len(m.statuses) {
		m.done = true
		return m, tea.Quit
	}

	m.sections = append(m.sections, renderSession(m.statuses[i], m.opts, m.styles))
	return m, nextSession(int(i) + 1)
}

func (m listModel) View() string {
	if !m.done {
		return ""
	}

	return renderView(len(m.statuses), m.sections, m.styles)
}

// Render lays out the session list without touching the terminal.
func Render(statuses []application.SessionStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newListModel(statuses, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	list, ok := final.(listModel)
	if !ok {
		return "", fmt.Errorf("unexpected final render model type %T", final)
	}

	return list.View(), nil
}
