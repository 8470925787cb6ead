package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type taskFinishedMsg struct {
	err error
}

// taskSpinner shows a label and the elapsed time while a task runs.
type taskSpinner struct {
	spinner spinner.Model
	label   string
	task    tea.Cmd
	started time.Time
	elapsed time.Duration
	result  error
	done    bool
}

func newTaskSpinner(label string, task tea.Cmd) taskSpinner {
	return taskSpinner{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("78"))),
		),
		label:   label,
		task:    task,
		started: time.Now(),
	}
}

func (m taskSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m taskSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskFinishedMsg:
		m.done = true
		m.result = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = time.Since(m.started).Truncate(time.Second)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m taskSpinner) View() string {
	if m.done {
		return ""
	}
	if m.elapsed < time.Second {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.elapsed)
}

// runSpinner runs task behind a spinner on output and returns its error.
func runSpinner(ctx context.Context, output io.Writer, label string, task func(context.Context) error) error {
	p := tea.NewProgram(
		newTaskSpinner(label, func() tea.Msg {
			return taskFinishedMsg{err: task(ctx)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	finished, ok := final.(taskSpinner)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return finished.result
}
