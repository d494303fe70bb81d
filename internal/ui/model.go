// Package ui implements the interactive task list.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskmgr/internal/config"
	"taskmgr/internal/output"
	"taskmgr/internal/service"
	"taskmgr/internal/task"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// snapshot is the latest sequence published by the store.
type snapshot struct {
	tasks []task.Task
}

// Model is the bubbletea model for the task list.
type Model struct {
	sess     *service.Session
	settings config.UISettings
	view     *snapshot

	input  textinput.Model
	help   help.Model
	keys   keyMap
	filter task.Filter
	cursor int
	focus  focus
	status string
	width  int
}

// New creates a Model over sess. The filter always starts at All.
func New(cfg *config.Config, sess *service.Session) Model {
	settings := cfg.UI()

	ti := textinput.New()
	ti.Placeholder = settings.Placeholder
	ti.CharLimit = 0
	ti.Width = 40
	ti.Focus()

	view := &snapshot{tasks: sess.Store.Tasks()}
	sess.Store.Subscribe(func(tasks []task.Task) {
		view.tasks = tasks
	})

	return Model{
		sess:     sess,
		settings: settings,
		view:     view,
		input:    ti,
		help:     help.New(),
		keys:     defaultKeys(),
		filter:   task.All,
		focus:    focusInput,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cfg *config.Config, sess *service.Session) error {
	program := tea.NewProgram(New(cfg, sess), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.NextFilter):
			return m.setFilter(m.filter.Next()), nil
		case key.Matches(msg, m.keys.PrevFilter):
			return m.setFilter(m.filter.Prev()), nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - 20; w > 10 {
			m.input.Width = w
		}
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		// Blank text is ignored and the input keeps its content
		if _, ok := m.sess.Store.Add(m.input.Value()); ok {
			m.input.SetValue("")
			m.refreshStatus()
		}
		return m, nil
	case key.Matches(msg, m.keys.FocusList):
		m.focus = focusList
		m.input.Blur()
		return m.clamp(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focus = focusInput
			return m, m.input.Focus()
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(visible) > 0 {
			m.sess.Store.Toggle(visible[m.cursor].ID)
			m.refreshStatus()
		}
	case key.Matches(msg, m.keys.Delete):
		if len(visible) > 0 {
			m.sess.Store.Delete(visible[m.cursor].ID)
			m.refreshStatus()
		}
	case key.Matches(msg, m.keys.All):
		return m.setFilter(task.All), nil
	case key.Matches(msg, m.keys.Active):
		return m.setFilter(task.Active), nil
	case key.Matches(msg, m.keys.Completed):
		return m.setFilter(task.Completed), nil
	}
	return m.clamp(), nil
}

func (m Model) setFilter(f task.Filter) Model {
	m.filter = f
	m.cursor = 0
	return m
}

func (m Model) clamp() Model {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m *Model) refreshStatus() {
	if err := m.sess.SaveErr(); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = ""
}

func (m Model) visible() []task.Task {
	return task.Visible(m.view.tasks, m.filter)
}

// Filter returns the current filter.
func (m Model) Filter() task.Filter {
	return m.filter
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.settings.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", buttonStyle.Render("Add Task")))
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(placeholderStyle.Render(m.settings.EmptyMessage))
		b.WriteString("\n")
	}
	for i, t := range visible {
		b.WriteString(m.rowView(t, m.focus == focusList && i == m.cursor))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus == focusInput {
		b.WriteString(m.help.View(inputKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(listKeys{m.keys}))
	}
	return b.String()
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		style := tabStyle
		if f == m.filter {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) rowView(t task.Task, selected bool) string {
	text := output.NormalizeText(t.Text)
	if t.Completed {
		text = doneTextStyle.Render(text)
	}
	left := output.Checkbox(t.Completed) + " " + text

	width := 44
	if m.width > 0 && m.width-4 > width {
		width = m.width - 4
	}
	del := deleteStyle.Render("Delete")
	gap := width - lipgloss.Width(left) - lipgloss.Width(del) - 4
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + del

	if selected {
		return selectedRowStyle.Render(line)
	}
	return rowStyle.Render(line)
}
