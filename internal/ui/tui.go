// Package ui provides an optional terminal interface over the service.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peterkahumu/fastapi-todo-project/internal/client"
	"github.com/peterkahumu/fastapi-todo-project/internal/todo"
)

// Run starts the TUI against a running service.
func Run(ctx context.Context, c *client.Client) error {
	if !isTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	m := newModel(c)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// item adapts a Todo to bubbles/list.Item.
type item struct {
	t todo.Todo
}

func (i item) Title() string {
	return fmt.Sprintf("%s #%d %s", priorityBadge(i.t.Priority), i.t.ID, i.t.Name)
}
func (i item) Description() string { return i.t.Description }
func (i item) FilterValue() string { return i.t.Name }

type todosMsg []todo.Todo

type changedMsg struct{}

type errMsg struct {
	err error
}

type model struct {
	client *client.Client
	list   list.Model
	err    error
}

func newModel(c *client.Client) model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "todos"
	l.SetStatusBarItemName("todo", "todos")
	return model{client: c, list: l}
}

func (m model) Init() tea.Cmd {
	return m.fetch()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case todosMsg:
		items := make([]list.Item, 0, len(msg))
		for _, t := range msg {
			items = append(items, item{t: t})
		}
		m.err = nil
		return m, m.list.SetItems(items)

	case changedMsg:
		return m, m.fetch()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		// Let the list handle keys while filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		case "d":
			if sel, ok := m.list.SelectedItem().(item); ok {
				return m, m.deleteTodo(sel.t.ID)
			}
		case "p":
			if sel, ok := m.list.SelectedItem().(item); ok {
				return m, m.cyclePriority(sel.t)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	view := appStyle.Render(m.list.View())
	if m.err != nil {
		view += "\n" + errStyle.Render("error: "+m.err.Error())
	}
	return view + "\n" + helpStyle.Render("r refresh | p cycle priority | d delete | q quit")
}

func (m model) fetch() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.client.List(context.Background(), nil)
		if err != nil {
			return errMsg{err: err}
		}
		return todosMsg(todos)
	}
}

func (m model) deleteTodo(id int) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.client.Delete(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return changedMsg{}
	}
}

// cyclePriority bumps the selected todo to the next priority, wrapping
// from high back to low.
func (m model) cyclePriority(t todo.Todo) tea.Cmd {
	return func() tea.Msg {
		next := t.Priority + 1
		if next > todo.PriorityHigh {
			next = todo.PriorityLow
		}
		patch := todo.UpdateRequest{Priority: &next}
		if _, err := m.client.Update(context.Background(), t.ID, patch); err != nil {
			return errMsg{err: err}
		}
		return changedMsg{}
	}
}

// isTTY returns true if w is a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
