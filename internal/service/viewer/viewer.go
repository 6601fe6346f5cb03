// Package viewer is an interactive card browser over an exported posts
// JSON file: a scrollable post list, one card per post, live-reloading
// when the file is rewritten.
package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandevgo/nutshell/internal/core"
	"github.com/sandevgo/nutshell/internal/export"
)

var (
	cardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
	cardHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	cardMeta   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusBar  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

type item struct {
	post core.ProjectedPost
}

func (i item) Title() string {
	return fmt.Sprintf("Post #%d — %s", i.post.Number, i.post.Author)
}

func (i item) Description() string { return i.post.CreatedAt }

func (i item) FilterValue() string {
	return fmt.Sprintf("%d %s %s", i.post.Number, i.post.Author, i.post.CleanContent)
}

type reloadMsg struct{}
type watchErrMsg struct{ err error }

type model struct {
	path     string
	list     list.Model
	viewport viewport.Model
	reloads  <-chan tea.Msg

	showCard bool
	status   string
	err      error
	width    int
	height   int
}

// New builds the viewer model for one posts JSON file. The reloads
// channel delivers file-change notifications from the watcher.
func New(path string, posts []core.ProjectedPost, reloads <-chan tea.Msg) tea.Model {
	items := toItems(posts)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("%s — %d posts", path, len(posts))
	l.SetShowStatusBar(false)

	return model{
		path:    path,
		list:    l,
		reloads: reloads,
		status:  "enter: open card · esc: back · q: quit",
	}
}

func toItems(posts []core.ProjectedPost) []list.Item {
	items := make([]list.Item, 0, len(posts))
	for _, p := range posts {
		items = append(items, item{post: p})
	}
	return items
}

func (m model) Init() tea.Cmd {
	return m.waitForReload
}

func (m model) waitForReload() tea.Msg {
	if m.reloads == nil {
		return nil
	}
	return <-m.reloads
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2
		return m, nil

	case reloadMsg:
		posts, err := export.ReadPostsJSON(m.path)
		if err != nil {
			m.err = err
		} else {
			m.err = nil
			m.list.SetItems(toItems(posts))
			m.list.Title = fmt.Sprintf("%s — %d posts (reloaded)", m.path, len(posts))
		}
		return m, m.waitForReload

	case watchErrMsg:
		m.err = msg.err
		return m, m.waitForReload

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.list.SettingFilter() {
				return m, tea.Quit
			}
		case "enter":
			if !m.showCard && !m.list.SettingFilter() {
				if it, ok := m.list.SelectedItem().(item); ok {
					m.showCard = true
					m.viewport.SetContent(renderCard(it.post, m.width))
					m.viewport.GotoTop()
				}
				return m, nil
			}
		case "esc":
			if m.showCard {
				m.showCard = false
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.showCard {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	var body string
	if m.showCard {
		body = m.viewport.View()
	} else {
		body = m.list.View()
	}

	footer := statusBar.Render(m.status)
	if m.err != nil {
		footer = errStyle.Render("reload failed: " + m.err.Error())
	}
	return body + "\n" + footer
}

func renderCard(p core.ProjectedPost, width int) string {
	header := cardHeader.Render(fmt.Sprintf("Post #%d", p.Number)) +
		cardMeta.Render(fmt.Sprintf("  ID: %d", p.ID))
	meta := cardMeta.Render(fmt.Sprintf("%s · %s", p.Author, p.CreatedAt))

	style := cardBorder
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(header + "\n" + meta + "\n\n" + p.CleanContent)
}
