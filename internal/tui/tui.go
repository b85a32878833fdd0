// Package tui is the optional full-screen list mode (TUDU_UI=list).
// Same collection, same operations as the menu loop: mark a todo
// complete or add a new one, then persist on quit.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tudu/internal/config"
	"github.com/idilsaglam/tudu/internal/model"
	"github.com/idilsaglam/tudu/internal/store/jsonstore"
	"github.com/idilsaglam/tudu/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) render() string {
	box := boxUnchecked
	if i.todo.Done() {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Text)
}

func (i listItem) Title() string       { return i.render() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Text }

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Text
	if it.todo.Done() {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

type appModel struct {
	list    list.Model
	width   int
	height  int
	changed bool

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string
}

// Run loads the collection, runs the Bubble Tea list and persists
// changes when quitting. Returns the process exit status.
func Run(cfg config.Config) int {
	todos, err := jsonstore.Load(cfg.FilePath)
	if err != nil {
		ui.Fail(os.Stderr, "load: "+err.Error())
		return 1
	}

	li := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		li = append(li, listItem{todo: t})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	dn, pn := todos.Stats()
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), dn,
		pendingStyle.Render("•"), pn,
		accentStyle.Render("Total"), len(todos),
	)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	doneBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, doneBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, doneBind} }

	m := appModel{list: l, width: 80, height: 24}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "New todo..."
	m.ti.CharLimit = 200

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		ui.Fail(os.Stderr, "tui: "+err.Error())
		return 1
	}
	fm, ok := finalModel.(appModel)
	if !ok || !fm.changed {
		return 0
	}

	out := make(model.List, 0, len(fm.list.Items()))
	for _, it := range fm.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	if err := jsonstore.Save(cfg.FilePath, out); err != nil {
		ui.Fail(os.Stderr, "save: "+err.Error())
		return 1
	}
	ui.OK(os.Stdout, "saved")
	return 0
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				t, err := model.New(m.ti.Value())
				if err != nil {
					m.addErr = err.Error()
					return m, nil
				}
				m.list.InsertItem(len(m.list.Items()), listItem{todo: t})
				m.changed = true
				fallthrough
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			if i >= 0 && i < len(m.list.Items()) {
				if li, ok := m.list.Items()[i].(listItem); ok && !li.todo.Done() {
					li.todo.Status = model.StatusDone
					m.list.SetItem(i, li)
					m.changed = true
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 6
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " — " + errorStyle.Render(m.addErr)
		}
		content += "\n" + panelStyle.Render(title+"\n"+m.ti.View())
	}
	return panelStyle.Render(content)
}
