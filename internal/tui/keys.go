package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Focus     key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Back      key.Binding
	Sidebar   key.Binding
	GoTo      key.Binding
	Logo      key.Binding
	Reseed    key.Binding
	Search    key.Binding
	Status    key.Binding
	ExportCSV key.Binding
	ExportXLS key.Binding
	Toggle    key.Binding
	Proceed   key.Binding
	Cancel    key.Binding
	Next      key.Binding
	Previous  key.Binding
	Submit    key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar/page")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Sidebar:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "sidebar")),
	GoTo:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to")),
	Logo:      key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logo")),
	Reseed:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "new sample data")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Status:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
	ExportCSV: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	ExportXLS: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	Proceed:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "proceed")),
	Cancel:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
	Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
	Previous:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
	Submit:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
}

// helpLine renders bindings as "key action" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return mutedStyle.Render(strings.Join(parts, "  "))
}
