package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var selectedStyle = lipgloss.NewStyle().Reverse(true)

// Menu never deregisters itself; it relies on the registry removing it
// after Close.
type Menu struct {
	Title string
	Items []string

	cursor int
	open   bool
	closes int
}

func NewMenu(title string, items ...string) *Menu {
	return &Menu{Title: title, Items: items}
}

func (m *Menu) Name() string { return "menu:" + m.Title }

func (m *Menu) Open(reg Registrar) {
	if m.open {
		return
	}
	m.open = true
	reg.Register(m)
}

func (m *Menu) Close() {
	m.open = false
	m.closes++
}

func (m *Menu) IsOpen() bool { return m.open }

// Closes counts how many times the menu was closed.
func (m *Menu) Closes() int { return m.closes }

func (m *Menu) Move(delta int) {
	if len(m.Items) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.Items)) % len(m.Items)
}

func (m *Menu) Selected() string {
	if len(m.Items) == 0 {
		return ""
	}
	return m.Items[m.cursor]
}

func (m *Menu) View() string {
	lines := []string{titleStyle.Render(m.Title), ""}
	if len(m.Items) == 0 {
		lines = append(lines, "  No items")
	}
	for i, item := range m.Items {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+item))
			continue
		}
		lines = append(lines, "  "+item)
	}
	lines = append(lines, "", hintStyle.Render("Esc close"))
	return strings.Join(lines, "\n")
}
