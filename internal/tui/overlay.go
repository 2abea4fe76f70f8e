package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// stackCards draws each popup over base, bottom first. Deeper cards are
// nudged down and right so the stack stays visible.
func stackCards(base string, popups []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c := newCanvas(base, width, height)
	for depth, popup := range popups {
		card := cardStyle.Render(popup)
		card = lipgloss.NewStyle().MarginTop(depth).MarginLeft(depth * 4).Render(card)
		c.paint(newCanvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height))
	}
	return c.String()
}

// canvas is a fixed-size block of rows, each exactly width cells wide.
type canvas struct {
	width int
	rows  []string
}

func newCanvas(s string, width, height int) *canvas {
	src := strings.Split(s, "\n")
	c := &canvas{width: width, rows: make([]string, height)}
	for i := range c.rows {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		c.rows[i] = fitWidth(line, width)
	}
	return c
}

// paint copies the inked span of every layer row over the canvas and
// leaves blank rows alone.
func (c *canvas) paint(layer *canvas) {
	for i, row := range layer.rows {
		if i >= len(c.rows) {
			return
		}
		start, end, ok := inkSpan(row)
		if !ok {
			continue
		}
		under := c.rows[i]
		c.rows[i] = fitWidth(ansi.Truncate(under, start, "")+ansi.Cut(row, start, end)+ansi.TruncateLeft(under, end, ""), c.width)
	}
}

func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// inkSpan returns the cell range between the first and last non-space cell.
func inkSpan(row string) (start, end int, ok bool) {
	plain := strings.TrimRight(ansi.Strip(row), " ")
	if plain == "" {
		return 0, 0, false
	}
	start = len(plain) - len(strings.TrimLeft(plain, " "))
	return start, ansi.StringWidth(plain), true
}

func fitWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
