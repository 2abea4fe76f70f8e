package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/backstack/internal/backbutton"
)

// Registrar is the part of the back button registry a dialog needs.
type Registrar interface {
	Register(backbutton.Handler)
	Deregister(backbutton.Handler)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// Dialog registers itself on Open and deregisters on every close path.
type Dialog struct {
	ID    uuid.UUID
	Title string
	Body  string
	// OnClose runs after the dialog has deregistered. It may open other
	// dialogs.
	OnClose func(*Dialog)

	reg  Registrar
	open bool
}

func New(reg Registrar, title, body string) *Dialog {
	return &Dialog{ID: uuid.New(), Title: title, Body: body, reg: reg}
}

// Name identifies the dialog in logs and the status line. The ID suffix
// tells apart dialogs that share a title.
func (d *Dialog) Name() string { return "dialog:" + d.Title + "@" + d.ID.String()[:8] }

// Open shows the dialog. Opening an open dialog does nothing.
func (d *Dialog) Open() {
	if d.open {
		return
	}
	d.open = true
	d.reg.Register(d)
}

// CloseDialog hides the dialog. It is safe to call more than once.
func (d *Dialog) CloseDialog() {
	d.reg.Deregister(d)
	if !d.open {
		return
	}
	d.open = false
	if d.OnClose != nil {
		d.OnClose(d)
	}
}

// Close is called by the registry on the back signal.
func (d *Dialog) Close() { d.CloseDialog() }

// Destroy drops the dialog from the registry without running OnClose.
func (d *Dialog) Destroy() {
	d.reg.Deregister(d)
	d.open = false
}

func (d *Dialog) IsOpen() bool { return d.open }

func (d *Dialog) View() string {
	lines := []string{titleStyle.Render(d.Title)}
	if d.Body != "" {
		lines = append(lines, "", d.Body)
	}
	lines = append(lines, "", hintStyle.Render("Esc close"))
	return strings.Join(lines, "\n")
}
