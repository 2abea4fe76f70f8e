package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/backstack/internal/backbutton"
	"github.com/jask/backstack/internal/config"
	"github.com/jask/backstack/internal/dialog"
	"github.com/jask/backstack/internal/player"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	hpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	lowHPStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// App is the signal source: it turns the back key into one registry
// dispatch per press and owns the dialogs it opens.
type App struct {
	cfg     config.Config
	invoker *backbutton.Invoker
	keys    keyMap
	help    help.Model
	log     zerolog.Logger

	status *player.Status
	enemy  *player.Enemy
	menu   *dialog.Menu

	opened int
	width  int
	height int
	line   string
}

func New(cfg config.Config, invoker *backbutton.Invoker, log zerolog.Logger) *App {
	a := &App{
		cfg:     cfg,
		invoker: invoker,
		keys:    newKeyMap(cfg.Keys),
		help:    help.New(),
		log:     log,
		status:  player.NewStatus(cfg.Player.Health),
		menu:    dialog.NewMenu("Paused", "Resume", "Options", "Controls"),
		width:   80,
		height:  24,
		line:    "Ready",
	}
	a.enemy = a.spawnEnemy()
	return a
}

func (a *App) spawnEnemy() *player.Enemy {
	e := player.NewEnemy(a.cfg.Enemy.Name, a.cfg.Enemy.Health)
	e.OnDefeated = func(e *player.Enemy) {
		a.log.Info().Str("enemy", e.Name).Msg("enemy defeated")
		d := a.newDialog("Victory", e.Name+" is down.")
		d.OnClose = func(*dialog.Dialog) { a.enemy = a.spawnEnemy() }
		d.Open()
	}
	return e
}

func (a *App) newDialog(title, body string) *dialog.Dialog {
	a.opened++
	return dialog.New(a.invoker, title, body)
}

// Player exposes the player read-only.
func (a *App) Player() player.ReadOnlyStatus { return a.status }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.log.Debug().Msg("quit")
		return a, tea.Quit
	case key.Matches(m, a.keys.Back):
		a.back()
	case key.Matches(m, a.keys.Up):
		a.moveMenu(-1)
	case key.Matches(m, a.keys.Down):
		a.moveMenu(1)
	case key.Matches(m, a.keys.Dialog):
		d := a.newDialog(fmt.Sprintf("Dialog #%d", a.opened+1), "Press back to close.")
		d.Open()
		a.line = "Opened " + d.Title
	case key.Matches(m, a.keys.Menu):
		a.menu.Open(a.invoker)
		a.line = "Opened menu"
	case key.Matches(m, a.keys.Wizard):
		a.openWizard()
	case key.Matches(m, a.keys.Attack):
		a.attack()
	case key.Matches(m, a.keys.Heal):
		if a.blocked() {
			break
		}
		if err := a.status.AddHealth(a.cfg.Player.Heal); err != nil {
			a.line = err.Error()
			break
		}
		a.line = fmt.Sprintf("Healed %d", a.cfg.Player.Heal)
	}
	return a, nil
}

func (a *App) back() {
	if !a.invoker.Initialized() {
		a.line = "Back button not ready"
		return
	}
	top := a.invoker.Registry().Top()
	if !a.invoker.Dispatch() {
		a.line = "Nothing to close"
		return
	}
	a.line = "Closed " + handlerTitle(top)
	a.log.Debug().Int("open", a.invoker.Len()).Msg("back handled")
}

func (a *App) moveMenu(delta int) {
	if menu, ok := a.invoker.Registry().Top().(*dialog.Menu); ok {
		menu.Move(delta)
	}
}

// openWizard opens a two-step flow; closing step one opens step two.
func (a *App) openWizard() {
	second := a.newDialog("Wizard 2/2", "Last step. Back closes the wizard.")
	first := a.newDialog("Wizard 1/2", "Back moves to the next step.")
	first.OnClose = func(*dialog.Dialog) { second.Open() }
	first.Open()
	a.line = "Opened wizard"
}

// blocked reports whether an overlay is open; gameplay keys pause then.
func (a *App) blocked() bool {
	if a.invoker.Len() == 0 {
		return false
	}
	a.line = "Close the open dialogs first"
	return true
}

func (a *App) attack() {
	if a.blocked() {
		return
	}
	a.enemy.TakeDamage(a.cfg.Player.Attack)
	a.line = fmt.Sprintf("Hit %s for %d", a.enemy.Name, a.cfg.Player.Attack)
	if a.enemy.Defeated() {
		return
	}
	if err := a.status.RemoveHealth(a.cfg.Enemy.Damage); err != nil {
		a.line = err.Error()
		return
	}
	if a.status.Health() <= 0 {
		a.log.Info().Msg("player down")
		d := a.newDialog("You fell", "Back to get up again.")
		d.OnClose = func(*dialog.Dialog) {
			a.status = player.NewStatus(a.cfg.Player.Health)
		}
		d.Open()
	}
}

func (a *App) View() string {
	base := a.renderBase()
	var popups []string
	for _, h := range a.invoker.Registry().Handlers() {
		if v, ok := h.(interface{ View() string }); ok {
			popups = append(popups, v.View())
		}
	}
	if len(popups) == 0 {
		return base
	}
	return stackCards(base, popups, a.width, a.height)
}

func (a *App) renderBase() string {
	lines := []string{
		titleStyle.Render("backstack"),
		"",
		"Player " + renderHP(a.Player()),
		fmt.Sprintf("%s %s", a.enemy.Name, renderHP(a.enemy)),
		"",
		fmt.Sprintf("Open overlays: %d", a.invoker.Len()),
		statusStyle.Render(a.line),
		"",
		a.help.View(a.keys),
	}
	return strings.Join(lines, "\n")
}

func renderHP(s player.ReadOnlyStatus) string {
	hp := fmt.Sprintf("HP %d", s.Health())
	if s.Health() <= 3 {
		return lowHPStyle.Render(hp)
	}
	return hpStyle.Render(hp)
}

func handlerTitle(h backbutton.Handler) string {
	if n, ok := h.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}
