package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/backstack/internal/backbutton"
	"github.com/jask/backstack/internal/config"
	"github.com/jask/backstack/internal/dialog"
)

func testConfig() config.Config {
	return config.Config{
		Keys: map[string][]string{
			config.ActionBack:   {"esc"},
			config.ActionQuit:   {"ctrl+c"},
			config.ActionDialog: {"o"},
			config.ActionMenu:   {"m"},
			config.ActionWizard: {"w"},
			config.ActionAttack: {"a"},
			config.ActionHeal:   {"h"},
			config.ActionUp:     {"up"},
			config.ActionDown:   {"down"},
		},
		Player: config.PlayerConfig{Health: 3, Heal: 2, Attack: 1},
		Enemy:  config.EnemyConfig{Name: "Dummy", Health: 2, Damage: 1},
		Log:    config.LogConfig{Level: "info"},
	}
}

func newTestApp(t *testing.T) (*App, *backbutton.Invoker) {
	t.Helper()
	inv := &backbutton.Invoker{}
	inv.Initialize()
	return New(testConfig(), inv, zerolog.Nop()), inv
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = a.Update(msg)
	}
	return cmd
}

func TestBackClosesMostRecentDialog(t *testing.T) {
	a, inv := newTestApp(t)
	press(a, "o", "o", "o")
	require.Equal(t, 3, inv.Len())
	top := inv.Registry().Top().(*dialog.Dialog)
	require.Equal(t, "Dialog #3", top.Title)

	press(a, "esc")
	require.Equal(t, 2, inv.Len())
	require.False(t, top.IsOpen())
	require.Equal(t, "Closed "+top.Name(), a.line)

	press(a, "esc", "esc")
	require.Equal(t, 0, inv.Len())

	press(a, "esc")
	require.Equal(t, "Nothing to close", a.line)
}

func TestBackRemovesMenuThroughFallback(t *testing.T) {
	a, inv := newTestApp(t)
	press(a, "m", "m")
	require.Equal(t, 1, inv.Len())

	press(a, "esc")
	require.Equal(t, 0, inv.Len())
	require.False(t, a.menu.IsOpen())

	press(a, "m")
	require.Equal(t, 1, inv.Len())
}

func TestMenuNavigation(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "m", "down")
	require.Equal(t, "Options", a.menu.Selected())
	press(a, "up", "up")
	require.Equal(t, "Controls", a.menu.Selected())
}

func TestWizardOpensSecondStepOnBack(t *testing.T) {
	a, inv := newTestApp(t)
	press(a, "w")
	require.Equal(t, "Wizard 1/2", inv.Registry().Top().(*dialog.Dialog).Title)

	press(a, "esc")
	require.Equal(t, 1, inv.Len())
	require.Equal(t, "Wizard 2/2", inv.Registry().Top().(*dialog.Dialog).Title)

	press(a, "esc")
	require.Equal(t, 0, inv.Len())
}

func TestAttackOpensVictoryDialog(t *testing.T) {
	a, inv := newTestApp(t)
	press(a, "a")
	require.Equal(t, 1, a.enemy.Health())
	require.Equal(t, 2, a.Player().Health())

	press(a, "a")
	require.True(t, a.enemy.Defeated())
	require.Equal(t, 1, inv.Len())
	require.Equal(t, "Victory", inv.Registry().Top().(*dialog.Dialog).Title)

	press(a, "a")
	require.Equal(t, "Close the open dialogs first", a.line)

	press(a, "esc")
	require.False(t, a.enemy.Defeated())
	require.Equal(t, 2, a.enemy.Health())
}

func TestPlayerFallsAndRecovers(t *testing.T) {
	a, inv := newTestApp(t)
	a.cfg.Enemy.Damage = 3
	press(a, "a")
	require.Equal(t, 0, a.Player().Health())
	require.Equal(t, "You fell", inv.Registry().Top().(*dialog.Dialog).Title)

	press(a, "esc")
	require.Equal(t, 3, a.Player().Health())
}

func TestHealBlockedWhileOverlayOpen(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "h")
	require.Equal(t, 5, a.Player().Health())

	press(a, "o", "h")
	require.Equal(t, 5, a.Player().Health())
}

func TestUninitializedInvokerIgnoresKeys(t *testing.T) {
	a := New(testConfig(), &backbutton.Invoker{}, zerolog.Nop())
	require.NotPanics(t, func() { press(a, "o", "m", "esc") })
	require.Equal(t, "Back button not ready", a.line)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t)
	cmd := press(a, "ctrl+c")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestViewShowsOpenDialogs(t *testing.T) {
	a, _ := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Contains(t, a.View(), "Open overlays: 0")

	press(a, "o")
	view := a.View()
	require.Contains(t, view, "Dialog #1")
	require.Contains(t, view, "Open overlays: 1")
}
