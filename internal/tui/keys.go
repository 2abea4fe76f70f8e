package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/backstack/internal/config"
)

type keyMap struct {
	Back   key.Binding
	Quit   key.Binding
	Dialog key.Binding
	Menu   key.Binding
	Wizard key.Binding
	Attack key.Binding
	Heal   key.Binding
	Up     key.Binding
	Down   key.Binding
}

func newKeyMap(keys map[string][]string) keyMap {
	bind := func(action, help string) key.Binding {
		k := keys[action]
		return key.NewBinding(key.WithKeys(k...), key.WithHelp(strings.Join(k, "/"), help))
	}
	return keyMap{
		Back:   bind(config.ActionBack, "back"),
		Quit:   bind(config.ActionQuit, "quit"),
		Dialog: bind(config.ActionDialog, "dialog"),
		Menu:   bind(config.ActionMenu, "menu"),
		Wizard: bind(config.ActionWizard, "wizard"),
		Attack: bind(config.ActionAttack, "attack"),
		Heal:   bind(config.ActionHeal, "heal"),
		Up:     bind(config.ActionUp, "up"),
		Down:   bind(config.ActionDown, "down"),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Dialog, k.Menu, k.Wizard, k.Attack, k.Heal, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Quit},
		{k.Dialog, k.Menu, k.Wizard},
		{k.Attack, k.Heal, k.Up, k.Down},
	}
}
