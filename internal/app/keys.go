package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/rngit/internal/config"
)

// KeyMap defines all keybindings. Keys not bound here are ignored.
type KeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if keys := config.ParseKeyList(cfg.Refresh); len(keys) > 0 {
		km.Refresh = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], "refresh"),
		)
	}
	if keys := config.ParseKeyList(cfg.Quit); len(keys) > 0 {
		km.Quit = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], "quit"),
		)
	}

	return km
}
