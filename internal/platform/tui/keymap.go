package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap so the
// footer can list them.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Settings   key.Binding
	Editor     key.Binding
	Gravity    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f", "up", "w"),
			key.WithHelp("f", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "settings"),
		),
		Editor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "editor"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gravity"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Fire},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Settings, k.Editor, k.Gravity},
		{k.Screenshot, k.Quit},
	}
}

// actionBindings pairs each game action with its binding. One key may
// trigger several actions (esc both pauses and backs out of a menu page).
func (k KeyMap) actionBindings() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
		{core.ActionLaunch, k.Launch},
		{core.ActionFire, k.Fire},
		{core.ActionConfirm, k.Confirm},
		{core.ActionBack, k.Back},
		{core.ActionPause, k.Pause},
		{core.ActionRestart, k.Restart},
		{core.ActionSettings, k.Settings},
		{core.ActionEditor, k.Editor},
		{core.ActionToggleGravity, k.Gravity},
	}
}

// MapKeyToFrame sets every action bound to msg on frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		frame.Set(core.ActionQuit)
		return true
	}
	for _, ab := range k.actionBindings() {
		if key.Matches(msg, ab.binding) {
			frame.Set(ab.action)
		}
	}
	return false
}

// MapMouseToFrame turns pointer motion into an absolute paddle position and
// a left click into a launch. width is the screen width in cells.
func MapMouseToFrame(msg tea.MouseMsg, width int, frame *core.InputFrame) {
	if width <= 0 {
		return
	}
	frame.SetPointer(float64(msg.X) / float64(width))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionLaunch)
	}
}
