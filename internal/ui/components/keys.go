package components

import "charm.land/bubbles/v2/key"

// KeyMap is the set of bindings shared by menus and selectors.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
}

// Keys holds the default bindings.
var Keys = KeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
	Select: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "select")),
	Back:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "previous")),
}
