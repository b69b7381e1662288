package desk

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the desk. Plain runes are typed into
// the focused input, so commands use control keys.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Start screen.
	Add         key.Binding // Add the typed quantity of the selected category.
	Delete      key.Binding // Remove the selected cart line.
	FocusToggle key.Binding // Switch between categories and cart.
	Next        key.Binding
	Tickets     key.Binding
	Map         key.Binding
	Reset       key.Binding

	// Order details form.
	NextField     key.Binding
	PreviousField key.Binding
	Confirm       key.Binding

	Back    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "add to cart"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete", "ctrl+d"),
		key.WithHelp("Del", "remove line"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "categories/cart"),
	),
	Next: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("C-n", "next"),
	),
	Tickets: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "tickets"),
	),
	Map: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "circuit map"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "reset"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "confirm order"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("Enter", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
