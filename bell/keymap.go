package bell

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	testChime     key.Binding
	copyLink      key.Binding
	toggleSeconds key.Binding
	quit          key.Binding
}

var defaultKeymap = keymap{
	testChime: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "test chime"),
	),
	copyLink: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy share link"),
	),
	toggleSeconds: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle seconds"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
