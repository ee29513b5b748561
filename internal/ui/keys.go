package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Carousel
	Previous key.Binding
	Next     key.Binding
	GoTo     key.Binding

	// Content
	Reload   key.Binding
	Captions key.Binding
	ShowLog  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous slide"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next slide"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Go to slide"),
		),

		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload slides"),
		),
		Captions: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Toggle captions"),
		),
		ShowLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent log"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.GoTo},
		{k.Reload, k.Captions, k.ShowLog},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
