package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the match browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Search   key.Binding
	Filter   key.Binding // cycles the kind filter
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func binding(keys []string, helpKey, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       binding([]string{"up", "k"}, "↑/k", "previous match"),
		Down:     binding([]string{"down", "j"}, "↓/j", "next match"),
		PageUp:   binding([]string{"pgup", "ctrl+u"}, "pgup", "page up"),
		PageDown: binding([]string{"pgdown", "ctrl+d"}, "pgdn", "page down"),
		Top:      binding([]string{"home", "g"}, "g/home", "first match"),
		Bottom:   binding([]string{"end", "G"}, "G/end", "last match"),
		Search:   binding([]string{"/"}, "/", "search text"),
		Filter:   binding([]string{"f"}, "f", "cycle kind"),
		Copy:     binding([]string{"c"}, "c", "copy anchor"),
		Help:     binding([]string{"?"}, "?", "toggle help"),
		Quit:     binding([]string{"q", "ctrl+c"}, "q", "quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Search},
		{k.Filter, k.Copy, k.Help, k.Quit},
	}
}
