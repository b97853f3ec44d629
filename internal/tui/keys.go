package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Menu       key.Binding
	Consult    key.Binding
	Close      key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	NextSlide  key.Binding
	PrevSlide  key.Binding
	GoToSlide  key.Binding
	Autoplay   key.Binding
	Newsletter key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	Select     key.Binding
	Submit     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Consult:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "free consultation")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		NextFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f/F", "filter")),
		PrevFilter: key.NewBinding(key.WithKeys("F")),
		NextSlide:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "slides")),
		PrevSlide:  key.NewBinding(key.WithKeys("left", "h")),
		GoToSlide:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to slide")),
		Autoplay:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/play")),
		Newsletter: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "newsletter")),
		NextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:  key.NewBinding(key.WithKeys("shift+tab")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/↓", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j", "pgdown")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Consult, k.NextFilter, k.NextSlide, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.Consult, k.Newsletter, k.Close},
		{k.NextFilter, k.NextSlide, k.GoToSlide, k.Autoplay},
		{k.NextField, k.Select, k.Submit, k.ScrollUp},
		{k.Help, k.Quit},
	}
}
