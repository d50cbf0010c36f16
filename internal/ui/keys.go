package ui

import "github.com/charmbracelet/bubbles/key"

const (
	windowStep = 5
	levelStep  = 5
	zoomStep   = 10
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Home       key.Binding
	End        key.Binding
	Select     key.Binding
	WindowDown key.Binding
	WindowUp   key.Binding
	LevelDown  key.Binding
	LevelUp    key.Binding
	ZoomOut    key.Binding
	ZoomIn     key.Binding
	PrevFrame  key.Binding
	NextFrame  key.Binding
	Reset      key.Binding
	Filter     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open series")),
		WindowDown: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "window -")),
		WindowUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "window +")),
		LevelDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "level -")),
		LevelUp:    key.NewBinding(key.WithKeys("=", "+"), key.WithHelp("=", "level +")),
		ZoomOut:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom -")),
		ZoomIn:     key.NewBinding(key.WithKeys("Z"), key.WithHelp("Z", "zoom +")),
		PrevFrame:  key.NewBinding(key.WithKeys("pgup", "left", "h"), key.WithHelp("pgup", "prev image")),
		NextFrame:  key.NewBinding(key.WithKeys("pgdown", "right", "l"), key.WithHelp("pgdn", "next image")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/quit")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WindowDown, k.WindowUp, k.LevelDown, k.LevelUp, k.ZoomIn, k.NextFrame, k.Reset, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.Select, k.Filter},
		{k.WindowDown, k.WindowUp, k.LevelDown, k.LevelUp},
		{k.ZoomOut, k.ZoomIn, k.PrevFrame, k.NextFrame},
		{k.Reset, k.Back, k.Quit},
	}
}
