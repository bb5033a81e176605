package ui

import (
	"quickreview/internal/wizard"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Home      key.Binding
	Theme     key.Binding
	Audio     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Generate  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Copy      key.Binding
	Next      key.Binding
	Back      key.Binding
	Format    key.Binding
	Image     key.Binding
	Save      key.Binding
	CopyMaps  key.Binding
	CopyShare key.Binding
	Restart   key.Binding
	Select    key.Binding
	Cancel    key.Binding

	step wizard.Step
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Home:      key.NewBinding(key.WithKeys("ctrl+h", "home"), key.WithHelp("home", "start")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Audio:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "music")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Generate:  key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "less")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "more")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next")),
		Back:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
		Format:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "format")),
		Image:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "image")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save poster")),
		CopyMaps:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "copy maps link")),
		CopyShare: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "copy share link")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new review")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// forStep narrows the help to the bindings that act on step.
func (k keyMap) forStep(step wizard.Step) keyMap {
	k.step = step
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	var b []key.Binding
	switch k.step {
	case wizard.StepEntry:
		b = []key.Binding{k.NextField, k.Generate}
	case wizard.StepResults:
		b = []key.Binding{k.Up, k.Down, k.Copy, k.Next, k.Back}
	case wizard.StepStudio:
		b = []key.Binding{k.Format, k.Image, k.Save, k.Next, k.Back}
	case wizard.StepPublish:
		b = []key.Binding{k.CopyMaps, k.CopyShare, k.Restart, k.Back}
	}
	if k.step > wizard.StepEntry {
		b = append(b, k.Home)
	}
	return append(b, k.Theme, k.Audio, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Left, k.Right, k.Select, k.Cancel},
	}
}
