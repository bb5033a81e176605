package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the wizard on the alternate screen and blocks until the user
// quits or opts.Context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	p := tea.NewProgram(m, progOpts...)
	m.program.set(p)
	defer func() {
		m.program.set(nil)
		m.Close()
	}()

	_, err := p.Run()
	return err
}
