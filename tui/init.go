package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init launches the engine and starts the animation, spinner and timer loops.
func (b *statefulBubble) Init() tea.Cmd {
	b.setState(loadingState)

	cmds := []tea.Cmd{b.launch(), b.spinnerC.Tick, b.tick()}
	if b.loop != nil {
		cmds = append(cmds, b.loop.wait())
	}

	return tea.Batch(cmds...)
}
