package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/style"
)

type menuAction int

const (
	menuSpeed menuAction = iota
	menuCaptions
	menuCaptionTrack
)

// menuItem is an entry of the settings menu.
type menuItem struct {
	action  menuAction
	speed   float64
	current bool
	label   string
}

func (m *menuItem) Title() string {
	if m.current {
		return m.label + " " + style.Bold(icon.Get(icon.Mark))
	}
	return m.label
}

func (m *menuItem) Description() string {
	return ""
}

func (m *menuItem) FilterValue() string {
	return m.label
}

// menuItems lists the speed choices followed by the caption entries.
func (b *statefulBubble) menuItems() []list.Item {
	current := b.nearestSpeed(b.playback.Speed)

	items := make([]list.Item, 0, len(b.speeds)+2)
	for i, s := range b.speeds {
		label := "Speed " + formatSpeed(s)
		if s == 1 {
			label += style.Faint(" (default)")
		}
		items = append(items, &menuItem{action: menuSpeed, speed: s, current: i == current, label: label})
	}

	captions := "Captions: off"
	if b.playback.Captions {
		captions = "Captions: on"
	}
	items = append(items,
		&menuItem{action: menuCaptions, label: captions},
		&menuItem{action: menuCaptionTrack, label: "Next caption track"},
	)

	return items
}

func (b *statefulBubble) openMenu() tea.Cmd {
	cmd := b.menuC.SetItems(b.menuItems())
	b.menuC.Select(b.nearestSpeed(b.playback.Speed))
	b.controls.SetMenuOpen(true)
	b.keymap.menuOpen = true
	return cmd
}

func (b *statefulBubble) closeMenu() {
	b.controls.SetMenuOpen(false)
	b.keymap.menuOpen = false
}

// applyMenuItem runs the selected entry and closes the menu.
func (b *statefulBubble) applyMenuItem() {
	item, ok := b.menuC.SelectedItem().(*menuItem)
	b.closeMenu()
	if !ok {
		return
	}

	switch item.action {
	case menuSpeed:
		speed := item.speed
		b.do(func(p player.Player) error { return p.SetSpeed(speed) })
	case menuCaptions:
		b.do(player.Player.ToggleCaptions)
	case menuCaptionTrack:
		b.do(player.Player.CycleCaptionTrack)
	}
}
