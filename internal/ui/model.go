// Package ui holds the ephemeral notification line shown under the player.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/style"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model holds the current notification.
type Model struct {
	notification string
	seq          int
}

// NotifyMsg carries a notification text.
type NotifyMsg string

// ClearNotificationMsg resets the notification it was issued for.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a tea.Cmd that shows text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(text)
	}
}

// Notification returns the current notification text.
func (m *Model) Notification() string {
	return m.notification
}

// Update processes notification messages. A newer notification is never cleared by an older timer.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.seq++
		m.notification = string(msg)
		seq := m.seq
		return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{seq: seq}
		})
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
