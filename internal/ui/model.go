// Package ui shows short lived notifications under a bubbletea view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notificationDuration is how long a notification stays visible.
const notificationDuration = 3 * time.Second

// NotifyMsg shows Text until the next notification or until it expires.
type NotifyMsg struct {
	Text string
}

type clearMsg struct {
	id int
}

// Notify returns a command showing text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text}
	}
}

// Model holds the current notification.
type Model struct {
	notification string
	id           int
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.id++
		m.notification = msg.Text
		id := m.id
		return tea.Tick(notificationDuration, func(time.Time) tea.Msg {
			return clearMsg{id: id}
		})
	case clearMsg:
		// a newer notification replaced this one
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

var notificationStyle = lipgloss.NewStyle().Faint(true)

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + notificationStyle.Render(m.notification)
	return strings.Join(lines, "\n")
}
