// Package tui is a full screen catalog browser built on bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/video"
)

// Run opens the browser over catalog and blocks until the user quits.
func Run(catalog *video.Catalog) error {
	_, err := tea.NewProgram(newBubble(catalog), tea.WithAltScreen()).Run()
	return err
}
