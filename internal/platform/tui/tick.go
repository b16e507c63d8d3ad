// Package tui provides the Bubble Tea driver for the monkey game.
// It handles the terminal frame loop, input mapping and the SSH server.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monkey-arcade/internal/assets"
	"github.com/vovakirdan/monkey-arcade/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// assetsReadyMsg reports that image loading finished or gave up.
type assetsReadyMsg struct {
	err error
}

// reloadMsg carries a config file change.
type reloadMsg config.Reload

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitAssetsCmd polls r until it is ready or attempts run out.
func waitAssetsCmd(r assets.Readiness, cfg config.AssetsConfig) tea.Cmd {
	return func() tea.Msg {
		err := assets.WaitReady(context.Background(), r, cfg.PollInterval, cfg.MaxAttempts)
		return assetsReadyMsg{err: err}
	}
}

// waitReloadCmd blocks on the next config update. A closed channel ends the chain.
func waitReloadCmd(updates <-chan config.Reload) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-updates
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}
