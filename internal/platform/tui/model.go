package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monkey-arcade/internal/assets"
	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
	"github.com/vovakirdan/monkey-arcade/internal/games/monkey"
	"github.com/vovakirdan/monkey-arcade/internal/platform/raster"
)

// footerLines is the height reserved below the playfield.
const footerLines = 1

// Options configures a Model.
type Options struct {
	Config   config.GameConfig
	Runtime  core.RuntimeConfig
	Library  *assets.Library      // nil: fallback sizes, no asset wait
	Audio    core.AudioSink       // nil: silent
	Updates  <-chan config.Reload // nil: no hot reload
	ShotsDir string               // empty: ~/.monkey/screenshots
	Logger   *log.Logger

	// OnGameOver is called once per collision with the final score.
	OnGameOver func(score int)
}

// Model is the Bubble Tea model running one monkey session.
type Model struct {
	opts    Options
	session *monkey.Session
	screen  *core.Screen
	canvas  *CellCanvas
	overlay *gameOverBox
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	ready    bool // assets resolved, frames may run
	running  bool // a tick is scheduled
	quitting bool
	status   string
}

// hookDisplay forwards game-over notifications to the overlay and the caller.
type hookDisplay struct {
	box    *gameOverBox
	onOver func(score int)
}

func (d hookDisplay) ShowGameOver(score int) {
	d.box.ShowGameOver(score)
	if d.onOver != nil {
		d.onOver(score)
	}
}

func (d hookDisplay) Hide() { d.box.Hide() }

// NewModel creates a model for the given options.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	opts.Runtime = rt

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	overlay := &gameOverBox{}
	sessionOpts := []monkey.Option{
		monkey.WithSeed(rt.Seed),
		monkey.WithScoreDisplay(hookDisplay{box: overlay, onOver: opts.OnGameOver}),
	}
	if opts.Library != nil {
		sessionOpts = append(sessionOpts, monkey.WithSizes(opts.Library))
	}
	if opts.Audio != nil {
		sessionOpts = append(sessionOpts, monkey.WithAudio(opts.Audio))
	}

	screen := core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-footerLines))
	return Model{
		opts:    opts,
		session: monkey.NewSession(opts.Config, sessionOpts...),
		screen:  screen,
		canvas:  NewCellCanvas(screen, opts.Config.Canvas.Width, opts.Config.Canvas.Height),
		overlay: overlay,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
}

// Init waits for assets and starts listening for config changes.
func (m Model) Init() tea.Cmd {
	var wait tea.Cmd
	if m.opts.Library != nil {
		wait = waitAssetsCmd(m.opts.Library, m.opts.Config.Assets)
	} else {
		wait = func() tea.Msg { return assetsReadyMsg{} }
	}
	return tea.Batch(wait, waitReloadCmd(m.opts.Updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case assetsReadyMsg:
		return m.handleAssetsReady(msg)

	case reloadMsg:
		return m.handleReload(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	return m.handleAction(m.keys.MapKey(msg))
}

// handleAction applies an input action to the session. Jumps take effect
// immediately, not on the next tick.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		if m.ready {
			m.session.Jump()
		}
	case core.ActionPointer:
		if m.ready {
			m.session.Pointer()
		}
	case core.ActionRestart:
		if m.ready && m.session.Over() {
			m.session.Restart()
		}
	}
	cmd := m.resume()
	return m, cmd
}

// resume re-arms the tick loop after a restart.
func (m *Model) resume() tea.Cmd {
	if !m.ready || m.running || m.session.Over() {
		return nil
	}
	m.running = true
	m.status = ""
	return tickCmd(m.opts.Runtime.TickRate)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerLines))
	return m, nil
}

func (m Model) handleAssetsReady(msg assetsReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("starting before assets resolved", "error", msg.err)
	}
	m.ready = true
	cmd := m.resume()
	return m, cmd
}

func (m Model) handleReload(msg reloadMsg) (tea.Model, tea.Cmd) {
	next := waitReloadCmd(m.opts.Updates)
	if msg.Err != nil {
		m.logger.Warn("config reload rejected", "error", msg.Err)
		m.status = "config rejected"
		return m, next
	}
	m.session.Reconfigure(msg.Config)
	m.logger.Info("config reloaded, applies on restart")
	m.status = "config reloaded"
	return m, next
}

// handleTick processes simulation ticks. No further tick is scheduled once
// the session is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.running {
		return m, nil
	}
	if !m.session.Step() {
		m.running = false
		m.logger.Info("game over", "score", m.session.State().Score)
		return m, nil
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot renders the current frame at full resolution to a PNG.
func (m *Model) saveScreenshot() {
	dir := m.opts.ShotsDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "screenshot failed"
			return
		}
		dir = filepath.Join(home, ".monkey", "screenshots")
	}

	cfg := m.session.Config()
	var src raster.ImageSource
	if m.opts.Library != nil {
		src = m.opts.Library
	}
	canvas := raster.NewCanvas(int(cfg.Canvas.Width), int(cfg.Canvas.Height), src)
	m.session.Render(canvas)

	path := filepath.Join(dir, fmt.Sprintf("monkey_%s.png", time.Now().Format("20060102_150405")))
	if err := canvas.SavePNG(path); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "Loading...", core.ColorGray)
		return RenderScreen(m.screen)
	}

	cfg := m.session.Config()
	m.canvas.SetWorld(cfg.Canvas.Width, cfg.Canvas.Height)
	m.session.Render(m.canvas)
	m.overlay.Draw(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Session exposes the running session.
func (m Model) Session() *monkey.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
