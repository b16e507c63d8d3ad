// Package window runs the monkey game in a desktop window using Ebitengine.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/monkey-arcade/internal/assets"
	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
	"github.com/vovakirdan/monkey-arcade/internal/games/monkey"
)

// Options configures a window game.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Library *assets.Library
	Audio   core.AudioSink
	Updates <-chan config.Reload
	Logger  *log.Logger
	Title   string
	WindowW int
	WindowH int
}

// Game implements ebiten.Game around one monkey session.
type Game struct {
	opts    Options
	session *monkey.Session
	images  map[core.ImageID]*ebiten.Image
	shade   *ebiten.Image
	over    overlay
	logger  *log.Logger

	readyCh chan error
	ready   bool
}

// overlay is the game-over panel drawn above the frame.
type overlay struct {
	visible bool
	score   int
}

func (o *overlay) ShowGameOver(score int) { o.visible, o.score = true, score }
func (o *overlay) Hide()                  { o.visible = false }

// New creates the game and starts waiting for assets.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	g := &Game{
		opts:    opts,
		images:  make(map[core.ImageID]*ebiten.Image),
		logger:  logger.WithPrefix("window"),
		readyCh: make(chan error, 1),
	}

	sessionOpts := []monkey.Option{
		monkey.WithSeed(opts.Runtime.Seed),
		monkey.WithScoreDisplay(&g.over),
	}
	if opts.Audio != nil {
		sessionOpts = append(sessionOpts, monkey.WithAudio(opts.Audio))
	}
	if opts.Library != nil {
		sessionOpts = append(sessionOpts, monkey.WithSizes(opts.Library))
		go func() {
			cfg := opts.Config.Assets
			g.readyCh <- assets.WaitReady(context.Background(), opts.Library, cfg.PollInterval, cfg.MaxAttempts)
		}()
	} else {
		g.readyCh <- nil
	}
	g.session = monkey.NewSession(opts.Config, sessionOpts...)
	return g
}

// Update advances one frame. Input is applied before the step so a jump
// pressed this frame already affects it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.drainReloads()

	if !g.ready {
		select {
		case err := <-g.readyCh:
			if err != nil {
				g.logger.Warn("starting before assets resolved", "error", err)
			}
			g.loadImages()
			g.ready = true
		default:
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Jump()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.Pointer()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.session.Over() {
		g.session.Restart()
	}

	// Step is a no-op once the session is over
	g.session.Step()
	return nil
}

func (g *Game) drainReloads() {
	if g.opts.Updates == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.opts.Updates:
			if !ok {
				g.opts.Updates = nil
				return
			}
			if r.Err != nil {
				g.logger.Warn("config reload rejected", "error", r.Err)
				continue
			}
			g.session.Reconfigure(r.Config)
			g.logger.Info("config reloaded, applies on restart")
		default:
			return
		}
	}
}

func (g *Game) loadImages() {
	if g.opts.Library == nil {
		return
	}
	for _, id := range []core.ImageID{core.ImageMonkey, core.ImageCloud, core.ImageBackground} {
		if img, ok := g.opts.Library.Image(id); ok {
			g.images[id] = ebiten.NewImageFromImage(img)
		}
	}
}

// Draw renders the session and, when over, the game-over panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.ready {
		screen.Fill(color.White)
		text.Draw(screen, "Loading...", basicfont.Face7x13, 20, 30, color.Black)
		return
	}

	g.session.Render(&imageCanvas{dst: screen, images: g.images})
	if g.over.visible {
		g.drawOverlay(screen)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	if g.shade == nil {
		g.shade = ebiten.NewImage(1, 1)
		g.shade.Fill(color.Black)
	}
	cfg := g.session.Config()
	w, h := 320.0, 140.0
	x := (cfg.Canvas.Width - w) / 2
	y := (cfg.Canvas.Height - h) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(1, 1, 1, 0.75)
	screen.DrawImage(g.shade, op)

	c := &imageCanvas{dst: screen}
	c.DrawText("GAME OVER", x+24, y+20, core.TextStyle{Size: 36, Color: core.ColorRed})
	c.DrawText(fmt.Sprintf("Score: %d", g.over.score), x+24, y+66, core.TextStyle{Size: 26, Color: core.ColorBrightWhite})
	c.DrawText("click or R to restart", x+24, y+106, core.TextStyle{Size: 16, Color: core.ColorGray})
}

// Layout keeps the logical screen at the canvas size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.session.Config()
	return int(cfg.Canvas.Width), int(cfg.Canvas.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := New(opts)

	w, h := opts.WindowW, opts.WindowH
	if w <= 0 || h <= 0 {
		w, h = int(opts.Config.Canvas.Width), int(opts.Config.Canvas.Height)
	}
	title := opts.Title
	if title == "" {
		title = "Monkey"
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
