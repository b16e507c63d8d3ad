// Package assets loads the game's images in the background and answers size
// queries once they resolve. Files that cannot be read are replaced by drawn
// placeholder art, so loading always completes.
package assets

import (
	"image"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Library holds decoded images keyed by ImageID.
type Library struct {
	dir    string
	images map[core.ImageID]string
	sounds map[core.Cue]string
	logger *log.Logger

	mu      sync.RWMutex
	decoded map[core.ImageID]image.Image
	scaled  map[scaleKey]image.Image

	started atomic.Bool
	ready   atomic.Bool
}

type scaleKey struct {
	id   core.ImageID
	w, h int
}

// NewLibrary creates an empty library for the configured asset directory.
func NewLibrary(cfg config.AssetsConfig, logger *log.Logger) *Library {
	images := make(map[core.ImageID]string, len(cfg.Images))
	for id, file := range cfg.Images {
		images[core.ImageID(id)] = file
	}
	sounds := make(map[core.Cue]string, len(cfg.Sounds))
	for cue, file := range cfg.Sounds {
		sounds[core.Cue(cue)] = file
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Library{
		dir:     cfg.Dir,
		images:  images,
		sounds:  sounds,
		logger:  logger.WithPrefix("assets"),
		decoded: make(map[core.ImageID]image.Image),
		scaled:  make(map[scaleKey]image.Image),
	}
}

// Load starts decoding every image concurrently and returns immediately.
// Ready reports true once all of them have resolved. Calling Load again is a no-op.
func (l *Library) Load() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}

	ids := []core.ImageID{core.ImageMonkey, core.ImageCloud, core.ImageBackground}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id core.ImageID) {
			defer wg.Done()
			img := l.decode(id)
			l.mu.Lock()
			l.decoded[id] = img
			l.mu.Unlock()
		}(id)
	}

	go func() {
		wg.Wait()
		l.ready.Store(true)
		l.logger.Debug("images resolved", "count", len(ids))
	}()
}

func (l *Library) decode(id core.ImageID) image.Image {
	file, ok := l.images[id]
	if !ok || file == "" {
		l.logger.Debug("no file configured, using placeholder", "image", id)
		return Placeholder(id)
	}

	path := filepath.Join(l.dir, file)
	img, err := imaging.Open(path)
	if err != nil {
		l.logger.Warn("cannot load image, using placeholder", "image", id, "path", path, "error", err)
		return Placeholder(id)
	}
	l.logger.Debug("image loaded", "image", id, "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img
}

// Ready reports whether every image has resolved.
func (l *Library) Ready() bool {
	return l.ready.Load()
}

// Image returns the decoded image for id.
func (l *Library) Image(id core.ImageID) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.decoded[id]
	return img, ok
}

// ImageSize returns the natural size of id once it has resolved.
func (l *Library) ImageSize(id core.ImageID) (w, h int, ok bool) {
	img, ok := l.Image(id)
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Scaled returns id resized to exactly w x h, cached per size.
func (l *Library) Scaled(id core.ImageID, w, h int) (image.Image, bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}
	key := scaleKey{id: id, w: w, h: h}

	l.mu.RLock()
	img, ok := l.scaled[key]
	l.mu.RUnlock()
	if ok {
		return img, true
	}

	src, ok := l.Image(id)
	if !ok {
		return nil, false
	}
	img = imaging.Resize(src, w, h, imaging.Linear)

	l.mu.Lock()
	l.scaled[key] = img
	l.mu.Unlock()
	return img, true
}

// SoundPath returns the file configured for cue.
func (l *Library) SoundPath(cue core.Cue) (string, bool) {
	file, ok := l.sounds[cue]
	if !ok || file == "" {
		return "", false
	}
	return filepath.Join(l.dir, file), true
}
