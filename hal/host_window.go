//go:build cgo

package hal

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NewDesktopWindow returns a Window backed by a desktop window.
//
// The desktop loop must run on the main goroutine and can only be started
// once per process.
func NewDesktopWindow() Window {
	return &desktopWindow{}
}

type desktopWindow struct {
	cfg     WindowConfig
	opened  bool
	closed  bool
	running bool

	pending *image.RGBA
	dirty   bool
}

func (w *desktopWindow) Open(cfg WindowConfig) error {
	if w.closed {
		return ErrWindowClosed
	}
	if w.opened {
		return fmt.Errorf("desktop window: already open")
	}
	if !cfg.valid() {
		return fmt.Errorf("desktop window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)

	w.cfg = cfg
	w.opened = true
	Logger().Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale)
	return nil
}

func (w *desktopWindow) Present(frame *image.RGBA) error {
	if w.closed {
		return ErrWindowClosed
	}
	if !w.opened {
		return fmt.Errorf("desktop window: present before open")
	}
	w.pending = snapshotRGBA(w.pending, frame)
	w.dirty = true
	return nil
}

// Run opens the window on screen and blocks until it is closed by the user,
// the Escape key, or a call to Close from inside frame.
func (w *desktopWindow) Run(frame func() error) error {
	if w.closed {
		return ErrWindowClosed
	}
	if !w.opened {
		return fmt.Errorf("desktop window: run before open")
	}
	if w.running {
		return fmt.Errorf("desktop window: already running")
	}
	w.running = true
	defer func() { w.running = false }()

	g := &desktopGame{w: w, frame: frame}
	err := ebiten.RunGame(g)
	g.release()
	Logger().Info("window loop exited", "ticks", g.ticks, "err", err)
	return err
}

func (w *desktopWindow) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.pending = nil
	Logger().Info("window closed")
	return nil
}

type desktopGame struct {
	w     *desktopWindow
	frame func() error
	img   *ebiten.Image
	ticks uint64
}

func (g *desktopGame) Update() error {
	if g.w.closed || ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ticks++
	if g.frame != nil {
		if err := g.frame(); err != nil {
			return err
		}
	}
	if g.w.closed {
		return ebiten.Termination
	}
	return nil
}

func (g *desktopGame) Draw(screen *ebiten.Image) {
	cfg := g.w.cfg
	if g.img == nil {
		g.img = ebiten.NewImage(cfg.Width, cfg.Height)
		g.w.dirty = g.w.pending != nil
	}
	if g.w.dirty && g.w.pending != nil {
		g.img.WritePixels(g.w.pending.Pix)
		g.w.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *desktopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w.cfg.Width, g.w.cfg.Height
}

func (g *desktopGame) release() {
	if g.img != nil {
		g.img.Deallocate()
		g.img = nil
	}
}
