package hal

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"
)

// HeadlessConfig controls the no-window backend.
type HeadlessConfig struct {
	Hz int

	// Frames stops the loop after N ticks (0 = run until a quit request).
	Frames uint64
}

// Headless is a Window that never shows anything. Presented frames are kept
// so they can be inspected or saved.
//
// A quit request is either RequestQuit, cancellation of the context given to
// NewHeadless, or reaching HeadlessConfig.Frames.
type Headless struct {
	ctx  context.Context
	cfg  HeadlessConfig
	wcfg WindowConfig

	opened bool
	closed bool
	quit   atomic.Bool

	last     *image.RGBA
	presents uint64
	ticks    uint64
}

// NewHeadless returns a headless window. A nil ctx never cancels.
func NewHeadless(ctx context.Context, cfg HeadlessConfig) *Headless {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	return &Headless{ctx: ctx, cfg: cfg}
}

func (h *Headless) Open(cfg WindowConfig) error {
	if h.closed {
		return ErrWindowClosed
	}
	if h.opened {
		return fmt.Errorf("headless: already open")
	}
	if !cfg.valid() {
		return fmt.Errorf("headless: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	h.wcfg = cfg.withDefaults()
	h.opened = true
	Logger().Debug("headless window opened", "width", cfg.Width, "height", cfg.Height, "hz", h.cfg.Hz)
	return nil
}

func (h *Headless) Present(frame *image.RGBA) error {
	if h.closed {
		return ErrWindowClosed
	}
	if !h.opened {
		return fmt.Errorf("headless: present before open")
	}
	h.last = snapshotRGBA(h.last, frame)
	h.presents++
	return nil
}

func (h *Headless) Run(frame func() error) error {
	if h.closed {
		return ErrWindowClosed
	}
	if !h.opened {
		return fmt.Errorf("headless: run before open")
	}

	d := time.Second / time.Duration(h.cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", h.cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	for !h.quitRequested() {
		if frame != nil {
			if err := frame(); err != nil {
				return err
			}
		}
		h.ticks++
		if h.cfg.Frames > 0 && h.ticks >= h.cfg.Frames {
			break
		}
		select {
		case <-h.ctx.Done():
		case <-t.C:
		}
	}
	Logger().Debug("headless quit", "ticks", h.ticks, "presents", h.presents)
	return nil
}

func (h *Headless) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	Logger().Debug("headless window closed")
	return nil
}

// RequestQuit queues a quit request. It is safe to call from any goroutine.
func (h *Headless) RequestQuit() { h.quit.Store(true) }

// Presents reports how many frames have been presented.
func (h *Headless) Presents() uint64 { return h.presents }

// Ticks reports how many loop iterations Run has executed.
func (h *Headless) Ticks() uint64 { return h.ticks }

// LastFrame returns the most recently presented frame, or nil.
func (h *Headless) LastFrame() *image.RGBA { return h.last }

// Closed reports whether Close has been called.
func (h *Headless) Closed() bool { return h.closed }

func (h *Headless) quitRequested() bool {
	if h.quit.Load() {
		return true
	}
	return h.ctx.Err() != nil
}

func snapshotRGBA(dst, src *image.RGBA) *image.RGBA {
	if src == nil {
		return dst
	}
	if dst == nil || dst.Rect != src.Rect {
		dst = image.NewRGBA(src.Rect)
	}
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		so := src.PixOffset(src.Rect.Min.X, y)
		do := dst.PixOffset(src.Rect.Min.X, y)
		copy(dst.Pix[do:do+src.Rect.Dx()*4], src.Pix[so:so+src.Rect.Dx()*4])
	}
	return dst
}
