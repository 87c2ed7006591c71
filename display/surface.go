// Package display emulates the pixel display of a graphing calculator: a
// fixed-size RGB raster with pixel, line, rectangle, circle, fill and text
// primitives, shown through a hal.Window.
//
// A Surface is owned by a single goroutine. It starts Open and becomes
// Closed exactly once, either through Close or when Wait observes a quit
// request. Every drawing call on a closed surface fails with ErrClosed.
//
// Shapes (Line, Rect, Circle, Text) are clipped to the surface. Pixel and At
// address exactly one pixel and fail with an *OutOfBoundsError instead.
package display

import (
	"fmt"
	"image"
	"log/slog"

	"hpprime/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	DefaultWidth  = 320
	DefaultHeight = 240
	DefaultTitle  = "HP Prime Graphics Emulation"
)

type config struct {
	width  int
	height int
	scale  int
	title  string
	log    *slog.Logger
	font   tinyfont.Fonter
}

// Option configures New.
type Option func(*config)

// WithSize sets the surface dimensions in pixels.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithScale sets the integer zoom of the window showing the surface.
func WithScale(scale int) Option {
	return func(c *config) { c.scale = scale }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithLogger sets the logger. The default is hal.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithFont sets the font used by Text. The default is proggy TinySZ8pt7b.
func WithFont(f tinyfont.Fonter) Option {
	return func(c *config) { c.font = f }
}

// Surface is the calculator screen.
type Surface struct {
	win  hal.Window
	fb   *hal.Framebuffer
	log  *slog.Logger
	font tinyfont.Fonter

	closed   bool
	presents uint64
}

// New acquires win, clears the surface to white and presents it.
//
// If the window cannot be acquired no Surface is returned and the error
// matches ErrInitialization.
func New(win hal.Window, opts ...Option) (*Surface, error) {
	cfg := config{
		width:  DefaultWidth,
		height: DefaultHeight,
		scale:  1,
		title:  DefaultTitle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = hal.Logger()
	}
	if cfg.font == nil {
		cfg.font = &proggy.TinySZ8pt7b
	}

	if win == nil {
		return nil, fmt.Errorf("%w: nil window", ErrInitialization)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrInitialization, cfg.width, cfg.height)
	}

	err := win.Open(hal.WindowConfig{
		Width:  cfg.width,
		Height: cfg.height,
		Title:  cfg.title,
		Scale:  cfg.scale,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	s := &Surface{
		win:  win,
		fb:   hal.NewFramebuffer(cfg.width, cfg.height),
		log:  cfg.log,
		font: cfg.font,
	}
	s.fb.ClearRGB(White.R, White.G, White.B)
	if err := s.Present(); err != nil {
		_ = win.Close()
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	s.log.Debug("surface opened", "width", cfg.width, "height", cfg.height)
	return s, nil
}

func (s *Surface) Width() int              { return s.fb.Width() }
func (s *Surface) Height() int             { return s.fb.Height() }
func (s *Surface) Bounds() image.Rectangle { return s.fb.Bounds() }

// Closed reports whether the surface has been torn down.
func (s *Surface) Closed() bool { return s.closed }

// Fill sets every pixel to c. The window is not updated until Present.
func (s *Surface) Fill(c Color) error {
	if s.closed {
		return ErrClosed
	}
	s.fb.ClearRGB(c.R, c.G, c.B)
	return nil
}

// Pixel sets the pixel at (x, y) to c.
func (s *Surface) Pixel(x, y int, c Color) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.checkBounds(x, y); err != nil {
		return err
	}
	s.fb.SetRGB(x, y, c.R, c.G, c.B)
	return nil
}

// At returns the color of the pixel at (x, y).
func (s *Surface) At(x, y int) (Color, error) {
	if s.closed {
		return Color{}, ErrClosed
	}
	if err := s.checkBounds(x, y); err != nil {
		return Color{}, err
	}
	r, g, b, _ := s.fb.RGB(x, y)
	return Color{R: r, G: g, B: b}, nil
}

// Present pushes the current buffer to the window.
func (s *Surface) Present() error {
	if s.closed {
		return ErrClosed
	}
	if err := s.win.Present(s.fb.Image()); err != nil {
		return fmt.Errorf("display: present: %w", err)
	}
	s.presents++
	return nil
}

// Wait presents the buffer once per window tick until the user asks to
// quit, then closes the surface.
func (s *Surface) Wait() error {
	if s.closed {
		return ErrClosed
	}
	s.log.Debug("waiting for quit request")
	err := s.win.Run(s.Present)
	cerr := s.Close()
	if err != nil {
		return fmt.Errorf("display: wait: %w", err)
	}
	return cerr
}

// Close releases the window. Calling Close on a closed surface is a no-op.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.log.Debug("surface closed", "presents", s.presents)
	if err := s.win.Close(); err != nil {
		return fmt.Errorf("display: close: %w", err)
	}
	return nil
}

func (s *Surface) checkBounds(x, y int) error {
	if (image.Point{X: x, Y: y}).In(s.fb.Bounds()) {
		return nil
	}
	return &OutOfBoundsError{X: x, Y: y, Width: s.fb.Width(), Height: s.fb.Height()}
}
