package hal

import (
	"errors"
	"image"
)

var (
	// ErrNoDisplay is returned by Window.Open when no display can be acquired.
	ErrNoDisplay = errors.New("no display available")
	// ErrWindowClosed is returned by a Window used after Close.
	ErrWindowClosed = errors.New("window closed")
)

// WindowConfig describes the window requested by Open.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Scale is the integer zoom applied to the on-screen window (>= 1).
	Scale int
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Title == "" {
		c.Title = "HP Prime Graphics Emulation"
	}
	return c
}

func (c WindowConfig) valid() bool {
	return c.Width > 0 && c.Height > 0
}

// Window is the only contact point between a display surface and the
// outside world: it shows finished frames and reports quit requests.
type Window interface {
	// Open acquires the window. It must be called once before anything else.
	Open(cfg WindowConfig) error

	// Present publishes frame as the visible window content.
	// The window copies what it needs; frame may be reused by the caller.
	Present(frame *image.RGBA) error

	// Run blocks until a quit request is observed. frame is called once per
	// tick before the window content is refreshed; a non-nil error stops the
	// loop and is returned.
	Run(frame func() error) error

	// Close tears the window down. It is safe to call more than once.
	Close() error
}
