//go:build !cgo

package hal

import "image"

// NewDesktopWindow returns a Window that cannot be opened: the desktop
// backend requires cgo (build/run with CGO_ENABLED=1).
func NewDesktopWindow() Window {
	return stubWindow{}
}

type stubWindow struct{}

func (stubWindow) Open(WindowConfig) error   { return ErrNoDisplay }
func (stubWindow) Present(*image.RGBA) error { return ErrNoDisplay }
func (stubWindow) Run(func() error) error    { return ErrNoDisplay }
func (stubWindow) Close() error              { return nil }
