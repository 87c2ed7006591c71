package app

import (
	"fmt"
	"log/slog"
	"sort"

	"hpprime/display"
	"hpprime/hal"
)

// Program draws onto a freshly opened surface.
type Program func(s *display.Surface) error

var programs = map[string]Program{
	"boot":   Boot,
	"shapes": Shapes,
}

// Programs lists the names accepted by Config.Program.
func Programs() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Config struct {
	Width   int
	Height  int
	Scale   int
	Title   string
	Program string
	Logger  *slog.Logger
}

// Run opens a surface on win, draws the configured program and blocks until
// the user closes the window.
func Run(win hal.Window, cfg Config) error {
	name := cfg.Program
	if name == "" {
		name = "boot"
	}
	prog, ok := programs[name]
	if !ok {
		return fmt.Errorf("unknown program %q", name)
	}

	opts := []display.Option{display.WithScale(cfg.Scale)}
	if cfg.Width != 0 || cfg.Height != 0 {
		w, h := cfg.Width, cfg.Height
		if w == 0 {
			w = display.DefaultWidth
		}
		if h == 0 {
			h = display.DefaultHeight
		}
		opts = append(opts, display.WithSize(w, h))
	}
	if cfg.Title != "" {
		opts = append(opts, display.WithTitle(cfg.Title))
	}
	if cfg.Logger != nil {
		opts = append(opts, display.WithLogger(cfg.Logger))
	}

	s, err := display.New(win, opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := prog(s); err != nil {
		return fmt.Errorf("program %s: %w", name, err)
	}
	return s.Wait()
}
