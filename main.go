package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"hpprime/app"
	"hpprime/display"
	"hpprime/hal"
	"hpprime/internal/buildinfo"
)

func main() {
	var (
		cfg      app.Config
		hcfg     hal.HeadlessConfig
		headless bool
		pngPath  string
		verbose  bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Frames, "frames", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&pngPath, "png", "", "Headless mode: write the last presented frame to this PNG file.")
	flag.IntVar(&cfg.Width, "width", display.DefaultWidth, "Screen width in pixels.")
	flag.IntVar(&cfg.Height, "height", display.DefaultHeight, "Screen height in pixels.")
	flag.IntVar(&cfg.Scale, "scale", 2, "Window (and PNG) zoom factor.")
	flag.StringVar(&cfg.Program, "program", "boot", "Program to draw: "+strings.Join(app.Programs(), "|")+".")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	hal.SetLogger(logger)
	cfg.Logger = logger
	cfg.Title = buildinfo.Title(display.DefaultTitle)

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		win := hal.NewHeadless(ctx, hcfg)
		if err := app.Run(win, cfg); err != nil {
			fatalf("%v", err)
		}
		if pngPath != "" {
			if err := writePNG(pngPath, win, cfg.Scale); err != nil {
				fatalf("%v", err)
			}
			logger.Info("frame saved", "path", pngPath, "presents", win.Presents())
		}
		return
	}

	if pngPath != "" {
		fatalf("-png requires -headless")
	}
	if err := app.Run(hal.NewDesktopWindow(), cfg); err != nil {
		fatalf("%v", err)
	}
}

func writePNG(path string, win *hal.Headless, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := hal.WritePNG(f, win.LastFrame(), scale); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
