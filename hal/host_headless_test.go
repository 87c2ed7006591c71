package hal

import (
	"context"
	"errors"
	"image"
	"testing"
)

func openHeadless(t *testing.T, cfg HeadlessConfig) *Headless {
	t.Helper()
	h := NewHeadless(context.Background(), cfg)
	if err := h.Open(WindowConfig{Width: 4, Height: 3}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return h
}

func TestHeadlessRunStopsAfterFrames(t *testing.T) {
	h := openHeadless(t, HeadlessConfig{Hz: 1000, Frames: 3})

	calls := 0
	if err := h.Run(func() error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 3 || h.Ticks() != 3 {
		t.Fatalf("calls = %d, Ticks() = %d, want 3, 3", calls, h.Ticks())
	}
}

func TestHeadlessRequestQuit(t *testing.T) {
	h := openHeadless(t, HeadlessConfig{Hz: 1000})

	calls := 0
	err := h.Run(func() error {
		calls++
		if calls == 5 {
			h.RequestQuit()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 5 {
		t.Fatalf("calls = %d, want 5", calls)
	}
}

func TestHeadlessContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHeadless(ctx, HeadlessConfig{Hz: 1000})
	if err := h.Open(WindowConfig{Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}

	calls := 0
	err := h.Run(func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestHeadlessFrameError(t *testing.T) {
	h := openHeadless(t, HeadlessConfig{Hz: 1000})
	boom := errors.New("boom")
	if err := h.Run(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Run() err = %v, want %v", err, boom)
	}
}

func TestHeadlessPresentCopies(t *testing.T) {
	h := openHeadless(t, HeadlessConfig{})
	frame := image.NewRGBA(image.Rect(0, 0, 4, 3))
	frame.Pix[0] = 0x42

	if err := h.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}
	frame.Pix[0] = 0
	if h.LastFrame().Pix[0] != 0x42 {
		t.Fatal("LastFrame aliases the presented image")
	}
	if h.Presents() != 1 {
		t.Fatalf("Presents() = %d, want 1", h.Presents())
	}
}

func TestHeadlessLifecycle(t *testing.T) {
	h := NewHeadless(nil, HeadlessConfig{})
	if err := h.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("Present before Open: err = nil")
	}
	if err := h.Open(WindowConfig{Width: 0, Height: 1}); err == nil {
		t.Fatal("Open with zero width: err = nil")
	}
	if err := h.Open(WindowConfig{Width: 1, Height: 1}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := h.Open(WindowConfig{Width: 1, Height: 1}); err == nil {
		t.Fatal("second Open: err = nil")
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := h.Run(nil); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("Run after Close: err = %v, want ErrWindowClosed", err)
	}
	if err := h.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrWindowClosed) {
		t.Fatalf("Present after Close: err = %v, want ErrWindowClosed", err)
	}
}
