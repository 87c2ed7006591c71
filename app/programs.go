package app

import "hpprime/display"

// Boot paints the whole screen red one pixel at a time, row by row.
func Boot(s *display.Surface) error {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if err := s.Pixel(x, y, display.Red); err != nil {
				return err
			}
		}
	}
	return nil
}

// Shapes draws one of each primitive on a white screen.
func Shapes(s *display.Surface) error {
	steps := []func() error{
		func() error { return s.Fill(display.White) },
		func() error { return s.Pixel(50, 50, display.Red) },
		func() error { return s.Line(10, 10, 200, 200, display.Blue, 2) },
		func() error { return s.Rect(100, 50, 80, 60, display.Green, 2) },
		func() error { return s.Circle(160, 120, 40, display.Red, 2) },
		func() error { return s.Text(4, s.Height()-4, "HP Prime", display.Black) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return s.Present()
}
