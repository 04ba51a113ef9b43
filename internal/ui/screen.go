// Package ui provides the tcell terminal frontend.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes s. Tests pass a simulation screen.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Interrupt wakes a blocked PollEvent with an interrupt event.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// DrawText writes text starting at (x, y), clipped to maxWidth cells.
func (s *Screen) DrawText(x, y, maxWidth int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= maxWidth {
			return
		}
		s.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

// DrawBox draws a single-line border around r with an optional title.
func (s *Screen) DrawBox(r Rect, title string, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, style)
		s.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, style)
		s.SetContent(right, y, tcell.RuneVLine, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, style)
	if title != "" {
		s.DrawText(r.X+2, r.Y, r.Width-4, " "+title+" ", style)
	}
}
