package window

import "fmt"

// Settings are the options a window is built from.
type Settings struct {
	Title     string
	Size      Size
	ExitOnEsc bool
}

// NewSettings returns settings with the given title and size; other options
// keep their zero value.
func NewSettings(title string, size Size) Settings {
	return Settings{Title: title, Size: size}
}

// WithTitle returns a copy of s with the title set.
func (s Settings) WithTitle(title string) Settings {
	s.Title = title
	return s
}

// WithSize returns a copy of s with the size set.
func (s Settings) WithSize(size Size) Settings {
	s.Size = size
	return s
}

// WithExitOnEsc returns a copy of s with exit-on-escape set.
func (s Settings) WithExitOnEsc(value bool) Settings {
	s.ExitOnEsc = value
	return s
}

// Validate checks that the settings can build a window.
func (s Settings) Validate() error {
	if s.Size.Width <= 0 || s.Size.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Size.Width, s.Size.Height)
	}
	return nil
}

// Build builds a window using fn.
func (s Settings) Build(fn BuildFunc) (AdvancedWindow, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return fn(s)
}
