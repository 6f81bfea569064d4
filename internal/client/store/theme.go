package store

import "sync"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeListener is notified synchronously after every theme change.
type ThemeListener func(Theme)

// ThemeStore holds the UI theme preference, persisted in its own namespace.
type ThemeStore struct {
	mu        sync.Mutex
	theme     Theme
	listeners []ThemeListener
}

func NewThemeStore() *ThemeStore {
	return &ThemeStore{theme: ThemeLight}
}

func (s *ThemeStore) Subscribe(fn ThemeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Toggle flips between light and dark and returns the new theme.
func (s *ThemeStore) Toggle() Theme {
	s.mu.Lock()
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	theme := s.theme
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(theme)
	}
	return theme
}

func (s *ThemeStore) SetTheme(theme Theme) {
	s.mu.Lock()
	s.theme = theme
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(theme)
	}
}

// Restore sets the persisted theme without notifying listeners.
func (s *ThemeStore) Restore(theme Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if theme == ThemeLight || theme == ThemeDark {
		s.theme = theme
	}
}

func (s *ThemeStore) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}
