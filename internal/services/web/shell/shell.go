// Package shell owns the per-visitor application state: the session store,
// the active locale, the navigation controller and the SOS indicator.
//
// A Shell is not safe for concurrent use. The Registry hands out one shell
// at a time per visitor and holds its lock for the whole request, which is
// what makes the lock-free components inside a Shell sound.
package shell

import (
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/navigation"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/sos"
)

// Config is shared by every shell of a registry.
type Config struct {
	DefaultLanguage i18n.Language
	Resolver        *i18n.Resolver
	Routes          *routeguard.Table
	SOSOptions      []sos.Option
}

// Shell is the application state of one visitor.
type Shell struct {
	id       string
	sessions *session.Store
	locale   *i18n.Locale
	nav      *navigation.Controller
	sos      *sos.Indicator
	events   *Hub
}

// New builds a shell with no session and the configured default language.
func New(id string, cfg Config) *Shell {
	events := NewHub()
	sessions := session.NewStore()
	opts := append([]sos.Option{
		sos.OnChange(func(active bool) {
			events.Publish(Event{Type: EventSOS, Active: active})
		}),
	}, cfg.SOSOptions...)

	s := &Shell{
		id:       id,
		sessions: sessions,
		locale:   i18n.NewLocale(cfg.DefaultLanguage, cfg.Resolver),
		nav:      navigation.NewController(cfg.Routes, sessions),
		sos:      sos.New(opts...),
		events:   events,
	}
	s.nav.OnChange(func(action navigation.Action) {
		if action.Verb == navigation.Replace {
			events.Publish(Event{Type: EventNavigate, Location: action.Location})
		}
	})
	sessions.Subscribe(func(current *session.Session) {
		events.Publish(Event{Type: EventSession, SignedIn: current != nil})
	})
	return s
}

// ID returns the registry key of the shell.
func (s *Shell) ID() string {
	return s.id
}

// Session returns a copy of the active session, or nil when logged out.
func (s *Shell) Session() *session.Session {
	return s.sessions.Current()
}

// Sessions exposes the store for subscription.
func (s *Shell) Sessions() *session.Store {
	return s.sessions
}

// SetSession replaces the active session.
func (s *Shell) SetSession(next *session.Session) {
	s.sessions.Set(next)
}

// Logout clears the active session.
func (s *Shell) Logout() {
	s.sessions.Clear()
}

// Locale returns the active locale.
func (s *Shell) Locale() *i18n.Locale {
	return s.locale
}

// Language returns the active display language.
func (s *Shell) Language() i18n.Language {
	return s.locale.Language()
}

// SwitchLanguage activates lang. Unsupported values are ignored.
func (s *Shell) SwitchLanguage(lang i18n.Language) bool {
	before := s.locale.Language()
	if !s.locale.Switch(lang) {
		return false
	}
	if before != lang {
		s.events.Publish(Event{Type: EventLanguage, Language: lang.Code()})
	}
	return true
}

// ToggleLanguage switches to the other supported language.
func (s *Shell) ToggleLanguage() i18n.Language {
	lang := s.locale.Toggle()
	s.events.Publish(Event{Type: EventLanguage, Language: lang.Code()})
	return lang
}

// T translates a key identifier in the active language.
func (s *Shell) T(key string) string {
	return s.locale.T(key)
}

// Text translates key in the active language.
func (s *Shell) Text(key i18n.Key) string {
	return s.locale.Text(key)
}

// Navigate runs the route guard for path and moves the active screen.
func (s *Shell) Navigate(path string) navigation.Action {
	return s.nav.Navigate(path)
}

// Navigation returns the shell's navigation controller.
func (s *Shell) Navigation() *navigation.Controller {
	return s.nav
}

// ResumeAfterLogin consumes the pending login intent.
func (s *Shell) ResumeAfterLogin(next string) string {
	return s.nav.ResumeAfterLogin(next)
}

// SOS returns the SOS indicator.
func (s *Shell) SOS() *sos.Indicator {
	return s.sos
}

// Events returns the shell's event hub.
func (s *Shell) Events() *Hub {
	return s.events
}

// Close cancels pending timers and disconnects event subscribers.
func (s *Shell) Close() {
	s.sos.Close()
	s.nav.Close()
	s.events.Close()
}
