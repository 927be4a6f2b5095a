// Package navigation turns route guard decisions into navigation actions and
// keeps the active screen consistent with the session.
package navigation

import (
	"net/url"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

// Verb is what the client should do with the current navigation.
type Verb uint8

const (
	// Render shows the requested screen.
	Render Verb = iota
	// Replace swaps the current history entry for Location so the blocked
	// screen is not reachable with "back".
	Replace
)

// Action is the result of applying a decision.
type Action struct {
	Verb     Verb
	Location string
}

// Apply maps a guard decision to an action.
func Apply(d routeguard.Decision) Action {
	switch d.Kind {
	case routeguard.RedirectToLogin:
		return Action{Verb: Replace, Location: routepath.LoginWithNext(SafeNext(d.Path, ""))}
	case routeguard.RedirectToDefault:
		return Action{Verb: Replace, Location: routepath.Root}
	default:
		return Action{Verb: Render}
	}
}

// Controller tracks the active path of one shell and re-evaluates it
// whenever the session changes. It is not safe for concurrent use.
type Controller struct {
	table       *routeguard.Table
	store       *session.Store
	active      string
	decision    routeguard.Decision
	intent      string
	listeners   []func(Action)
	unsubscribe func()
}

// NewController binds a controller to table and store. A nil table selects
// routeguard.DefaultTable.
func NewController(table *routeguard.Table, store *session.Store) *Controller {
	if table == nil {
		table = routeguard.DefaultTable()
	}
	c := &Controller{
		table:  table,
		store:  store,
		active: routepath.Root,
	}
	c.unsubscribe = store.Subscribe(c.sessionChanged)
	return c
}

// Navigate evaluates path for the current session and moves the active
// screen. A login redirect records path as the intent to resume; rendering
// any other screen than the login page drops a pending intent.
func (c *Controller) Navigate(path string) Action {
	return c.evaluate(path, c.store.Current(), true)
}

// Active returns the path of the screen currently shown.
func (c *Controller) Active() string {
	return c.active
}

// Decision returns the decision computed for the last navigation.
func (c *Controller) Decision() routeguard.Decision {
	return c.decision
}

// Intent returns the pending resume path, if any.
func (c *Controller) Intent() string {
	return c.intent
}

// ResumeAfterLogin consumes the pending intent and returns where the login
// flow should go. An explicit next wins over the recorded intent; either is
// sanitized to a local path and the default is "/".
func (c *Controller) ResumeAfterLogin(next string) string {
	candidate := strings.TrimSpace(next)
	if candidate == "" {
		candidate = c.intent
	}
	c.intent = ""
	return SafeNext(candidate, routepath.Root)
}

// OnChange registers fn for actions produced by session changes.
func (c *Controller) OnChange(fn func(Action)) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

// Close detaches the controller from its session store.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.listeners = nil
}

func (c *Controller) sessionChanged(s *session.Session) {
	// A logout bounce has no visitor request behind it to resume.
	action := c.evaluate(c.active, s, false)
	for _, fn := range c.listeners {
		fn(action)
	}
}

func (c *Controller) evaluate(requested string, s *session.Session, recordIntent bool) Action {
	requested = strings.TrimSpace(requested)
	if requested == "" {
		requested = routepath.Root
	}
	path := pathOnly(requested)
	decision := c.table.Evaluate(s, requested)
	c.decision = decision
	action := Apply(decision)
	switch action.Verb {
	case Replace:
		if recordIntent && decision.Kind == routeguard.RedirectToLogin {
			c.intent = SafeNext(decision.Path, "")
		}
		c.active = pathOnly(action.Location)
	default:
		if path != routepath.Login {
			c.intent = ""
		}
		c.active = path
	}
	return action
}

// SafeNext returns raw when it is a local, non-login path (with its query),
// otherwise fallback. Absolute URLs, protocol-relative URLs and foreign hosts
// are rejected.
func SafeNext(raw, fallback string) string {
	next := strings.TrimSpace(raw)
	if next == "" || strings.Contains(next, `\`) {
		return fallback
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" || parsed.Path == "" {
		return fallback
	}
	if parsed.Path == routepath.Login || strings.HasPrefix(parsed.Path, routepath.Login+"/") {
		return fallback
	}
	if parsed.RawQuery != "" {
		return parsed.Path + "?" + parsed.RawQuery
	}
	return parsed.Path
}

func pathOnly(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return routepath.Root
	}
	return raw
}
