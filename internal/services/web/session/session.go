// Package session holds the authenticated identity of one shell and notifies
// subscribers when it changes.
package session

// Session is an authenticated identity. A nil *Session means "logged out".
type Session struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Role       Role
	BloodGroup *BloodGroup
	Location   *string
	Available  *bool
}

// Clone returns a deep copy so stored sessions cannot be mutated through
// caller-held pointers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	if s.BloodGroup != nil {
		group := *s.BloodGroup
		clone.BloodGroup = &group
	}
	if s.Location != nil {
		location := *s.Location
		clone.Location = &location
	}
	if s.Available != nil {
		available := *s.Available
		clone.Available = &available
	}
	return &clone
}

// HasRole reports whether the session holds role. A nil session holds none.
func (s *Session) HasRole(role Role) bool {
	return s != nil && s.Role == role
}

// Store owns the current session of one shell.
//
// Store is not safe for concurrent use: the shell registry serializes every
// request for a shell, so all reads and writes happen on one logical thread.
type Store struct {
	current     *Session
	subscribers []subscriber
	nextID      int
}

type subscriber struct {
	id int
	fn func(*Session)
}

// NewStore returns a store with no session.
func NewStore() *Store {
	return &Store{}
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Store) Current() *Session {
	return s.current.Clone()
}

// Set replaces the session (nil clears it) and notifies every subscriber in
// subscription order before returning.
func (s *Store) Set(next *Session) {
	s.current = next.Clone()
	subscribers := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subscribers {
		sub.fn(s.current.Clone())
	}
}

// Clear logs out. It is Set(nil).
func (s *Store) Clear() {
	s.Set(nil)
}

// Subscribe registers fn for session changes and returns its cancel func.
// A nil fn is ignored.
func (s *Store) Subscribe(fn func(*Session)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for idx, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:idx], s.subscribers[idx+1:]...)
				return
			}
		}
	}
}
