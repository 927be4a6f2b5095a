package shell

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/platform/id"
)

// Lease is exclusive access to one shell. Release must be called exactly
// once; further calls are no-ops.
type Lease struct {
	Shell   *Shell
	Created bool
	release func()
	once    sync.Once
}

// Release returns the shell to the registry.
func (l *Lease) Release() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		if l.release != nil {
			l.release()
		}
	})
}

type entry struct {
	mu       sync.Mutex
	shell    *Shell
	lastSeen time.Time
	refs     int
}

// Registry maps shell IDs to shells and serializes access per shell.
type Registry struct {
	cfg   Config
	idle  time.Duration
	now   func() time.Time
	newID func() (string, error)

	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry builds a registry whose shells are evicted after idle without
// requests. idle <= 0 disables eviction.
func NewRegistry(cfg Config, idle time.Duration) *Registry {
	return &Registry{
		cfg:     cfg,
		idle:    idle,
		now:     time.Now,
		newID:   id.NewID,
		entries: map[string]*entry{},
	}
}

// Acquire locks the shell for shellID, creating a fresh shell when the ID is
// empty or unknown. The returned lease holds the shell's lock until Release.
// A done ctx fails before any shell is created.
func (r *Registry) Acquire(ctx context.Context, shellID string) (*Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shellID = strings.TrimSpace(shellID)

	r.mu.Lock()
	e, ok := r.entries[shellID]
	created := false
	if !ok || shellID == "" {
		newID, err := r.newID()
		if err != nil {
			r.mu.Unlock()
			return nil, fmt.Errorf("acquire shell: %w", err)
		}
		e = &entry{shell: New(newID, r.cfg), lastSeen: r.now()}
		r.entries[newID] = e
		created = true
	}
	e.refs++
	r.mu.Unlock()

	e.mu.Lock()

	return &Lease{
		Shell:   e.shell,
		Created: created,
		release: func() {
			e.mu.Unlock()
			r.unref(e)
		},
	}, nil
}

// Watch subscribes to the events of shellID and keeps the shell alive until
// the returned cancel func runs. It reports false for unknown IDs.
func (r *Registry) Watch(shellID string) (<-chan Event, func(), bool) {
	r.mu.Lock()
	e, ok := r.entries[strings.TrimSpace(shellID)]
	if !ok {
		r.mu.Unlock()
		return nil, func() {}, false
	}
	e.refs++
	events := e.shell.Events()
	r.mu.Unlock()

	ch, unsubscribe := events.Subscribe()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			unsubscribe()
			r.unref(e)
		})
	}, true
}

func (r *Registry) unref(e *entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.refs--
	e.lastSeen = r.now()
}

// Len reports the number of live shells.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep closes and forgets shells idle for longer than the idle timeout and
// returns how many were evicted.
func (r *Registry) Sweep() int {
	if r.idle <= 0 {
		return 0
	}
	now := r.now()
	var evicted []*Shell

	r.mu.Lock()
	for shellID, e := range r.entries {
		if e.refs == 0 && now.Sub(e.lastSeen) > r.idle {
			delete(r.entries, shellID)
			evicted = append(evicted, e.shell)
		}
	}
	r.mu.Unlock()

	for _, s := range evicted {
		s.Close()
	}
	return len(evicted)
}

// Run sweeps every interval until ctx is done, then closes every shell.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("shell registry evicted=%d live=%d", n, r.Len())
			}
		}
	}
}

// Close tears down every shell.
func (r *Registry) Close() {
	r.mu.Lock()
	shells := make([]*Shell, 0, len(r.entries))
	for shellID, e := range r.entries {
		delete(r.entries, shellID)
		shells = append(shells, e.shell)
	}
	r.mu.Unlock()

	for _, s := range shells {
		s.Close()
	}
}
