// Package events streams shell changes to open browser tabs over a
// websocket, so a logout, language switch or SOS reset in one tab reaches
// the others without polling.
package events

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/platform/timeouts"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"golang.org/x/net/websocket"
)

// Watcher subscribes to the events of a live shell.
type Watcher interface {
	Watch(shellID string) (<-chan shell.Event, func(), bool)
}

// ShellReader extracts the verified shell ID from a request.
type ShellReader interface {
	Read(r *http.Request) (string, bool)
}

// Module provides the event stream. It is mounted outside the shell
// middleware: a socket must not hold the shell lock for its lifetime.
type Module struct {
	watcher Watcher
	cookies ShellReader
}

// New returns the events module.
func New(watcher Watcher, cookies ShellReader) Module {
	return Module{watcher: watcher, cookies: cookies}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "events"
}

// Mount wires the websocket route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Events, m.handleEvents)
	return module.Mount{Prefix: routepath.Events, Handler: mux}, nil
}

func (m Module) handleEvents(w http.ResponseWriter, r *http.Request) {
	if m.watcher == nil || m.cookies == nil {
		http.Error(w, "event stream is not configured", http.StatusServiceUnavailable)
		return
	}
	shellID, ok := m.cookies.Read(r)
	if !ok {
		http.Error(w, "shell cookie required", http.StatusUnauthorized)
		return
	}
	events, cancel, ok := m.watcher.Watch(shellID)
	if !ok {
		http.Error(w, "shell not found", http.StatusNotFound)
		return
	}
	defer cancel()

	websocket.Handler(func(conn *websocket.Conn) {
		stream(conn, events, cancel)
	}).ServeHTTP(w, r)
}

// stream forwards events until the shell closes, the client goes away or a
// write fails.
func stream(conn *websocket.Conn, events <-chan shell.Event, cancel func()) {
	defer func() {
		_ = conn.Close()
	}()
	go func() {
		// Inbound frames are ignored; a read error means the client is gone.
		_, _ = io.Copy(io.Discard, conn)
		cancel()
	}()

	for event := range events {
		_ = conn.SetWriteDeadline(time.Now().Add(timeouts.EventWrite))
		if err := websocket.JSON.Send(conn, event); err != nil {
			log.Printf("events: send %s: %v", event.Type, err)
			return
		}
	}
}
