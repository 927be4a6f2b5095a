// Package timeouts defines the durations shared across the web service so
// server, shell and socket lifetimes stay discoverable in one place.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ShellIdle is how long an untouched visitor shell is kept in memory.
const ShellIdle = 2 * time.Hour

// ShellSweep is the interval between idle-shell sweeps.
const ShellSweep = 5 * time.Minute

// EventWrite caps a single live-event frame write to a browser socket.
const EventWrite = 10 * time.Second

// ShellCookie is the lifetime of a signed shell cookie. It outlives
// ShellIdle so an evicted shell is replaced rather than the cookie expiring
// mid-visit.
const ShellCookie = 24 * time.Hour

// SOSRelay caps one outbound SOS relay message.
const SOSRelay = 5 * time.Second
