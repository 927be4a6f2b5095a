package relay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

type fakeSender struct {
	mu       sync.Mutex
	channels []string
	messages []*discordgo.MessageSend
	err      error
	sent     chan struct{}
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan struct{}, 8)}
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	f.channels = append(f.channels, channelID)
	f.messages = append(f.messages, data)
	f.mu.Unlock()
	f.sent <- struct{}{}
	return &discordgo.Message{ChannelID: channelID}, f.err
}

func waitSent(t *testing.T, f *fakeSender) {
	t.Helper()
	select {
	case <-f.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for relay send")
	}
}

func TestNewValidatesInput(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, "c1", 1); err == nil {
		t.Fatal("expected error for nil sender")
	}
	if _, err := New(newFakeSender(), "  ", 1); err == nil {
		t.Fatal("expected error for empty channel")
	}
	if _, err := NewDiscord("", "c1"); err == nil {
		t.Fatal("expected error for empty token")
	}
	r, err := New(newFakeSender(), "c1", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cap(r.queue) != DefaultQueueSize {
		t.Fatalf("queue size = %d, want %d", cap(r.queue), DefaultQueueSize)
	}
}

func TestRunPostsQueuedAlerts(t *testing.T) {
	t.Parallel()

	sender := newFakeSender()
	r, err := New(sender, "responders", 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	alert := storage.SOSAlert{ID: "a1", ShellID: "s1", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	if !r.Notify(alert) {
		t.Fatal("Notify() = false, want true")
	}
	waitSent(t, sender)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if sender.channels[0] != "responders" {
		t.Fatalf("channel = %q", sender.channels[0])
	}
	embed := sender.messages[0].Embeds[0]
	if embed.Timestamp != "2026-03-01T10:00:00Z" || embed.Fields[0].Value != "a1" || embed.Fields[1].Value != "anonymous" {
		t.Fatalf("embed = %+v", embed)
	}
}

func TestRunKeepsGoingAfterSendError(t *testing.T) {
	t.Parallel()

	sender := newFakeSender()
	sender.err = errors.New("rate limited")
	r, _ := New(sender, "responders", 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	r.Notify(storage.SOSAlert{ID: "a1"})
	r.Notify(storage.SOSAlert{ID: "a2"})
	waitSent(t, sender)
	waitSent(t, sender)
}

func TestNotifyDropsWhenQueueFull(t *testing.T) {
	t.Parallel()

	r, _ := New(newFakeSender(), "responders", 1)
	if !r.Notify(storage.SOSAlert{ID: "a1"}) {
		t.Fatal("first Notify() = false")
	}
	if r.Notify(storage.SOSAlert{ID: "a2"}) {
		t.Fatal("second Notify() = true, want dropped")
	}

	var nilRelay *Relay
	if nilRelay.Notify(storage.SOSAlert{ID: "a3"}) {
		t.Fatal("nil relay accepted alert")
	}
}

func TestMessageNamesSignedInAccount(t *testing.T) {
	t.Parallel()

	msg := Message(storage.SOSAlert{ID: "a1", AccountID: "acct-9", ShellID: "s1"})
	if got := msg.Embeds[0].Fields[1].Value; got != "acct-9" {
		t.Fatalf("account field = %q", got)
	}
}
