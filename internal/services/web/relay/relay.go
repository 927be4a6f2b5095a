// Package relay forwards recorded SOS alerts to a responder channel on
// Discord. Alerts are queued so the visitor's request never waits on the
// network; a full queue drops the alert after logging it, since the alert
// log in storage remains the record of truth.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/louisbranch/emergencyhelp/internal/platform/timeouts"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// DefaultQueueSize bounds alerts waiting to be relayed.
const DefaultQueueSize = 64

const alertColor = 0xdc2626

// Sender posts a message to a channel. *discordgo.Session satisfies it.
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Relay queues SOS alerts and posts them from Run.
type Relay struct {
	sender    Sender
	channelID string
	queue     chan storage.SOSAlert
	timeout   time.Duration
}

// New builds a relay posting to channelID through sender.
func New(sender Sender, channelID string, queueSize int) (*Relay, error) {
	if sender == nil {
		return nil, errors.New("relay sender is required")
	}
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, errors.New("relay channel is required")
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Relay{
		sender:    sender,
		channelID: channelID,
		queue:     make(chan storage.SOSAlert, queueSize),
		timeout:   timeouts.SOSRelay,
	}, nil
}

// NewDiscord builds a relay authenticated as the bot with token.
func NewDiscord(token, channelID string) (*Relay, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("discord bot token is required")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return New(session, channelID, DefaultQueueSize)
}

// Notify queues alert without blocking. It reports whether the alert was
// accepted.
func (r *Relay) Notify(alert storage.SOSAlert) bool {
	if r == nil {
		return false
	}
	select {
	case r.queue <- alert:
		return true
	default:
		log.Printf("relay: queue full, dropped alert=%s", alert.ID)
		return false
	}
}

// Run posts queued alerts until ctx is done. Alerts still queued at that
// point are dropped.
func (r *Relay) Run(ctx context.Context) {
	if r == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case alert := <-r.queue:
			if err := r.send(ctx, alert); err != nil {
				log.Printf("relay: send alert=%s: %v", alert.ID, err)
			}
		}
	}
}

func (r *Relay) send(ctx context.Context, alert storage.SOSAlert) error {
	sendCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err := r.sender.ChannelMessageSendComplex(r.channelID, Message(alert), discordgo.WithContext(sendCtx))
	return err
}

// Message renders alert as a Discord embed.
func Message(alert storage.SOSAlert) *discordgo.MessageSend {
	account := alert.AccountID
	if account == "" {
		account = "anonymous"
	}
	return &discordgo.MessageSend{
		Content: "🚨 SOS triggered",
		Embeds: []*discordgo.MessageEmbed{{
			Title:     "SOS alert",
			Color:     alertColor,
			Timestamp: alert.CreatedAt.UTC().Format(time.RFC3339),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Alert", Value: alert.ID, Inline: true},
				{Name: "Account", Value: account, Inline: true},
				{Name: "Visitor", Value: alert.ShellID},
			},
		}},
	}
}
