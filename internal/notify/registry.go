package notify

import (
	"context"
	"scanrunner/pkg/serrors"
)

//go:generate mockgen -package mocknotify -source=registry.go -destination=mock/mocknotify.go *

// Channel identifiers understood by the runner.
const (
	ChannelNone   = "None"
	ChannelMail   = "Mail"
	ChannelPubSub = "PubSub"
	ChannelAMQP   = "AMQP"
)

// ChannelConfig is one entry of the ordered channel list. A user's
// notification preference is an index into that list.
type ChannelConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Sender delivers a notification over one channel.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Registry maps preference indexes to senders. It is resolved once and read-only afterwards.
type Registry struct {
	channels []ChannelConfig
	// resolved keeps the last configured entry for every id
	resolved map[string]ChannelConfig
	senders  map[string]Sender
}

// NewRegistry resolves the ordered channel list. When an id appears more
// than once the last entry wins.
func NewRegistry(channels []ChannelConfig, senders map[string]Sender) *Registry {
	r := &Registry{
		channels: append([]ChannelConfig(nil), channels...),
		resolved: make(map[string]ChannelConfig, len(channels)),
		senders:  make(map[string]Sender, len(senders)),
	}
	for _, ch := range channels {
		r.resolved[ch.ID] = ch
	}
	for id, s := range senders {
		r.senders[id] = s
	}

	return r
}

// Len returns the number of configured entries.
func (r *Registry) Len() int { return len(r.channels) }

// Channel returns the channel selected by a preference index. The sender is
// nil for the None channel. Out of range indexes and channels without a
// sender return ErrNotification.
func (r *Registry) Channel(index int) (ChannelConfig, Sender, error) {
	if index < 0 || index >= len(r.channels) {
		return ChannelConfig{}, nil, serrors.With(serrors.ErrNotification,
			"notification preference %d is out of range [0, %d)", index, len(r.channels))
	}

	ch := r.resolved[r.channels[index].ID]
	if ch.ID == ChannelNone {
		return ch, nil, nil
	}

	sender, ok := r.senders[ch.ID]
	if !ok {
		return ChannelConfig{}, nil, serrors.With(serrors.ErrNotification, "channel %q has no sender", ch.ID)
	}

	return ch, sender, nil
}

// IndexOf returns the last index configured for id, or -1.
func (r *Registry) IndexOf(id string) int {
	for i := len(r.channels) - 1; i >= 0; i-- {
		if r.channels[i].ID == id {
			return i
		}
	}

	return -1
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}
