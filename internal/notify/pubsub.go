package notify

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
)

const publishTimeout = 5 * time.Second

// PubSubSender publishes notifications to a Google Cloud Pub/Sub topic.
type PubSubSender struct {
	topic *pubsub.Topic
}

// NewPubSubSender creates a sender publishing to topic.
func NewPubSubSender(topic *pubsub.Topic) *PubSubSender {
	return &PubSubSender{topic: topic}
}

func (p *PubSubSender) Send(ctx context.Context, msg Message) error {
	payload, err := msg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: msg.Attributes(),
	}).Get(ctx); err != nil {
		return fmt.Errorf("could not publish notification: %w", err)
	}

	return nil
}
