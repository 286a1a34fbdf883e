package notify

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type throttled struct {
	sender  Sender
	limiter *rate.Limiter
}

// Throttle limits the rate sender is invoked at. Callers block until the
// limiter grants a token or ctx is done.
func Throttle(sender Sender, limiter *rate.Limiter) Sender {
	if limiter == nil {
		return sender
	}

	return &throttled{sender: sender, limiter: limiter}
}

func (t *throttled) Send(ctx context.Context, msg Message) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for notification rate limit: %w", err)
	}

	return t.sender.Send(ctx, msg)
}
