package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"
)

// Pusher sends a single structured message to a single device and
// returns the transport's delivery receipt identifier.
type Pusher interface {
	Send(ctx context.Context, msg *messaging.Message) (string, error)
}

type fcmPusher struct {
	client  *messaging.Client
	limiter *rate.Limiter
}

// NewFCMPusher wraps the FCM client behind the Pusher interface. The
// limiter smooths reminder fan-out bursts; sendsPerSecond <= 0 disables it.
func NewFCMPusher(client *messaging.Client, sendsPerSecond int) Pusher {
	p := &fcmPusher{client: client}
	if sendsPerSecond > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(sendsPerSecond), sendsPerSecond)
	}
	return p
}

func (p *fcmPusher) Send(ctx context.Context, msg *messaging.Message) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("push limiter: %w", err)
		}
	}
	receipt, err := p.client.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send FCM message: %w", err)
	}
	return receipt, nil
}
