package resources

import (
	"context"

	"github.com/vitwit/checkout/types"
)

type HostedPayments struct{ c *Caller }

func (h *HostedPayments) Create(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return h.c.send(ctx, "hosted_payments.create", body)
}

func (h *HostedPayments) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return h.c.do(ctx, "hosted_payments.get", id)
}

type PaymentLinks struct{ c *Caller }

func (l *PaymentLinks) Create(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return l.c.send(ctx, "payment_links.create", body)
}

func (l *PaymentLinks) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return l.c.do(ctx, "payment_links.get", id)
}

type PaymentContexts struct{ c *Caller }

func (p *PaymentContexts) Request(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return p.c.send(ctx, "payment_contexts.request", body)
}

func (p *PaymentContexts) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return p.c.do(ctx, "payment_contexts.get", id)
}

type PaymentSessions struct{ c *Caller }

func (p *PaymentSessions) Request(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return p.c.send(ctx, "payment_sessions.request", body)
}

// Sessions drives standalone 3DS authentication sessions. Calls
// authenticate with an access token.
type Sessions struct{ c *Caller }

// HeaderChannel selects the session channel on retrieval.
const HeaderChannel = "channel"

func (s *Sessions) Request(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return s.c.send(ctx, "sessions.request", body)
}

// Get retrieves a session. A non-empty channel is sent as a header.
func (s *Sessions) Get(ctx context.Context, id, channel string) (*types.ResponseEnvelope, error) {
	req := Request{Args: []string{id}}
	if channel != "" {
		req.Headers = map[string]string{HeaderChannel: channel}
	}
	return s.c.Call(ctx, "sessions.get", req)
}

// Update sends the channel data collected from the device.
func (s *Sessions) Update(ctx context.Context, id string, channelData interface{}) (*types.ResponseEnvelope, error) {
	return s.c.send(ctx, "sessions.update", channelData, id)
}

func (s *Sessions) Complete(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return s.c.send(ctx, "sessions.complete", nil, id)
}
