package resources

import (
	"context"

	"github.com/vitwit/checkout/inference"
	"github.com/vitwit/checkout/types"
	"github.com/vitwit/checkout/verification"
)

const statusPending = "Pending"

// Payments requests and manages card and alternative payments.
type Payments struct {
	c         *Caller
	validator verification.Validator
}

// NewPayments creates the payments resource. A nil validator falls back
// to verification.Default.
func NewPayments(c *Caller, v verification.Validator) *Payments {
	if v == nil {
		v = verification.Default
	}
	return &Payments{c: c, validator: v}
}

// Request infers the source and destination types, validates the request
// and submits it. A request that fails validation is never sent.
func (p *Payments) Request(ctx context.Context, req types.Payload, idempotencyKey string) (*types.ResponseEnvelope, error) {
	inference.Payment(req)
	if err := p.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := p.c.sendIdempotent(ctx, "payments.request", req, idempotencyKey)
	if err != nil {
		return nil, err
	}
	addUtilityParams(resp)
	return resp, nil
}

func (p *Payments) List(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return p.c.query(ctx, "payments.list", params)
}

func (p *Payments) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return p.c.do(ctx, "payments.get", id)
}

func (p *Payments) GetActions(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return p.c.do(ctx, "payments.actions", id)
}

// Increment increases the authorized amount of a payment.
func (p *Payments) Increment(ctx context.Context, id string, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return p.c.sendIdempotent(ctx, "payments.increment", body, idempotencyKey, id)
}

// Capture captures a payment. A nil body captures the full amount.
func (p *Payments) Capture(ctx context.Context, id string, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return p.c.sendIdempotent(ctx, "payments.capture", body, idempotencyKey, id)
}

// Refund refunds a captured payment. A nil body refunds the full amount.
func (p *Payments) Refund(ctx context.Context, id string, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return p.c.sendIdempotent(ctx, "payments.refund", body, idempotencyKey, id)
}

func (p *Payments) Void(ctx context.Context, id string, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return p.c.sendIdempotent(ctx, "payments.void", body, idempotencyKey, id)
}

// addUtilityParams marks pending payments that need a 3DS or APM redirect.
// requiresRedirect is always set on object responses; redirectLink only
// when a redirect is required.
func addUtilityParams(resp *types.ResponseEnvelope) {
	body := resp.Payload()
	if body == nil {
		return
	}

	status, _ := body["status"].(string)
	redirect := body.Object("_links").Object("redirect")
	if status != statusPending || redirect == nil {
		body["requiresRedirect"] = false
		return
	}

	body["requiresRedirect"] = true
	body["redirectLink"] = redirect["href"]
}
