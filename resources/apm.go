package resources

import (
	"context"

	"github.com/vitwit/checkout/types"
)

type Risk struct{ c *Caller }

func (r *Risk) PreAuthentication(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return r.c.send(ctx, "risk.pre_authentication", body)
}

func (r *Risk) PreCapture(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return r.c.send(ctx, "risk.pre_capture", body)
}

type CardMetadata struct{ c *Caller }

// Get looks up a card's scheme, issuer and product by number, BIN or token.
func (m *CardMetadata) Get(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return m.c.send(ctx, "card_metadata.get", body)
}

type ApplePay struct{ c *Caller }

func (a *ApplePay) UploadCertificate(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return a.c.send(ctx, "applepay.upload_certificate", body)
}

func (a *ApplePay) Enroll(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return a.c.send(ctx, "applepay.enroll", body)
}

func (a *ApplePay) GenerateCSR(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return a.c.send(ctx, "applepay.generate_csr", body)
}

// Klarna creates credit sessions. The sandbox serves them under a
// different path prefix.
type Klarna struct{ c *Caller }

func (k *Klarna) CreateCreditSession(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return k.c.send(ctx, "klarna.credit_session", body)
}

type Ideal struct{ c *Caller }

func (i *Ideal) GetInfo(ctx context.Context) (*types.ResponseEnvelope, error) {
	return i.c.do(ctx, "ideal.info")
}
