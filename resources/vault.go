package resources

import (
	"context"

	"github.com/vitwit/checkout/inference"
	"github.com/vitwit/checkout/types"
)

// Tokens exchanges card or wallet data for a short-lived token.
// Calls authenticate with the public key.
type Tokens struct{ c *Caller }

// Request infers the token type from the wallet fields present.
func (t *Tokens) Request(ctx context.Context, req types.Payload) (*types.ResponseEnvelope, error) {
	inference.Token(req)
	return t.c.send(ctx, "tokens.request", req)
}

// Sources registers reusable payment sources.
type Sources struct{ c *Caller }

func (s *Sources) Add(ctx context.Context, req types.Payload) (*types.ResponseEnvelope, error) {
	inference.Source(req)
	return s.c.send(ctx, "sources.add", req)
}

// Instruments stores payment instruments against a customer.
type Instruments struct{ c *Caller }

func (i *Instruments) Create(ctx context.Context, req types.Payload) (*types.ResponseEnvelope, error) {
	inference.Instrument(req)
	return i.c.send(ctx, "instruments.create", req)
}

func (i *Instruments) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return i.c.do(ctx, "instruments.get", id)
}

func (i *Instruments) Update(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return i.c.send(ctx, "instruments.update", body, id)
}

func (i *Instruments) Delete(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return i.c.do(ctx, "instruments.delete", id)
}

// GetBankAccountFieldFormatting returns the bank account fields required
// for a country and currency pair.
func (i *Instruments) GetBankAccountFieldFormatting(ctx context.Context, country, currency string, params types.Params) (*types.ResponseEnvelope, error) {
	return i.c.query(ctx, "instruments.bank_account_fields", params, country, currency)
}

type Customers struct{ c *Caller }

func (cu *Customers) Create(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return cu.c.send(ctx, "customers.create", body)
}

// Get accepts a customer id or email.
func (cu *Customers) Get(ctx context.Context, idOrEmail string) (*types.ResponseEnvelope, error) {
	return cu.c.do(ctx, "customers.get", idOrEmail)
}

func (cu *Customers) Update(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return cu.c.send(ctx, "customers.update", body, id)
}

func (cu *Customers) Delete(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return cu.c.do(ctx, "customers.delete", id)
}
