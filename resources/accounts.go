package resources

import (
	"context"

	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
)

// Balances reads entity balances from the balances host.
type Balances struct{ c *Caller }

func (b *Balances) Retrieve(ctx context.Context, entityID string, params types.Params) (*types.ResponseEnvelope, error) {
	return b.c.query(ctx, "balances.retrieve", params, entityID)
}

// Transfers moves funds between entities on the transfers host.
type Transfers struct{ c *Caller }

func (t *Transfers) Initiate(ctx context.Context, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return t.c.sendIdempotent(ctx, "transfers.initiate", body, idempotencyKey)
}

func (t *Transfers) Retrieve(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return t.c.do(ctx, "transfers.retrieve", id)
}

// Platforms manages sub-entities of a platform account.
type Platforms struct {
	c         *Caller
	multipart transport.MultipartBuilder
}

func (p *Platforms) OnboardSubEntity(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return p.c.send(ctx, "platforms.onboard", body)
}

func (p *Platforms) GetSubEntity(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return p.c.do(ctx, "platforms.get", id)
}

func (p *Platforms) UpdateSubEntity(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return p.c.send(ctx, "platforms.update", body, id)
}

func (p *Platforms) AddPaymentInstrument(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return p.c.send(ctx, "platforms.add_instrument", body, id)
}

// UploadFile uploads an onboarding document to the files host.
func (p *Platforms) UploadFile(ctx context.Context, purpose string, file transport.FormFile) (*types.ResponseEnvelope, error) {
	if file.Field == "" {
		file.Field = "path"
	}
	body, err := p.multipart.Build(types.Params{{Key: "purpose", Value: purpose}}, file)
	if err != nil {
		return nil, err
	}
	return p.c.Call(ctx, "platforms.files.upload", Request{Prebuilt: body})
}

type Financial struct{ c *Caller }

// GetActions lists financial actions. Filter by payment_id or action_id.
func (f *Financial) GetActions(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return f.c.query(ctx, "financial.actions", params)
}

type Forex struct{ c *Caller }

func (f *Forex) RequestQuote(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return f.c.send(ctx, "forex.quote", body)
}

func (f *Forex) GetRates(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return f.c.query(ctx, "forex.rates", params)
}

type Issuing struct{ c *Caller }

func (i *Issuing) CreateCardholder(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return i.c.send(ctx, "issuing.create_cardholder", body)
}

func (i *Issuing) GetCardholder(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return i.c.do(ctx, "issuing.get_cardholder", id)
}

func (i *Issuing) CreateCard(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return i.c.send(ctx, "issuing.create_card", body)
}

func (i *Issuing) GetCard(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return i.c.do(ctx, "issuing.get_card", id)
}
