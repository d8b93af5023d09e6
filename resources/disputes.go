package resources

import (
	"context"

	"github.com/vitwit/checkout/types"
)

// Disputes handles chargebacks and the evidence submitted against them.
type Disputes struct{ c *Caller }

func (d *Disputes) List(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return d.c.query(ctx, "disputes.list", params)
}

func (d *Disputes) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return d.c.do(ctx, "disputes.get", id)
}

func (d *Disputes) Accept(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return d.c.send(ctx, "disputes.accept", nil, id)
}

// ProvideEvidence stages evidence without submitting it.
func (d *Disputes) ProvideEvidence(ctx context.Context, id string, evidence interface{}) (*types.ResponseEnvelope, error) {
	return d.c.send(ctx, "disputes.provide_evidence", evidence, id)
}

func (d *Disputes) GetEvidence(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return d.c.do(ctx, "disputes.get_evidence", id)
}

// SubmitEvidence submits the staged evidence. It cannot be changed afterwards.
func (d *Disputes) SubmitEvidence(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return d.c.send(ctx, "disputes.submit_evidence", nil, id)
}

func (d *Disputes) GetSchemeFiles(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return d.c.do(ctx, "disputes.scheme_files", id)
}
