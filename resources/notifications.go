package resources

import (
	"context"

	"github.com/vitwit/checkout/types"
)

type Webhooks struct{ c *Caller }

func (w *Webhooks) List(ctx context.Context) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "webhooks.list")
}

func (w *Webhooks) Register(ctx context.Context, body interface{}, idempotencyKey string) (*types.ResponseEnvelope, error) {
	return w.c.sendIdempotent(ctx, "webhooks.register", body, idempotencyKey)
}

func (w *Webhooks) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "webhooks.get", id)
}

// Update replaces the webhook configuration.
func (w *Webhooks) Update(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return w.c.send(ctx, "webhooks.update", body, id)
}

// Patch changes only the fields present in body.
func (w *Webhooks) Patch(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return w.c.send(ctx, "webhooks.patch", body, id)
}

func (w *Webhooks) Delete(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "webhooks.delete", id)
}

type Events struct{ c *Caller }

// EventTypes lists event types, optionally filtered by a "version" param.
func (e *Events) EventTypes(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return e.c.query(ctx, "events.types", params)
}

func (e *Events) List(ctx context.Context, params types.Params) (*types.ResponseEnvelope, error) {
	return e.c.query(ctx, "events.list", params)
}

func (e *Events) Get(ctx context.Context, eventID string) (*types.ResponseEnvelope, error) {
	return e.c.do(ctx, "events.get", eventID)
}

func (e *Events) GetNotification(ctx context.Context, eventID, notificationID string) (*types.ResponseEnvelope, error) {
	return e.c.do(ctx, "events.notification", eventID, notificationID)
}

func (e *Events) RetryWebhook(ctx context.Context, eventID, webhookID string) (*types.ResponseEnvelope, error) {
	return e.c.send(ctx, "events.retry_webhook", nil, eventID, webhookID)
}

func (e *Events) RetryAllWebhooks(ctx context.Context, eventID string) (*types.ResponseEnvelope, error) {
	return e.c.send(ctx, "events.retry_all_webhooks", nil, eventID)
}

type Workflows struct{ c *Caller }

func (w *Workflows) List(ctx context.Context) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "workflows.list")
}

func (w *Workflows) Add(ctx context.Context, body interface{}) (*types.ResponseEnvelope, error) {
	return w.c.send(ctx, "workflows.add", body)
}

func (w *Workflows) Get(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "workflows.get", id)
}

func (w *Workflows) Remove(ctx context.Context, id string) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "workflows.remove", id)
}

func (w *Workflows) Patch(ctx context.Context, id string, body interface{}) (*types.ResponseEnvelope, error) {
	return w.c.send(ctx, "workflows.patch", body, id)
}

func (w *Workflows) EventTypes(ctx context.Context) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "workflows.event_types")
}

func (w *Workflows) GetEvent(ctx context.Context, eventID string) (*types.ResponseEnvelope, error) {
	return w.c.do(ctx, "workflows.event", eventID)
}

// Reflow re-runs the workflows matching an event.
func (w *Workflows) Reflow(ctx context.Context, eventID string) (*types.ResponseEnvelope, error) {
	return w.c.send(ctx, "workflows.reflow", nil, eventID)
}
