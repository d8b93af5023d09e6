package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/checkout/types"
)

func TestRequestBatch_KeepsOrderAndPerEntryErrors(t *testing.T) {
	client, spy := newSpyClient(sandboxConfig())

	results, err := client.Payments.RequestBatch(context.Background(), []PaymentRequest{
		{Payload: types.Payload{"amount": 100, "currency": "USD"}, IdempotencyKey: "a"},
		{Payload: types.Payload{"amount": 100, "currency": "NOPE"}, IdempotencyKey: "b"},
		{Payload: types.Payload{"amount": 250, "currency": "EUR"}, IdempotencyKey: "c"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Response)
	assert.True(t, types.IsKind(results[1].Err, types.KindValue))
	assert.Nil(t, results[1].Response)
	assert.NoError(t, results[2].Err)

	keys := map[string]bool{}
	for _, desc := range spy.calls {
		keys[desc.IdempotencyKey] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "c": true}, keys)
}

func TestRequestBatch_SharedSourceIsNotMutated(t *testing.T) {
	client, spy := newSpyClient(sandboxConfig())

	source := map[string]interface{}{"number": "4242424242424242", "expiry_month": 6, "expiry_year": 2030}
	requests := make([]PaymentRequest, 8)
	for i := range requests {
		requests[i] = PaymentRequest{Payload: types.Payload{"amount": 100 + i, "currency": "USD", "source": source}}
	}

	results, err := client.Payments.RequestBatch(context.Background(), requests)
	require.NoError(t, err)
	for _, res := range results {
		require.NoError(t, res.Err)
	}

	assert.NotContains(t, source, "type")
	assert.NotContains(t, requests[0].Payload.Object("source"), "type")
	require.Len(t, spy.calls, len(requests))
	for _, desc := range spy.calls {
		body, ok := desc.Body.(types.Payload)
		require.True(t, ok)
		assert.Equal(t, "card", body.Object("source")["type"])
	}
}

func TestRequestBatch_Empty(t *testing.T) {
	client, _ := newSpyClient(sandboxConfig())

	results, err := client.Payments.RequestBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
