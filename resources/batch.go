package resources

import (
	"context"
	"maps"

	"github.com/vitwit/checkout/types"
)

// PaymentRequest is one entry of a batch submission.
type PaymentRequest struct {
	Payload        types.Payload
	IdempotencyKey string
}

// PaymentResult is the outcome of one batch entry. Exactly one of
// Response and Err is set.
type PaymentResult struct {
	Response *types.ResponseEnvelope
	Err      error
}

// RequestBatch submits every request concurrently, each as an independent
// call. Results are returned in input order and individual failures are
// recorded per entry. The batch fails as a whole only when ctx is done
// before every call has returned. Payloads are copied before type
// inference, so entries may share nested source or destination objects
// and the caller's maps are left unchanged.
func (p *Payments) RequestBatch(ctx context.Context, requests []PaymentRequest) ([]PaymentResult, error) {
	results := make([]PaymentResult, len(requests))

	type batchResult struct {
		index  int
		result PaymentResult
	}

	resultChan := make(chan batchResult, len(requests))

	for i, req := range requests {
		go func(index int, req PaymentRequest) {
			resp, err := p.Request(ctx, clonePayment(req.Payload), req.IdempotencyKey)
			resultChan <- batchResult{index: index, result: PaymentResult{Response: resp, Err: err}}
		}(i, req)
	}

	for i := 0; i < len(requests); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-resultChan:
			results[res.index] = res.result
		}
	}

	return results, nil
}

// clonePayment copies the request and the nested objects inference writes to.
func clonePayment(req types.Payload) types.Payload {
	if req == nil {
		return nil
	}
	out := maps.Clone(req)
	for _, key := range []string{"source", "destination"} {
		if obj := req.Object(key); obj != nil {
			out[key] = maps.Clone(obj)
		}
	}
	return out
}
