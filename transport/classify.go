package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vitwit/checkout/types"
)

// Outcome is the raw result of a failed exchange: either a non-2xx
// response whose body has already been read and parsed, or a timeout.
type Outcome struct {
	Status    int
	Body      interface{}
	RequestID string
	Timeout   bool
}

func (o *Outcome) Error() string {
	if o.Timeout {
		return "request timed out"
	}
	return fmt.Sprintf("unexpected http status %d", o.Status)
}

type statusMapping struct {
	kind    types.ErrorKind
	message string
}

var statusKinds = map[int]statusMapping{
	http.StatusUnauthorized:        {types.KindAuthentication, "authentication failed"},
	http.StatusNotFound:            {types.KindNotFound, "resource not found"},
	http.StatusForbidden:           {types.KindActionNotAllowed, "action not allowed"},
	http.StatusUnprocessableEntity: {types.KindValidation, "request validation failed"},
	http.StatusTooManyRequests:     {types.KindTooManyRequests, "too many requests"},
	http.StatusBadGateway:          {types.KindBadGateway, "bad gateway"},
}

// Classify maps any failure to an *types.APIError. It never fails:
// timeouts become KindTimeout, errors that are already typed (including
// local value errors) pass through unchanged, outcomes are mapped by
// status, and anything else becomes a generic API error wrapping the cause.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var outcome *Outcome
	isOutcome := errors.As(err, &outcome)
	if isOutcome && outcome.Timeout {
		return (&types.APIError{Kind: types.KindTimeout, Message: "request timed out"}).WithCause(err)
	}

	if apiErr := types.AsAPIError(err); apiErr != nil {
		return err
	}

	if !isOutcome {
		return (&types.APIError{
			Kind:    types.KindAPI,
			Message: err.Error(),
			Body:    map[string]interface{}{},
		}).WithCause(err)
	}

	body := outcome.Body
	if body == nil {
		body = map[string]interface{}{}
	}

	mapping, known := statusKinds[outcome.Status]
	if !known {
		return &types.APIError{
			Kind:      types.KindAPI,
			Status:    outcome.Status,
			Body:      body,
			Message:   fmt.Sprintf("api error: %s", http.StatusText(outcome.Status)),
			RequestID: outcome.RequestID,
		}
	}

	return &types.APIError{
		Kind:      mapping.kind,
		Status:    outcome.Status,
		Body:      body,
		Message:   mapping.message,
		RequestID: outcome.RequestID,
	}
}
