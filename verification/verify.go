// Package verification rejects structurally invalid payment requests
// before they reach the network.
package verification

import (
	"github.com/vitwit/checkout/types"
	"github.com/vitwit/checkout/utils"
)

// Messages returned by ValidatePayment.
const (
	MsgAmountDecimals     = "amount can not contain decimals"
	MsgInvalidCurrency    = "currency value is not valid"
	MsgInvalidPaymentType = "payment type is not valid"
	MsgSourceTypeString   = "source type needs to be a string"
	MsgReferenceString    = "reference needs to be a string"
)

// Validator checks a payment request. ValidatePayment satisfies it via ValidatorFunc.
type Validator interface {
	Validate(req types.Payload) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(req types.Payload) error

func (f ValidatorFunc) Validate(req types.Payload) error {
	return f(req)
}

// Default is the validator used by the payments resource.
var Default Validator = ValidatorFunc(ValidatePayment)

// ValidatePayment returns a value error for the first violated rule.
// Amounts are minor-unit integers, so any decimal point is rejected.
func ValidatePayment(req types.Payload) error {
	if req == nil {
		return types.NewValueError("payment request is required")
	}

	if req.Has("amount") && utils.HasDecimals(req["amount"]) {
		return types.NewValueError(MsgAmountDecimals)
	}

	if !utils.IsSupportedCurrency(req["currency"]) {
		return types.NewValueError(MsgInvalidCurrency)
	}

	if req.Has("payment_type") {
		paymentType, ok := req["payment_type"].(string)
		if !ok || !utils.IsSupportedPaymentType(paymentType) {
			return types.NewValueError(MsgInvalidPaymentType)
		}
	}

	if source := req.Object("source"); source.Has("type") {
		if _, ok := source["type"].(string); !ok {
			return types.NewValueError(MsgSourceTypeString)
		}
	}

	if req.Has("reference") {
		if _, ok := req["reference"].(string); !ok {
			return types.NewValueError(MsgReferenceString)
		}
	}

	return nil
}
