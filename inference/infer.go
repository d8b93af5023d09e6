// Package inference fills in the "type" discriminator of request payloads
// from the sibling fields that are present. Every rule is a no-op when
// "type" is already set, and rules are evaluated top to bottom with the
// first match winning. When nothing matches the payload is left as is.
package inference

import (
	"strings"

	"github.com/vitwit/checkout/types"
)

const typeField = "type"

// Discriminator values written by the rules below.
const (
	TypeCard         = "card"
	TypeCustomer     = "customer"
	TypeID           = "id"
	TypeToken        = "token"
	TypeNetworkToken = "network_token"
	TypeApplePay     = "applepay"
	TypeGooglePay    = "googlepay"
	TypeACH          = "ach"
	TypeSEPA         = "sepa"
)

// Payment infers the type of a payment request's source and destination.
func Payment(req types.Payload) {
	if req == nil {
		return
	}
	PaymentSource(req.Object("source"))
	PaymentDestination(req.Object("destination"))
}

// PaymentSource infers the type of a payment source.
func PaymentSource(source types.Payload) {
	if source == nil || source.Has(typeField) {
		return
	}

	id, _ := source["id"].(string)
	switch {
	case source.Has("number"):
		source[typeField] = TypeCard
	case source.Has("email") || strings.HasPrefix(id, "cus_"):
		source[typeField] = TypeCustomer
	case strings.HasPrefix(id, "src_"):
		source[typeField] = TypeID
	case source.Has("token") && !source.Has("cryptogram"):
		source[typeField] = TypeToken
	case source.Has("token") && source.Has("cryptogram"):
		source[typeField] = TypeNetworkToken
	}
}

// PaymentDestination infers the type of a payout destination.
func PaymentDestination(destination types.Payload) {
	if destination == nil || destination.Has(typeField) {
		return
	}

	switch {
	case destination.Has("number"):
		destination[typeField] = TypeCard
	case destination.Has("token"):
		destination[typeField] = TypeToken
	case destination.Has("id"):
		destination[typeField] = TypeID
	}
}

// Token infers the type of a tokenization request.
func Token(req types.Payload) {
	if req == nil || req.Has(typeField) {
		return
	}

	tokenData := req.Object("token_data")
	switch {
	case req.Has("number"):
		req[typeField] = TypeCard
	case tokenData.Has("header"):
		req[typeField] = TypeApplePay
	case tokenData.Has("signedMessage"):
		req[typeField] = TypeGooglePay
	}
}

// Source infers the type of a standalone source (the /sources call).
func Source(req types.Payload) {
	if req == nil || req.Has(typeField) {
		return
	}

	sourceData := req.Object("source_data")
	switch {
	case sourceData.Has("account_type"):
		req[typeField] = TypeACH
	case sourceData.Has("account_iban"):
		req[typeField] = TypeSEPA
	}
}

// Instrument defaults the instrument type to token.
func Instrument(req types.Payload) {
	if req == nil || req.Has(typeField) {
		return
	}
	req[typeField] = TypeToken
}
