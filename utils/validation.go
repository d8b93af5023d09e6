package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// supportedCurrencies lists the ISO 4217 codes accepted by the payments API.
var supportedCurrencies = map[string]struct{}{}

func init() {
	for _, code := range strings.Fields(`
		AED AFN ALL AMD ANG AOA ARS AUD AWG AZN BAM BBD BDT BGN BHD BIF BMD BND
		BOB BRL BSD BTN BWP BYN BZD CAD CDF CHF CLF CLP CNY COP CRC CUP CVE CZK
		DJF DKK DOP DZD EEK EGP ERN ETB EUR FJD FKP GBP GEL GHS GIP GMD GNF GTQ
		GYD HKD HNL HRK HTG HUF IDR ILS INR IQD IRR ISK JMD JOD JPY KES KGS KHR
		KMF KPW KRW KWD KYD KZT LAK LBP LKR LRD LSL LTL LVL LYD MAD MDL MGA MKD
		MMK MNT MOP MRU MUR MVR MWK MXN MYR MZN NAD NGN NIO NOK NPR NZD OMR PAB
		PEN PGK PHP PKR PLN PYG QAR RON RSD RUB RWF SAR SBD SCR SDG SEK SGD SHP
		SLE SLL SOS SRD STN SVC SYP SZL THB TJS TMT TND TOP TRY TTD TWD TZS UAH
		UGX USD UYU UZS VEF VES VND VUV WST XAF XCD XOF XPF YER ZAR ZMW ZWL`) {
		supportedCurrencies[code] = struct{}{}
	}
}

// supportedPaymentTypes are compared in lowercase.
var supportedPaymentTypes = map[string]struct{}{
	"regular":     {},
	"recurring":   {},
	"moto":        {},
	"installment": {},
	"unscheduled": {},
}

// IsSupportedCurrency checks a currency code against the registry. The
// comparison is exact: codes are upper-case three letter strings.
func IsSupportedCurrency(currency interface{}) bool {
	code, ok := currency.(string)
	if !ok {
		return false
	}
	_, found := supportedCurrencies[code]
	return found
}

// IsSupportedPaymentType checks a payment type, case-insensitively.
func IsSupportedPaymentType(paymentType string) bool {
	_, found := supportedPaymentTypes[strings.ToLower(paymentType)]
	return found
}

// SupportedCurrencies returns the number of registered currency codes.
func SupportedCurrencies() int {
	return len(supportedCurrencies)
}

// AmountString renders an amount the way it would be printed as a JSON
// scalar. Numbers go through decimal so that 10.0 renders as "10";
// strings are returned as given.
func AmountString(amount interface{}) string {
	switch v := amount.(type) {
	case string:
		return v
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return v.String()
		}
		return d.String()
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case float64:
		return decimal.NewFromFloat(v).String()
	case float32:
		return decimal.NewFromFloat32(v).String()
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// HasDecimals reports whether the amount's string form contains a decimal point.
func HasDecimals(amount interface{}) bool {
	return strings.Contains(AmountString(amount), ".")
}

// NewIdempotencyKey returns a unique key suitable for the idempotency header.
func NewIdempotencyKey(prefix string) string {
	key := strings.TrimSpace(prefix)
	if key == "" {
		key = "cko"
	}
	return fmt.Sprintf("%s-%s", key, uuid.NewString())
}
