package transport

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/vitwit/checkout/types"
)

// BuildQuery renders params as a percent-encoded query string. Keys keep
// the caller's order and entries with a nil value, including typed nil
// pointers, are skipped.
func BuildQuery(params types.Params) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if isNil(p.Value) {
			continue
		}
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(formatQueryValue(p.Value)))
	}
	return strings.Join(parts, "&")
}

// WithQuery appends the query string built from params to rawURL.
func WithQuery(rawURL string, params types.Params) string {
	q := BuildQuery(params)
	if q == "" {
		return rawURL
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + q
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func formatQueryValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case *time.Time:
		return val.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
