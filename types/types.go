package types

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Credential selects which key authenticates a request.
type Credential int

const (
	// CredentialNone sends no Authorization header.
	CredentialNone Credential = iota
	// CredentialSecretKey authenticates with the account secret key.
	CredentialSecretKey
	// CredentialPublicKey authenticates with the public key (tokenization).
	CredentialPublicKey
	// CredentialAccessToken authenticates with a previously exchanged bearer token.
	CredentialAccessToken
	// CredentialClientCredentials authenticates the access-token exchange itself.
	CredentialClientCredentials
)

func (c Credential) String() string {
	switch c {
	case CredentialSecretKey:
		return "secret_key"
	case CredentialPublicKey:
		return "public_key"
	case CredentialAccessToken:
		return "access_token"
	case CredentialClientCredentials:
		return "client_credentials"
	default:
		return "none"
	}
}

// Payload is a JSON object sent to or received from the API.
// Discriminator inference and validation operate on it directly.
type Payload map[string]interface{}

// Object returns the nested object stored under key, or nil.
func (p Payload) Object(key string) Payload {
	switch v := p[key].(type) {
	case Payload:
		return v
	case map[string]interface{}:
		return Payload(v)
	default:
		return nil
	}
}

// Has reports whether key is present with a non-nil value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Param is one query-string entry.
type Param struct {
	Key   string
	Value interface{}
}

// Params is an ordered list of query parameters. Entries with a nil
// value are skipped when the query string is built.
type Params []Param

// Add appends a parameter and returns the list for chaining.
func (p Params) Add(key string, value interface{}) Params {
	return append(p, Param{Key: key, Value: value})
}

// PrebuiltBody is a request body serialized by a collaborator (multipart
// forms, url-encoded forms). The transport sends it as-is.
type PrebuiltBody struct {
	Reader      io.Reader
	ContentType string
}

// RequestDescriptor describes one API call.
type RequestDescriptor struct {
	// Endpoint names the call in logs and metrics.
	Endpoint       string
	Method         string
	URL            string
	Credential     Credential
	Body           interface{}
	Prebuilt       *PrebuiltBody
	IdempotencyKey string
	Headers        map[string]string

	// Raw marks CSV/file downloads: the body is returned unparsed.
	Raw bool
}

// Response header passthrough keys.
const (
	HeaderRequestID = "request-id"
	HeaderVersion   = "version"
)

// ResponseEnvelope is the normalized result of a successful call.
type ResponseEnvelope struct {
	Status int `json:"status"`

	// Body holds the decoded JSON document, or []byte for raw calls.
	Body interface{} `json:"body"`

	// Headers is nil unless the API returned a request id.
	Headers map[string]string `json:"headers,omitempty"`
}

// Payload returns the body as a JSON object, or nil when it is not one.
func (r *ResponseEnvelope) Payload() Payload {
	if r == nil {
		return nil
	}
	switch v := r.Body.(type) {
	case Payload:
		return v
	case map[string]interface{}:
		return Payload(v)
	default:
		return nil
	}
}

// Bytes returns the raw body of a file download.
func (r *ResponseEnvelope) Bytes() []byte {
	if r == nil {
		return nil
	}
	b, _ := r.Body.([]byte)
	return b
}

// Decode re-decodes the JSON body into v.
func (r *ResponseEnvelope) Decode(v interface{}) error {
	if r == nil {
		return fmt.Errorf("nil response")
	}
	if _, raw := r.Body.([]byte); raw {
		return fmt.Errorf("response body is raw bytes, not JSON")
	}
	data, err := json.Marshal(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// ClientConfig holds the credentials and transport settings shared by
// every call. It is read-only after construction except for the access
// token, which is written by the access-token exchange. Concurrent
// refreshes are not coordinated; the last writer wins.
type ClientConfig struct {
	Environment  Environment       `json:"environment" envconfig:"ENVIRONMENT" default:"sandbox" validate:"required,oneof=sandbox live"`
	Host         string            `json:"host,omitempty" envconfig:"HOST" validate:"omitempty,url"`
	SecretKey    string            `json:"secretKey,omitempty" envconfig:"SECRET_KEY"`
	PublicKey    string            `json:"publicKey,omitempty" envconfig:"PUBLIC_KEY"`
	ClientID     string            `json:"clientId,omitempty" envconfig:"CLIENT_ID"`
	ClientSecret string            `json:"clientSecret,omitempty" envconfig:"CLIENT_SECRET" validate:"required_with=ClientID"`
	Timeout      time.Duration     `json:"timeout,omitempty" envconfig:"TIMEOUT" default:"30s" validate:"gte=0"`
	Headers      map[string]string `json:"headers,omitempty" envconfig:"HEADERS"`
	LogLevel     string            `json:"logLevel,omitempty" envconfig:"LOG_LEVEL" default:"info" validate:"omitempty,oneof=debug info warn error"`
	// EnableMetrics registers Prometheus collectors on the default registry.
	EnableMetrics bool `json:"enableMetrics,omitempty" envconfig:"ENABLE_METRICS"`

	mu          sync.RWMutex
	accessToken string
	tokenExpiry time.Time
}

// UnmarshalJSON decodes a config document. The timeout may be given as
// "timeoutMs" or as "timeout"; numbers are milliseconds and strings are
// Go durations such as "30s".
func (c *ClientConfig) UnmarshalJSON(data []byte) error {
	type plain ClientConfig
	aux := struct {
		*plain
		Timeout   json.RawMessage `json:"timeout,omitempty"`
		TimeoutMs json.RawMessage `json:"timeoutMs,omitempty"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	for _, raw := range []json.RawMessage{aux.Timeout, aux.TimeoutMs} {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		d, err := parseTimeout(raw)
		if err != nil {
			return err
		}
		c.Timeout = d
	}
	return nil
}

func parseTimeout(raw json.RawMessage) (time.Duration, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
		}
		return d, nil
	}

	var ms json.Number
	if err := json.Unmarshal(raw, &ms); err != nil {
		return 0, fmt.Errorf("invalid timeout %s", raw)
	}
	f, err := ms.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %s: %w", raw, err)
	}
	return time.Duration(f * float64(time.Millisecond)), nil
}

// BaseURL returns the configured host, falling back to the environment's API host.
func (c *ClientConfig) BaseURL() string {
	if c.Host != "" {
		return c.Host
	}
	return c.Environment.APIHost()
}

// IsSandbox reports whether calls target the sandbox environment.
func (c *ClientConfig) IsSandbox() bool {
	return c.Environment != EnvironmentLive
}

// SetAccessToken stores the result of an access-token exchange.
func (c *ClientConfig) SetAccessToken(token string, expiresAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
	c.tokenExpiry = expiresAt
}

// AccessToken returns the current bearer token and its expiry.
func (c *ClientConfig) AccessToken() (string, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken, c.tokenExpiry
}

// AccessTokenValid reports whether a token is set and not yet expired at now.
func (c *ClientConfig) AccessTokenValid(now time.Time) bool {
	token, expiry := c.AccessToken()
	if token == "" {
		return false
	}
	return expiry.IsZero() || now.Before(expiry)
}

// DefaultHeaders returns a copy of the configured default headers.
func (c *ClientConfig) DefaultHeaders() http.Header {
	h := make(http.Header, len(c.Headers))
	for k, v := range c.Headers {
		h.Set(k, v)
	}
	return h
}
