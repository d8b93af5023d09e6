// Package transport performs API calls: it builds headers, serializes the
// body, normalizes the response into an envelope and classifies failures.
package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vitwit/checkout/logger"
	"github.com/vitwit/checkout/metrics"
	"github.com/vitwit/checkout/types"
)

const (
	headerAuthorization  = "Authorization"
	headerContentType    = "Content-Type"
	headerCacheControl   = "Cache-Control"
	headerUserAgent      = "User-Agent"
	headerIdempotencyKey = "Cko-Idempotency-Key"

	// HeaderRequestID and HeaderVersion are passed through to the envelope.
	HeaderRequestID = "Cko-Request-Id"
	HeaderVersion   = "Cko-Version"

	contentTypeJSON = "application/json"
	userAgentPrefix = "checkout-sdk-go/"
)

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Options configures a Transport.
type Options struct {
	Backend Backend
	// Version is embedded in the User-Agent header.
	Version string
	Logger  logger.Logger
	Metrics metrics.Recorder
}

// Transport sends RequestDescriptors through a Backend.
type Transport struct {
	config    *types.ClientConfig
	backend   Backend
	userAgent string
	logger    logger.Logger
	metrics   metrics.Recorder
}

// New creates a Transport reading credentials from config. A nil backend
// is replaced by an *http.Client using the configured timeout.
func New(config *types.ClientConfig, opts Options) *Transport {
	t := &Transport{
		config:    config,
		backend:   opts.Backend,
		userAgent: userAgentPrefix + opts.Version,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
	if t.backend == nil {
		t.backend = NewHTTPBackend(config.Timeout)
	}
	if t.logger == nil {
		t.logger = logger.NoopLogger{}
	}
	if t.metrics == nil {
		t.metrics = metrics.NoopRecorder{}
	}
	return t
}

// Config returns the client configuration shared with every call.
func (t *Transport) Config() *types.ClientConfig {
	return t.config
}

// UserAgent returns the User-Agent header value.
func (t *Transport) UserAgent() string {
	return t.userAgent
}

// Send performs the call. Every failure is returned as an *types.APIError.
func (t *Transport) Send(ctx context.Context, desc *types.RequestDescriptor) (*types.ResponseEnvelope, error) {
	start := time.Now()
	resp, err := t.roundTrip(ctx, desc)
	if err != nil {
		err = Classify(err)
	}
	t.observe(desc, resp, err, time.Since(start))
	return resp, err
}

func (t *Transport) roundTrip(ctx context.Context, desc *types.RequestDescriptor) (*types.ResponseEnvelope, error) {
	if desc == nil {
		return nil, types.NewValueError("request descriptor is required")
	}
	if _, ok := allowedMethods[desc.Method]; !ok {
		return nil, types.NewValueError("unsupported http method: " + desc.Method)
	}
	u, err := url.Parse(desc.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, types.NewValueError("request url must be absolute: " + desc.URL)
	}

	authorization, err := t.authorization(desc.Credential)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(desc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, desc.URL, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header = t.config.DefaultHeaders()
	req.Header.Set(headerContentType, contentType)
	req.Header.Set(headerCacheControl, "no-cache")
	req.Header.Set(headerUserAgent, t.userAgent)
	if authorization != "" {
		req.Header.Set(headerAuthorization, authorization)
	}
	if desc.IdempotencyKey != "" {
		req.Header.Set(headerIdempotencyKey, desc.IdempotencyKey)
	}
	for k, v := range desc.Headers {
		req.Header.Set(k, v)
	}

	httpResp, err := t.backend.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &Outcome{Timeout: true}
		}
		return nil, errors.Wrap(err, "failed to make request")
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &Outcome{Timeout: true}
		}
		return nil, errors.Wrap(err, "failed to read response body")
	}

	requestID := httpResp.Header.Get(HeaderRequestID)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &Outcome{
			Status:    httpResp.StatusCode,
			Body:      parseErrorBody(data),
			RequestID: requestID,
		}
	}

	envelope := &types.ResponseEnvelope{Status: httpResp.StatusCode}
	if desc.Raw {
		if data == nil {
			data = []byte{}
		}
		envelope.Body = data
	} else {
		parsed, err := parseJSON(data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode response")
		}
		envelope.Body = parsed
	}

	if requestID != "" {
		envelope.Headers = map[string]string{
			types.HeaderRequestID: requestID,
			types.HeaderVersion:   httpResp.Header.Get(HeaderVersion),
		}
	}

	return envelope, nil
}

func (t *Transport) authorization(cred types.Credential) (string, error) {
	switch cred {
	case types.CredentialNone:
		return "", nil
	case types.CredentialSecretKey:
		if t.config.SecretKey == "" {
			return "", types.NewValueError("secret key is required for this call")
		}
		return t.config.SecretKey, nil
	case types.CredentialPublicKey:
		if t.config.PublicKey == "" {
			return "", types.NewValueError("public key is required for this call")
		}
		return t.config.PublicKey, nil
	case types.CredentialAccessToken:
		token, _ := t.config.AccessToken()
		if token == "" {
			return "", types.NewValueError("access token is required for this call")
		}
		return "Bearer " + token, nil
	case types.CredentialClientCredentials:
		if t.config.ClientID == "" || t.config.ClientSecret == "" {
			return "", types.NewValueError("client id and client secret are required for this call")
		}
		creds := base64.StdEncoding.EncodeToString([]byte(t.config.ClientID + ":" + t.config.ClientSecret))
		return "Basic " + creds, nil
	default:
		return "", types.NewValueError("unknown credential")
	}
}

func encodeBody(desc *types.RequestDescriptor) (io.Reader, string, error) {
	if desc.Prebuilt != nil {
		return desc.Prebuilt.Reader, desc.Prebuilt.ContentType, nil
	}
	if desc.Body == nil {
		return nil, contentTypeJSON, nil
	}
	data, err := json.Marshal(desc.Body)
	if err != nil {
		return nil, "", types.NewValueError("failed to encode request body: " + err.Error())
	}
	return bytes.NewReader(data), contentTypeJSON, nil
}

// parseJSON decodes a document keeping numbers as json.Number. An empty
// body decodes to an empty object.
func parseJSON(data []byte) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// parseErrorBody never fails: a body that is not JSON is kept as text.
func parseErrorBody(data []byte) interface{} {
	v, err := parseJSON(data)
	if err != nil {
		return string(data)
	}
	return v
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (t *Transport) observe(desc *types.RequestDescriptor, resp *types.ResponseEnvelope, err error, elapsed time.Duration) {
	endpoint := ""
	method := ""
	if desc != nil {
		endpoint = desc.Endpoint
		method = desc.Method
	}

	fields := map[string]any{
		"endpoint":    endpoint,
		"method":      method,
		"duration_ms": elapsed.Milliseconds(),
	}
	status := "error"

	if err != nil {
		apiErr := types.AsAPIError(err)
		if apiErr != nil {
			fields["kind"] = string(apiErr.Kind)
			if apiErr.Status != 0 {
				status = strconv.Itoa(apiErr.Status)
				fields["status"] = apiErr.Status
			} else {
				status = string(apiErr.Kind)
			}
			if apiErr.RequestID != "" {
				fields["request_id"] = apiErr.RequestID
			}
		}
		fields["error"] = err.Error()
		t.logger.Warn("checkout request failed", logger.Redact(fields))
	} else {
		status = strconv.Itoa(resp.Status)
		fields["status"] = resp.Status
		if id := resp.Headers[types.HeaderRequestID]; id != "" {
			fields["request_id"] = id
		}
		t.logger.Debug("checkout request completed", logger.Redact(fields))
	}

	t.metrics.IncCounter("request", map[string]string{
		metrics.LabelEndpoint: endpoint,
		metrics.LabelStatus:   status,
	})
	t.metrics.ObserveLatency("request", elapsed, map[string]string{
		metrics.LabelEndpoint: endpoint,
	})
}
