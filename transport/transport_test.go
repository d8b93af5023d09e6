package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/checkout/types"
)

type recordingMetrics struct {
	mu       sync.Mutex
	counters []map[string]string
	latency  int
}

func (r *recordingMetrics) IncCounter(_ string, labels map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters = append(r.counters, labels)
}

func (r *recordingMetrics) ObserveLatency(string, time.Duration, map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latency++
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
	last map[string]any
}

func (l *recordingLogger) record(msg string, fields map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
	l.last = fields
}

func (l *recordingLogger) Debug(msg string, fields map[string]any) { l.record(msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]any)  { l.record(msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]any)  { l.record(msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]any) { l.record(msg, fields) }

func testConfig() *types.ClientConfig {
	return &types.ClientConfig{
		Environment: types.EnvironmentSandbox,
		SecretKey:   "sk_test_secret",
		PublicKey:   "pk_test_public",
		Timeout:     2 * time.Second,
	}
}

func newTestTransport(t *testing.T, handler http.HandlerFunc) (*Transport, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := testConfig()
	cfg.Host = srv.URL
	return New(cfg, Options{Backend: srv.Client(), Version: "1.2.3"}), srv
}

func TestSend_SuccessWithHeaders(t *testing.T) {
	var got *http.Request
	var gotBody map[string]interface{}
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set(HeaderRequestID, "req_123")
		w.Header().Set(HeaderVersion, "2.0")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"pay_1","amount":2500,"approved":true}`))
	})

	resp, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Endpoint:       "payments.request",
		Method:         http.MethodPost,
		URL:            srv.URL + "/payments",
		Credential:     types.CredentialSecretKey,
		Body:           types.Payload{"amount": 2500, "currency": "USD"},
		IdempotencyKey: "idem-1",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.Status)
	body := resp.Payload()
	assert.Equal(t, "pay_1", body["id"])
	assert.Equal(t, json.Number("2500"), body["amount"])
	assert.Equal(t, map[string]string{"request-id": "req_123", "version": "2.0"}, resp.Headers)

	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache", got.Header.Get("Cache-Control"))
	assert.Equal(t, "checkout-sdk-go/1.2.3", got.Header.Get("User-Agent"))
	assert.Equal(t, "sk_test_secret", got.Header.Get("Authorization"))
	assert.Equal(t, "idem-1", got.Header.Get("Cko-Idempotency-Key"))
	assert.Equal(t, "USD", gotBody["currency"])
}

func TestSend_EmptyBodyIsEmptyObject(t *testing.T) {
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodDelete,
		URL:        srv.URL + "/customers/cus_1",
		Credential: types.CredentialSecretKey,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	assert.Equal(t, map[string]interface{}{}, resp.Body)
	assert.Nil(t, resp.Headers, "no request id means no headers field")
}

func TestSend_RawResponse(t *testing.T) {
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,amount\npay_1,100\n"))
	})

	resp, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodGet,
		URL:        srv.URL + "/reporting/payments/download",
		Credential: types.CredentialSecretKey,
		Raw:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("id,amount\npay_1,100\n"), resp.Bytes())
}

func TestSend_CredentialSelection(t *testing.T) {
	var auth string
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})
	tr.Config().ClientID = "ack_client"
	tr.Config().ClientSecret = "shh"

	send := func(c types.Credential) error {
		_, err := tr.Send(context.Background(), &types.RequestDescriptor{Method: http.MethodGet, URL: srv.URL, Credential: c})
		return err
	}

	require.NoError(t, send(types.CredentialPublicKey))
	assert.Equal(t, "pk_test_public", auth)

	err := send(types.CredentialAccessToken)
	require.True(t, types.IsKind(err, types.KindValue), "no token yet")

	tr.Config().SetAccessToken("tok_abc", time.Now().Add(time.Hour))
	require.NoError(t, send(types.CredentialAccessToken))
	assert.Equal(t, "Bearer tok_abc", auth)

	require.NoError(t, send(types.CredentialClientCredentials))
	assert.Equal(t, "Basic YWNrX2NsaWVudDpzaGg=", auth)

	require.NoError(t, send(types.CredentialNone))
	assert.Empty(t, auth)
}

func TestSend_DefaultAndExtraHeaders(t *testing.T) {
	var got http.Header
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header
		_, _ = w.Write([]byte(`{}`))
	})
	tr.Config().Headers = map[string]string{"X-Partner": "acme"}

	_, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodGet,
		URL:        srv.URL + "/sessions/sid_1",
		Credential: types.CredentialSecretKey,
		Headers:    map[string]string{"channel": "browser"},
	})
	require.NoError(t, err)
	assert.Equal(t, "acme", got.Get("X-Partner"))
	assert.Equal(t, "browser", got.Get("channel"))
}

func TestSend_MultipartBodyIsNotReserialized(t *testing.T) {
	var purpose, fileContent string
	tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if !assert.NoError(t, err) || !assert.Equal(t, "multipart/form-data", mediaType) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			if !assert.NoError(t, err) {
				return
			}
			data, _ := io.ReadAll(part)
			if part.FormName() == "purpose" {
				purpose = string(data)
			} else {
				fileContent = string(data)
			}
		}
		_, _ = w.Write([]byte(`{"id":"file_1"}`))
	})

	body, err := BuildMultipart(types.Params{}.Add("purpose", "dispute_evidence"), FormFile{
		Field:       "file",
		Filename:    "evidence.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("proof"),
	})
	require.NoError(t, err)

	resp, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodPost,
		URL:        srv.URL + "/files",
		Credential: types.CredentialSecretKey,
		Prebuilt:   body,
	})
	require.NoError(t, err)
	assert.Equal(t, "file_1", resp.Payload()["id"])
	assert.Equal(t, "dispute_evidence", purpose)
	assert.Equal(t, "proof", fileContent)
}

func TestSend_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   types.ErrorKind
		want   interface{}
	}{
		{http.StatusUnauthorized, ``, types.KindAuthentication, map[string]interface{}{}},
		{http.StatusForbidden, `{}`, types.KindActionNotAllowed, map[string]interface{}{}},
		{http.StatusNotFound, ``, types.KindNotFound, map[string]interface{}{}},
		{http.StatusUnprocessableEntity, `{"error_type": "request_invalid"}`, types.KindValidation, map[string]interface{}{"error_type": "request_invalid"}},
		{http.StatusTooManyRequests, `{"error_type": "too_many_requests"}`, types.KindTooManyRequests, map[string]interface{}{"error_type": "too_many_requests"}},
		{http.StatusBadGateway, `<html>bad gateway</html>`, types.KindBadGateway, "<html>bad gateway</html>"},
		{http.StatusInternalServerError, `{"error_type":"server_error"}`, types.KindAPI, map[string]interface{}{"error_type": "server_error"}},
		{http.StatusConflict, ``, types.KindAPI, map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			tr, srv := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set(HeaderRequestID, "req_err")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := tr.Send(context.Background(), &types.RequestDescriptor{
				Method:     http.MethodPost,
				URL:        srv.URL + "/payments",
				Credential: types.CredentialSecretKey,
				Body:       types.Payload{},
			})
			require.Nil(t, resp)
			apiErr := types.AsAPIError(err)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Body)
			assert.Equal(t, "req_err", apiErr.RequestID)
		})
	}
}

func TestSend_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := testConfig()
	tr := New(cfg, Options{Backend: NewHTTPBackend(50 * time.Millisecond)})

	_, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodGet,
		URL:        srv.URL + "/payments/pay_1",
		Credential: types.CredentialSecretKey,
	})
	apiErr := types.AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, types.KindTimeout, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
	assert.Nil(t, apiErr.Body)
}

func TestSend_RejectsInvalidDescriptorWithoutNetwork(t *testing.T) {
	calls := 0
	backend := BackendFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("unreachable")
	})
	tr := New(testConfig(), Options{Backend: backend})

	for _, desc := range []*types.RequestDescriptor{
		nil,
		{Method: "TRACE", URL: "https://api.sandbox.checkout.com/payments", Credential: types.CredentialSecretKey},
		{Method: http.MethodGet, URL: "/payments", Credential: types.CredentialSecretKey},
		{Method: http.MethodGet, URL: "::not a url", Credential: types.CredentialSecretKey},
	} {
		_, err := tr.Send(context.Background(), desc)
		assert.True(t, types.IsKind(err, types.KindValue), "%v", err)
	}

	tr.Config().SecretKey = ""
	_, err := tr.Send(context.Background(), &types.RequestDescriptor{Method: http.MethodGet, URL: "https://api.sandbox.checkout.com/x", Credential: types.CredentialSecretKey})
	assert.True(t, types.IsKind(err, types.KindValue))

	assert.Zero(t, calls)
}

func TestSend_ConnectionFailureIsGenericAPIError(t *testing.T) {
	cause := errors.New("connection refused")
	tr := New(testConfig(), Options{Backend: BackendFunc(func(*http.Request) (*http.Response, error) {
		return nil, cause
	})})

	_, err := tr.Send(context.Background(), &types.RequestDescriptor{
		Method:     http.MethodGet,
		URL:        "https://api.sandbox.checkout.com/payments/pay_1",
		Credential: types.CredentialSecretKey,
	})
	apiErr := types.AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, types.KindAPI, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
	assert.ErrorIs(t, err, cause)
}

func TestSend_ObservesLogsAndMetrics(t *testing.T) {
	rec := &recordingMetrics{}
	log := &recordingLogger{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := New(testConfig(), Options{Backend: srv.Client(), Logger: log, Metrics: rec})

	_, err := tr.Send(context.Background(), &types.RequestDescriptor{Endpoint: "payments.get", Method: http.MethodGet, URL: srv.URL + "/payments/pay_1", Credential: types.CredentialSecretKey})
	require.NoError(t, err)
	_, err = tr.Send(context.Background(), &types.RequestDescriptor{Endpoint: "payments.get", Method: http.MethodGet, URL: srv.URL + "/payments/missing", Credential: types.CredentialSecretKey})
	require.Error(t, err)

	require.Len(t, rec.counters, 2)
	assert.Equal(t, map[string]string{"endpoint": "payments.get", "status": "200"}, rec.counters[0])
	assert.Equal(t, map[string]string{"endpoint": "payments.get", "status": "404"}, rec.counters[1])
	assert.Equal(t, 2, rec.latency)

	require.Len(t, log.msgs, 2)
	assert.Equal(t, "checkout request failed", log.msgs[1])
	assert.Equal(t, "not_found", log.last["kind"])
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(nil))

	valueErr := types.NewValueError("currency value is not valid")
	assert.Same(t, valueErr, Classify(valueErr))

	timeout := types.AsAPIError(Classify(&Outcome{Timeout: true, Status: 500}))
	require.NotNil(t, timeout)
	assert.Equal(t, types.KindTimeout, timeout.Kind)
	assert.Zero(t, timeout.Status)

	noBody := types.AsAPIError(Classify(&Outcome{Status: http.StatusTooManyRequests}))
	assert.Equal(t, types.KindTooManyRequests, noBody.Kind)
	assert.Equal(t, map[string]interface{}{}, noBody.Body)

	unknown := types.AsAPIError(Classify(&Outcome{Status: 418, Body: map[string]interface{}{"x": "y"}}))
	assert.Equal(t, types.KindAPI, unknown.Kind)
	assert.Equal(t, 418, unknown.Status)
	assert.Equal(t, map[string]interface{}{"x": "y"}, unknown.Body)
}

func TestBuildQuery(t *testing.T) {
	from := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	params := types.Params{}.
		Add("limit", 10).
		Add("skip", nil).
		Add("reference", "ORD 1&2").
		Add("from", from).
		Add("statuses", "Pending,Authorized")

	assert.Equal(t, "limit=10&reference=ORD+1%262&from=2024-01-02T03%3A04%3A05Z&statuses=Pending%2CAuthorized", BuildQuery(params))
	assert.Equal(t, "", BuildQuery(nil))

	assert.Equal(t, "https://h/disputes?limit=10", WithQuery("https://h/disputes", types.Params{}.Add("limit", 10)))
	assert.Equal(t, "https://h/d?a=1&b=2", WithQuery("https://h/d?a=1", types.Params{}.Add("b", 2)))
	assert.Equal(t, "https://h/d", WithQuery("https://h/d", types.Params{}.Add("b", nil)))

	var noTime *time.Time
	assert.Equal(t, "limit=5", BuildQuery(types.Params{}.
		Add("from", noTime).
		Add("cursor", (*url.URL)(nil)).
		Add("to", (*string)(nil)).
		Add("limit", 5)))
	assert.Equal(t, "from=2024-01-02T03%3A04%3A05Z", BuildQuery(types.Params{}.Add("from", &from)))
}

func TestBuildForm(t *testing.T) {
	body := BuildForm(url.Values{"grant_type": {"client_credentials"}})
	data, err := io.ReadAll(body.Reader)
	require.NoError(t, err)
	assert.Equal(t, "grant_type=client_credentials", string(data))
	assert.Equal(t, "application/x-www-form-urlencoded", body.ContentType)

	_, err = BuildMultipart(nil, FormFile{Field: "file", Filename: "a"})
	assert.True(t, types.IsKind(err, types.KindValue))
}
