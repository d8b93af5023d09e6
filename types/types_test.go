package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_BaseURL(t *testing.T) {
	cfg := &ClientConfig{Environment: EnvironmentSandbox}
	assert.Equal(t, SandboxAPIHost, cfg.BaseURL())
	assert.True(t, cfg.IsSandbox())

	cfg = &ClientConfig{Environment: EnvironmentLive}
	assert.Equal(t, LiveAPIHost, cfg.BaseURL())
	assert.False(t, cfg.IsSandbox())

	cfg.Host = "http://127.0.0.1:9000"
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL())
}

func TestClientConfig_AccessToken(t *testing.T) {
	cfg := &ClientConfig{}
	now := time.Now()
	assert.False(t, cfg.AccessTokenValid(now))

	cfg.SetAccessToken("tok", now.Add(time.Hour))
	token, expiry := cfg.AccessToken()
	assert.Equal(t, "tok", token)
	assert.True(t, expiry.After(now))
	assert.True(t, cfg.AccessTokenValid(now))
	assert.False(t, cfg.AccessTokenValid(now.Add(2*time.Hour)))

	// last writer wins
	cfg.SetAccessToken("tok2", time.Time{})
	token, _ = cfg.AccessToken()
	assert.Equal(t, "tok2", token)
	assert.True(t, cfg.AccessTokenValid(now.Add(100*time.Hour)))
}

func TestResponseEnvelope_Decode(t *testing.T) {
	env := &ResponseEnvelope{
		Status: 200,
		Body:   map[string]interface{}{"id": "pay_123", "amount": float64(100)},
	}
	var out struct {
		ID     string `json:"id"`
		Amount int    `json:"amount"`
	}
	require.NoError(t, env.Decode(&out))
	assert.Equal(t, "pay_123", out.ID)
	assert.Equal(t, 100, out.Amount)
	assert.Equal(t, "pay_123", env.Payload()["id"])

	raw := &ResponseEnvelope{Status: 200, Body: []byte("a,b\n1,2\n")}
	assert.Error(t, raw.Decode(&out))
	assert.Equal(t, []byte("a,b\n1,2\n"), raw.Bytes())
	assert.Nil(t, raw.Payload())
}

func TestAPIError_Helpers(t *testing.T) {
	apiErr := &APIError{
		Kind:    KindValidation,
		Status:  422,
		Message: "request invalid",
		Body: map[string]interface{}{
			"error_type":  "request_invalid",
			"error_codes": []interface{}{"amount_required", "currency_invalid"},
		},
	}
	wrapped := fmt.Errorf("create payment: %w", apiErr)

	assert.True(t, IsKind(wrapped, KindValidation))
	assert.False(t, IsKind(wrapped, KindNotFound))
	assert.Same(t, apiErr, AsAPIError(wrapped))
	assert.Equal(t, "request_invalid", apiErr.ErrorType())
	assert.Equal(t, []string{"amount_required", "currency_invalid"}, apiErr.ErrorCodes())
	assert.Equal(t, "validation_error (422): request invalid", apiErr.Error())

	valueErr := NewValueError("currency value is not valid")
	assert.Equal(t, "value_error: currency value is not valid", valueErr.Error())
	assert.Nil(t, AsAPIError(nil))
}

func TestParams_Add(t *testing.T) {
	p := Params{}.Add("limit", 10).Add("skip", nil)
	require.Len(t, p, 2)
	assert.Equal(t, "limit", p[0].Key)
	assert.Nil(t, p[1].Value)
}
