package resources

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/vitwit/checkout/transport"
	"github.com/vitwit/checkout/types"
)

const grantClientCredentials = "client_credentials"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Access exchanges client credentials for a bearer token.
type Access struct {
	c   *Caller
	now func() time.Time
}

func NewAccess(c *Caller) *Access {
	return &Access{c: c, now: time.Now}
}

// RequestToken performs the client-credentials exchange and stores the
// resulting token on the client configuration, where every call using
// the access-token credential reads it.
func (a *Access) RequestToken(ctx context.Context, scopes ...string) (*types.ResponseEnvelope, error) {
	form := url.Values{}
	form.Set("grant_type", grantClientCredentials)
	if len(scopes) > 0 {
		form.Set("scope", strings.Join(scopes, " "))
	}

	resp, err := a.c.Call(ctx, "access.token", Request{Prebuilt: transport.BuildForm(form)})
	if err != nil {
		return nil, err
	}

	var token tokenResponse
	if err := resp.Decode(&token); err != nil {
		return nil, types.NewValueError("invalid access token response: " + err.Error())
	}
	if token.AccessToken == "" {
		return nil, types.NewValueError("access token response did not include a token")
	}

	var expiresAt time.Time
	if token.ExpiresIn > 0 {
		expiresAt = a.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}
	a.c.config.SetAccessToken(token.AccessToken, expiresAt)

	return resp, nil
}
