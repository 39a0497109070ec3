package rest

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/restkit/httpclient"
)

// Authenticator attaches credentials to an outbound request. It runs after
// the RequestSigner and must not strip signature data the signer added.
type Authenticator interface {
	Authenticate(req httpclient.Request) (httpclient.Request, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(req httpclient.Request) (httpclient.Request, error)

// Authenticate implements Authenticator.
func (f AuthenticatorFunc) Authenticate(req httpclient.Request) (httpclient.Request, error) {
	return f(req)
}

// BearerAuth creates an authenticator that sends a static bearer token.
func BearerAuth(token string) Authenticator {
	return AuthenticatorFunc(func(req httpclient.Request) (httpclient.Request, error) {
		return req.WithHeader("Authorization", "Bearer "+token), nil
	})
}

// BasicAuth creates an authenticator for HTTP Basic authentication.
func BasicAuth(username, password string) Authenticator {
	credentials := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return AuthenticatorFunc(func(req httpclient.Request) (httpclient.Request, error) {
		return req.WithHeader("Authorization", "Basic "+credentials), nil
	})
}

// APIKeyAuth creates an authenticator sending the key in the X-API-Key header.
func APIKeyAuth(key string) Authenticator {
	return APIKeyAuthHeader(key, "X-API-Key")
}

// APIKeyAuthHeader creates an API key authenticator with a custom header name.
func APIKeyAuthHeader(key, headerName string) Authenticator {
	return AuthenticatorFunc(func(req httpclient.Request) (httpclient.Request, error) {
		return req.WithHeader(headerName, key), nil
	})
}

// APIKeyAuthQuery creates an API key authenticator that appends the key as
// a query parameter.
func APIKeyAuthQuery(key, paramName string) Authenticator {
	return AuthenticatorFunc(func(req httpclient.Request) (httpclient.Request, error) {
		u, err := url.Parse(req.URL)
		if err != nil {
			return req, fmt.Errorf("rest: parse request url: %w", err)
		}
		q := u.Query()
		q.Set(paramName, key)
		u.RawQuery = q.Encode()

		out := req.Clone()
		out.URL = u.String()
		return out, nil
	})
}

// JWTAuthConfig configures the JWT authenticator.
type JWTAuthConfig struct {
	// Secret is the HS256 signing secret.
	Secret []byte
	// Issuer is the iss claim (optional).
	Issuer string
	// Subject is the sub claim (optional).
	Subject string
	// Audience is the aud claim (optional).
	Audience string
	// TTL is the token lifetime. Defaults to one minute.
	TTL time.Duration
}

// JWTAuth creates an authenticator that mints a short-lived HS256 token
// for every request and sends it as a bearer token.
func JWTAuth(cfg JWTAuthConfig) Authenticator {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return AuthenticatorFunc(func(req httpclient.Request) (httpclient.Request, error) {
		now := time.Now()
		claims := jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   cfg.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		}
		if cfg.Audience != "" {
			claims.Audience = jwt.ClaimStrings{cfg.Audience}
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(cfg.Secret)
		if err != nil {
			return req, fmt.Errorf("rest: sign jwt: %w", err)
		}
		return req.WithHeader("Authorization", "Bearer "+signed), nil
	})
}
