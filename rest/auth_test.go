package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/restkit/httpclient"
)

func baseRequest() httpclient.Request {
	return httpclient.Request{
		Method:  "GET",
		URL:     "http://api.test/users/7",
		Headers: map[string]string{"Content-Type": "application/json"},
	}
}

func TestBearerAuth(t *testing.T) {
	orig := baseRequest()
	signed, err := BearerAuth("my-token").Authenticate(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := signed.Header("Authorization"); got != "Bearer my-token" {
		t.Errorf("Authorization = %q", got)
	}
	if orig.Header("Authorization") != "" {
		t.Error("original request must not be modified")
	}
}

func TestBasicAuth(t *testing.T) {
	signed, err := BasicAuth("alice", "s3cret").Authenticate(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// base64("alice:s3cret")
	if got := signed.Header("Authorization"); got != "Basic YWxpY2U6czNjcmV0" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestAPIKeyAuth_Header(t *testing.T) {
	signed, err := APIKeyAuth("key-123").Authenticate(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := signed.Header("X-API-Key"); got != "key-123" {
		t.Errorf("X-API-Key = %q", got)
	}

	signed, err = APIKeyAuthHeader("key-123", "X-Custom-Key").Authenticate(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := signed.Header("X-Custom-Key"); got != "key-123" {
		t.Errorf("X-Custom-Key = %q", got)
	}
}

func TestAPIKeyAuth_Query(t *testing.T) {
	orig := baseRequest()
	orig.URL = "http://api.test/users/7?page=2"

	signed, err := APIKeyAuthQuery("key-123", "api_key").Authenticate(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed.URL != "http://api.test/users/7?api_key=key-123&page=2" {
		t.Errorf("URL = %q", signed.URL)
	}
	if orig.URL != "http://api.test/users/7?page=2" {
		t.Error("original request must not be modified")
	}
}

func TestJWTAuth(t *testing.T) {
	secret := []byte("jwt-secret")
	auth := JWTAuth(JWTAuthConfig{
		Secret:   secret,
		Issuer:   "restkit-test",
		Subject:  "svc-account",
		Audience: "api.test",
		TTL:      30 * time.Second,
	})

	signed, err := auth.Authenticate(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header := signed.Header("Authorization")
	if len(header) < 8 || header[:7] != "Bearer " {
		t.Fatalf("expected bearer token, got %q", header)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(header[7:], &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected valid token")
	}
	if claims.Issuer != "restkit-test" || claims.Subject != "svc-account" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "api.test" {
		t.Errorf("audience = %v", claims.Audience)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 30*time.Second {
		t.Errorf("ttl = %v, want 30s", ttl)
	}
}
