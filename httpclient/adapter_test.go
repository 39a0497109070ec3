package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAdapter_Send_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/users/123" {
			t.Errorf("expected /users/123, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Alice"}`))
	}))
	defer srv.Close()

	a, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := a.Send(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL + "/users/123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !resp.IsSuccess() {
		t.Error("expected IsSuccess=true")
	}
	if got := resp.Header("content-type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}
}

func TestAdapter_Send_BodyAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
		if got := r.Header.Get("X-Default"); got != "default" {
			t.Errorf("expected default header, got %q", got)
		}
		if got := r.Header.Get("X-Both"); got != "request" {
			t.Errorf("request header should win over default, got %q", got)
		}
		w.WriteHeader(201)
	}))
	defer srv.Close()

	a, err := New(Config{
		Headers: map[string]string{"X-Default": "default", "X-Both": "default"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := a.Send(context.Background(), Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/users",
		Headers: map[string]string{
			"Content-Type": "application/json",
			"X-Both":       "request",
		},
		Body: []byte(`{"name":"Bob"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Errorf("expected 201, got %d", resp.StatusCode)
	}
}

func TestAdapter_Send_ErrorStatusesAreNotErrors(t *testing.T) {
	for _, code := range []int{400, 404, 409, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(`{"error":"test"}`))
		}))

		a, err := New(Config{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := a.Send(context.Background(), Request{Method: http.MethodGet, URL: srv.URL})
		if err != nil {
			t.Errorf("HTTP %d should not be a transport error, got %v", code, err)
		}
		if resp == nil || resp.StatusCode != code {
			t.Errorf("expected response with status %d, got %+v", code, resp)
		}
		srv.Close()
	}
}

func TestAdapter_Send_ConnectionError(t *testing.T) {
	a, err := New(Config{Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = a.Send(context.Background(), Request{
		Method: http.MethodGet,
		URL:    "http://127.0.0.1:1/nothing-listens-here",
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !IsConnection(err) {
		t.Errorf("expected connection error classification, got %v", err)
	}
}

func TestAdapter_Send_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
	}))
	defer srv.Close()

	a, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = a.Send(ctx, Request{Method: http.MethodGet, URL: srv.URL})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !IsTimeout(err) {
		t.Errorf("expected timeout classification, got %v", err)
	}
}

func TestAdapter_Send_BadURL(t *testing.T) {
	a, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = a.Send(context.Background(), Request{Method: "bad method", URL: "://"})
	if err == nil {
		t.Fatal("expected request-build error")
	}
}

func TestAdapter_Unwrap(t *testing.T) {
	a, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Unwrap() == nil {
		t.Error("Unwrap should return non-nil http.Client")
	}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("unexpected error from Close: %v", err)
	}
}
