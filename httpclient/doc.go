// Package httpclient provides the wire transport used by the rest package.
//
// The Transport interface is deliberately narrow: it sends one fully-built
// request and returns one fully-buffered response. Status codes are never
// interpreted here; that is the caller's policy. Only connection-level
// failures (refused, DNS, timeout) surface as errors.
//
//	adapter, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
//	resp, err := adapter.Send(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/users/123",
//	})
package httpclient
