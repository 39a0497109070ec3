// Package rest implements a generic CRUD client for REST resource APIs.
//
// A Client is bound to one base endpoint and exposes five operations —
// Get, GetAll, Create, Update, Delete — that map a resource name and id
// onto wire requests. Cross-cutting concerns compose onto every request
// through three strategy slots:
//
//   - RequestSigner (optional): adds signing metadata, applied first.
//   - Authenticator (optional): attaches credentials, applied after the
//     signer and expected to leave signature data intact.
//   - ResponseParser (required): turns a raw response into a domain value.
//
// Failures surface through a three-kind taxonomy: *NotFoundError for
// id-scoped 4xx responses, *RequestFailedError for 5xx and connection
// failures, and *ParseError for undecodable bodies. Nothing is retried or
// swallowed internally.
//
//	client, err := rest.New("http://api.test", rest.JSONParser{})
//	client.UseAuthenticator(rest.BearerAuth("token"))
//	user, err := client.Get(ctx, "users", "7")
//
// Client configuration (body type, signer, authenticator) is plain shared
// state: set it up before issuing concurrent operations, not mid-flight.
package rest
