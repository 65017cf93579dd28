// Package api implements the HTTP client for the pi_system backend.
//
// Structure
//
//   - API            — interface over the four remote operations; consumed by
//     the repositories and faked in their tests.
//   - Client         — production implementation on net/http.
//   - Response       — raw round-trip outcome (status, body, headers).
//   - NewAuthTransport — http.RoundTripper that injects "Authorization:
//     Bearer <token>" on every non-public request, reading the token from
//     the session store. Public endpoints (login, register) are forwarded
//     unmodified; a missing token is not an error at this layer.
//
// The client performs exactly one round trip per call and never interprets
// response bodies; mapping outcomes into Resources is repository work.
package api
