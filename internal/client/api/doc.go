// Package api contains the client-side building blocks for talking to the
// item-store backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login/Register/Logout, token refresh, CurrentUser, the item CRUD
//     operations and a liveness probe.
//  2. A concrete REST/JSON implementation (see HTTPClient) that owns the
//     access/refresh token pair, attaches the access token as a bearer
//     credential, transparently refreshes an expired token once per call,
//     and persists auth state through a storage.TokenStore.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrSessionExpired, ErrNoRefreshToken.
// Other non-2xx responses surface as *RequestError carrying the message from
// the server's JSON error body.
//
// Logout is the one operation that cannot fail from the caller's point of
// view: the network call's outcome is ignored and tokens are always cleared.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use; the token pair is guarded by a
// mutex. Concurrent calls racing past an expired token each perform their
// own refresh (last write wins). All operations accept context.Context and
// honor cancellation/timeouts.
package api
