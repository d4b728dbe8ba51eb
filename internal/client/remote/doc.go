// Package remote contains the client-side boundary to the hosted identity
// & data service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Service interface) covering
//     identity operations (sign-up, sign-in, sign-out, current identity,
//     metadata merge), verification code requests, listing queries, record
//     inserts, and blob uploads.
//  2. A concrete HTTP/JSON implementation (see HTTPService) that manages
//     bearer tokens, transparently refreshes an expired access token once,
//     and maps HTTP status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrRejected. Rejections
// carry the server's message verbatim so workflows can surface it to the
// user unchanged.
//
// Concurrency & Contexts
//
// All operations accept context.Context and honor cancellation/timeouts.
package remote
