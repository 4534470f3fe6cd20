// Package client contains the client side of the bookings service.
//
// GRPCClient manages the connection, keeps the session token in memory
// after Register or Login, attaches it as "authorization: Bearer <token>"
// to authenticated calls and turns gRPC statuses back into *common.Error
// values, so callers can match kinds with errors.Is.
//
// Transport failures (Unavailable, DeadlineExceeded) surface as
// ErrUnavailable. The token is never persisted.
package client
