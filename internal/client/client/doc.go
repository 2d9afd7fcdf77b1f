// Package client talks to the AccountKeeper server on behalf of the CLI.
//
// GRPCClient keeps the current token pair in a session.Repository, attaches
// the access token to calls that need one and, when the server answers
// Unauthenticated, exchanges the refresh token once and retries. Status
// codes are mapped to the sentinel errors in errors.go so callers can use
// errors.Is.
//
// InitDatabase opens the local SQLite file and applies the embedded goose
// migrations.
package client
