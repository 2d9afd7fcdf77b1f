// Package cli provides the interactive AccountKeeper command-line client.
//
// It wires configuration, the local session database and the gRPC client
// into a REPL. A background watcher pings the server and shows online or
// offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
