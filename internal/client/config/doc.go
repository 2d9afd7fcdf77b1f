// Package config loads runtime configuration for the AccountKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-s string   path of the local session database
//	-i int      online status check interval (seconds)
//	-t duration per-request timeout
//
// # JSON schema
//
// Durations are either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_db": "session.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
package config
