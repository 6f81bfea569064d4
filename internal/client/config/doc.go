// Package config loads runtime configuration for the blogview CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the post collection resource
//	-s string   sqlite DSN of the local client database
//	-m string   path of the session mirror file
//	-l int      simulated auth latency (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "storage_dsn": "blogview.db",
//	  "mirror_path": "session-mirror.json",
//	  "auth_latency": "1s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
