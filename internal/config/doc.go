// Package config loads runtime configuration for passvault.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with --config or -c. Keys missing from the
//     file keep their previous value.
//  3. Environment variables with the PASSVAULT_ prefix.
//  4. Command-line flags that were set explicitly.
//
// # JSON schema
//
//	{
//	  "db_path": "manager.db",
//	  "log_level": "info",
//	  "log_pretty": true,
//	  "seal_key": "<64 hex chars>",
//	  "default_password_length": 16
//	}
//
// The seal key has no flag so it does not end up in shell history.
package config
