// Package config defines configuration structures for the snag CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (SNAG_ prefix)
//   - YAML configuration file
//
// Precedence is defaults < file < environment < flags.
//
// The timeout and retry settings default to off: a fetch blocks for as long
// as the server keeps the connection alive, and a failed fetch is final.
package config
