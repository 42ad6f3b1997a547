// Package logging wraps Zap with context-aware methods for the lint CLI.
//
// Logs go to stderr; stdout belongs to the tools under orchestration.
package logging
