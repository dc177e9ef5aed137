// Package testutil provides shared helpers for integration-style tests: a
// temp-dir HCL job harness, a thread-safe log buffer, and canned job files.
package testutil
