// Package observability provides structured logging, Prometheus metrics, and
// panic recovery for the trigger handlers.
//
// # Overview
//
// Trigger handlers must never fail the login or confirmation in progress, so
// every degraded path is observable only through logs and metrics. This
// package carries both: a slog-based JSON logger with field chaining, and a
// metrics set covering invocations, JIT provisioning, group sync, mapping
// cache behavior, and administrative attribute writes.
//
// # Usage Example
//
// Logger with invocation correlation:
//
//	log := observability.NewLogger(observability.InfoLevel, os.Stdout)
//	log = observability.NewInvocationLogger(log).WithField("user", userName)
//	log.WithField("tenant", tenantID).Info("installed claims override")
//
// Panic boundary in a handler:
//
//	defer observability.RecoverPanic(log, "pre-token generation")
//
// # Related Packages
//
//   - pkg/trigger: wraps each invocation in the panic boundary
//   - pkg/provision: records provisioning outcomes
package observability
