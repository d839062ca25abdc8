// Package tenant resolves the effective tenant identifier for a login.
//
// A caller-supplied tenant override always wins over the tenant stored on the
// user record; whitespace-only values are treated as absent at every step.
// Resolution never fails: when neither source yields a tenant the result is
// simply absent and downstream enrichment degrades gracefully.
package tenant
