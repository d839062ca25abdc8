// Package provision implements just-in-time (JIT) user provisioning for
// first-time federated logins.
//
// # Overview
//
// When a federated user authenticates for the first time, the tenant user
// store has no record for them yet. The provisioner checks for an existing
// record, resolves an internal role from the user's external groups via the
// tenant-configurable group→role mapping, and creates the record with the
// detected IdP type. Existing users are an idempotent no-op.
//
// # Failure Isolation
//
// Provisioning runs inside a login that must never fail. Every collaborator
// error (existence check, mapping lookup, provisioning write) is logged with
// tenant, user, and operation context and swallowed; the next login retries
// the same sequence, so the store converges eventually.
//
// The existence check and the create are not atomic: two concurrent first
// logins can both observe "does not exist". The user store honors upsert
// semantics so the duplicate create is a no-op.
//
// # Related Packages
//
//   - pkg/directory: concrete user store, mapping store, and group sync
//   - pkg/trigger: invokes the provisioner per token-generation event
package provision
