// Package directory provides the concrete collaborators behind the trigger
// pipeline: the Postgres tenant user store, the tenant-configurable
// group→role mapping store, and the platform group-sync client.
//
// # Overview
//
// Store implements the user-existence check and the provisioning write. The
// write uses an upsert (ON CONFLICT DO NOTHING) so two concurrent first
// logins for the same identity cannot create duplicates — the contract
// pkg/provision relies on.
//
// MappingStore resolves external group names to internal roles, preferring a
// tenant-specific mapping over the global one, with a TTL-bounded LRU cache
// in front of the lookup since the same groups repeat on every login.
//
// SyncClient pushes a user's external groups to the platform API. It is
// strictly best-effort: callers log failures and move on.
//
// # Related Packages
//
//   - pkg/provision: consumes Store and MappingStore through its interfaces
//   - pkg/trigger: invokes SyncClient per token-generation event
package directory
