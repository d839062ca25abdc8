// Package claims normalizes identity claims arriving from heterogeneous
// external identity providers.
//
// # Overview
//
// Federated logins land with semi-structured user attributes: group
// memberships may be JSON arrays or comma lists, the originating IdP is only
// recognizable from claim shape, and custom tenant attributes may be missing
// entirely. This package turns those raw attribute maps into normalized
// values the token-generation pipeline can act on:
//
//   - ExtractGroups: deduplicated, order-preserving group list from the first
//     populated group attribute
//   - DetectIdp: provider classification from identity links or attribute
//     prefixes, defaulting to OIDC
//   - BuildOverride: the claim map injected into issued tokens
//
// All parsing is fail-soft: malformed input yields empty or default results,
// never an error, because claim enrichment must not block a login.
//
// # Related Packages
//
//   - pkg/trigger: drives extraction and installs the override
//   - pkg/provision: consumes the group list and IdP type
package claims
