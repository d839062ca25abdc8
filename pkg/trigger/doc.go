// Package trigger implements the Cognito trigger handlers.
//
// # Overview
//
// Two handlers live here. PreTokenHandler runs on token generation: it
// resolves the effective tenant, extracts and normalizes group claims,
// classifies the identity provider, drives best-effort group sync and JIT
// provisioning, and installs the claim overrides on the response. The
// PostConfirmationHandler stamps a tenant identifier onto newly confirmed
// users.
//
// Both handlers share one contract: they always return the event. A failing
// collaborator, a panic, or a malformed payload degrades the enrichment, it
// never blocks the authentication flow in progress.
package trigger
