// Package cognito wraps the Cognito admin API calls the triggers need.
//
// # Overview
//
// The post-confirmation trigger stamps a tenant identifier onto the user
// record via AdminUpdateUserAttributes. The package exposes a small client
// around that one call so handlers can depend on an interface and tests can
// substitute a fake.
package cognito
