// Package config provides trigger configuration management from environment variables.
//
// # Overview
//
// This package loads and validates configuration from environment variables
// with sensible defaults for all settings. Lambda deployments set these
// through function environment variables; the local trigger server reads
// them from the process environment.
//
// # Configuration Structure
//
// Server settings (local trigger server only):
//
//	HOOKS_HOST="0.0.0.0"
//	HOOKS_PORT="8080"
//	HOOKS_READ_TIMEOUT="15s"
//	HOOKS_WRITE_TIMEOUT="15s"
//
// Directory settings:
//
//	HOOKS_POSTGRES_URL="postgres://localhost/directory"
//	HOOKS_MAPPING_CACHE_SIZE="1024"
//	HOOKS_MAPPING_CACHE_TTL="5m"
//
// Platform settings:
//
//	HOOKS_GROUP_SYNC_URL="https://platform.internal"
//	HOOKS_GROUP_SYNC_TIMEOUT="3s"
//
// Provisioning settings:
//
//	HOOKS_PROVISIONING_ENABLED="true"
//
// Observability settings:
//
//	HOOKS_LOG_LEVEL="info"  # debug, info, warn, error
//	HOOKS_METRICS_ENABLED="true"
package config
