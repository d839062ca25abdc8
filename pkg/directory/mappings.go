package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/learning-platform/authhooks/pkg/observability"
)

const (
	// DefaultMappingCacheSize bounds cached (tenant, group) entries
	DefaultMappingCacheSize = 1024
	// DefaultMappingCacheTTL bounds staleness after a mapping change
	DefaultMappingCacheTTL = 5 * time.Minute
)

// MappingStore resolves external group names to internal roles from the
// group_role_mappings table, tenant-specific rows winning over global ones
type MappingStore struct {
	db      *sql.DB
	cache   *lru.LRU[string, string]
	metrics *observability.Metrics
}

// NewMappingStore creates a mapping store with a TTL LRU cache in front of
// lookups. Zero size or TTL fall back to the defaults.
func NewMappingStore(db *sql.DB, cacheSize int, ttl time.Duration, metrics *observability.Metrics) *MappingStore {
	if cacheSize <= 0 {
		cacheSize = DefaultMappingCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultMappingCacheTTL
	}
	return &MappingStore{
		db:      db,
		cache:   lru.NewLRU[string, string](cacheSize, nil, ttl),
		metrics: metrics,
	}
}

// ResolveGroupToRole returns the role mapped to the group for the tenant, or
// "" when no mapping exists. Missing mappings are expected absence, not an
// error. Only positive lookups are cached.
func (m *MappingStore) ResolveGroupToRole(ctx context.Context, tenantID, group string) (string, error) {
	key := tenantID + "/" + group
	if role, ok := m.cache.Get(key); ok {
		m.metrics.MappingCacheHitsTotal.Inc()
		return role, nil
	}
	m.metrics.MappingCacheMissesTotal.Inc()

	var role string
	err := m.db.QueryRowContext(ctx, `
		SELECT role FROM group_role_mappings
		WHERE (tenant_id = $1 OR tenant_id IS NULL) AND group_name = $2
		ORDER BY tenant_id NULLS LAST
		LIMIT 1
	`, tenantID, group).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up group mapping: %w", err)
	}

	m.cache.Add(key, role)
	return role, nil
}
