package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learning-platform/authhooks/pkg/observability"
)

func newTestMappingStore(t *testing.T) (*MappingStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewMappingStore(db, 16, time.Minute, metrics), mock
}

func TestMappingStore_ResolveGroupToRole(t *testing.T) {
	store, mock := newTestMappingStore(t)

	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WithArgs("tenant-123", "engineering").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("editor"))

	role, err := store.ResolveGroupToRole(context.Background(), "tenant-123", "engineering")
	require.NoError(t, err)
	assert.Equal(t, "editor", role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingStore_NoMappingIsAbsentNotError(t *testing.T) {
	store, mock := newTestMappingStore(t)

	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WithArgs("tenant-123", "unknown-group").
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	role, err := store.ResolveGroupToRole(context.Background(), "tenant-123", "unknown-group")
	require.NoError(t, err)
	assert.Equal(t, "", role)
}

func TestMappingStore_CachesPositiveLookups(t *testing.T) {
	store, mock := newTestMappingStore(t)

	// Only one query expected; the second resolve must come from cache
	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WithArgs("tenant-123", "engineering").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("editor"))

	role, err := store.ResolveGroupToRole(context.Background(), "tenant-123", "engineering")
	require.NoError(t, err)
	assert.Equal(t, "editor", role)

	role, err = store.ResolveGroupToRole(context.Background(), "tenant-123", "engineering")
	require.NoError(t, err)
	assert.Equal(t, "editor", role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingStore_DoesNotCacheAbsence(t *testing.T) {
	store, mock := newTestMappingStore(t)

	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WithArgs("tenant-123", "unknown-group").
		WillReturnRows(sqlmock.NewRows([]string{"role"}))
	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WithArgs("tenant-123", "unknown-group").
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("viewer"))

	role, err := store.ResolveGroupToRole(context.Background(), "tenant-123", "unknown-group")
	require.NoError(t, err)
	assert.Equal(t, "", role)

	// A mapping added later is visible on the next lookup
	role, err = store.ResolveGroupToRole(context.Background(), "tenant-123", "unknown-group")
	require.NoError(t, err)
	assert.Equal(t, "viewer", role)
}

func TestMappingStore_QueryError(t *testing.T) {
	store, mock := newTestMappingStore(t)

	mock.ExpectQuery("SELECT role FROM group_role_mappings").
		WillReturnError(errors.New("connection refused"))

	_, err := store.ResolveGroupToRole(context.Background(), "tenant-123", "engineering")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up group mapping")
}
