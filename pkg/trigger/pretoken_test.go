package trigger

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learning-platform/authhooks/pkg/observability"
	"github.com/learning-platform/authhooks/pkg/provision"
	"github.com/learning-platform/authhooks/pkg/tenant"
)

type syncCall struct {
	tenantID string
	email    string
	groups   []string
}

type fakeSyncer struct {
	calls []syncCall
	err   error
	panic bool
}

func (f *fakeSyncer) SyncGroups(ctx context.Context, tenantID, email string, groups []string) error {
	if f.panic {
		panic("syncer exploded")
	}
	f.calls = append(f.calls, syncCall{tenantID: tenantID, email: email, groups: groups})
	return f.err
}

func newTestPreTokenHandler(syncer provision.GroupSyncer) *PreTokenHandler {
	log := observability.NewLogger(observability.ErrorLevel, io.Discard)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewPreTokenHandler(tenant.NewResolver(log), nil, syncer, log, metrics)
}

func tokenGenerationEvent(attrs, metadata map[string]string) *PreTokenEvent {
	return &PreTokenEvent{
		TriggerSource: "TokenGeneration_Authentication",
		UserPoolID:    "us-east-1_pool",
		UserName:      "user-abc",
		Request: PreTokenRequest{
			UserAttributes: attrs,
			ClientMetadata: metadata,
		},
	}
}

func TestPreToken_StoredTenantBecomesClaim(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(map[string]string{
		"email":           "user@example.com",
		"sub":             "sub-456",
		"custom:tenantId": "tenant-123",
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)

	claims := out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride
	assert.Equal(t, "tenant-123", claims["custom:tenantId"])
}

func TestPreToken_SelectedTenantOverridesStored(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(
		map[string]string{
			"email":           "user@example.com",
			"custom:tenantId": "tenant-123",
		},
		map[string]string{"selectedTenantId": "new-tenant"},
	)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)
	assert.Equal(t, "new-tenant", out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride["custom:tenantId"])
}

func TestPreToken_GroupsBecomeCommaJoinedClaim(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(map[string]string{
		"email":           "user@example.com",
		"custom:tenantId": "tenant-123",
		"custom:groups":   `["Engineering", "Marketing"]`,
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)
	assert.Equal(t, "Engineering,Marketing", out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride["custom:groups"])
}

func TestPreToken_TenantTypePassesThrough(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(map[string]string{
		"custom:tenantId":   "tenant-123",
		"custom:tenantType": "enterprise",
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)
	assert.Equal(t, "enterprise", out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride["custom:tenantType"])
}

func TestPreToken_OverrideMirroredIntoTokenSections(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(map[string]string{
		"custom:tenantId": "tenant-123",
		"custom:groups":   "Engineering",
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)

	details := out.Response.ClaimsOverrideDetails
	require.NotNil(t, details)
	require.NotNil(t, details.IDTokenGeneration)
	require.NotNil(t, details.AccessTokenGeneration)
	assert.Equal(t, details.ClaimsToAddOrOverride, details.IDTokenGeneration.ClaimsToAddOrOverride)
	assert.Equal(t, details.ClaimsToAddOrOverride, details.AccessTokenGeneration.ClaimsToAddOrOverride)
}

func TestPreToken_NonTokenGenerationSourcePassesThrough(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := &PreTokenEvent{
		TriggerSource: "PreSignUp_SignUp",
		UserName:      "user-abc",
		Request: PreTokenRequest{
			UserAttributes: map[string]string{"custom:tenantId": "tenant-123"},
		},
	}

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Same(t, event, out)
	assert.Nil(t, out.Response.ClaimsOverrideDetails)
}

func TestPreToken_NoTenantInstallsNoTenantClaim(t *testing.T) {
	handler := newTestPreTokenHandler(nil)
	event := tokenGenerationEvent(map[string]string{
		"email":         "user@example.com",
		"custom:groups": "Engineering",
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)

	claims := out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride
	_, hasTenant := claims["custom:tenantId"]
	assert.False(t, hasTenant)
	assert.Equal(t, "Engineering", claims["custom:groups"])
}

func TestPreToken_SyncerReceivesGroups(t *testing.T) {
	syncer := &fakeSyncer{}
	handler := newTestPreTokenHandler(syncer)
	event := tokenGenerationEvent(map[string]string{
		"email":           "user@example.com",
		"custom:tenantId": "tenant-123",
		"custom:groups":   "Engineering, Marketing",
	}, nil)

	_, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Len(t, syncer.calls, 1)
	assert.Equal(t, "tenant-123", syncer.calls[0].tenantID)
	assert.Equal(t, "user@example.com", syncer.calls[0].email)
	assert.Equal(t, []string{"Engineering", "Marketing"}, syncer.calls[0].groups)
}

func TestPreToken_SyncerErrorDoesNotBlockClaims(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("platform down")}
	handler := newTestPreTokenHandler(syncer)
	event := tokenGenerationEvent(map[string]string{
		"custom:tenantId": "tenant-123",
		"custom:groups":   "Engineering",
	}, nil)

	out, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	require.NotNil(t, out.Response.ClaimsOverrideDetails)
	assert.Equal(t, "tenant-123", out.Response.ClaimsOverrideDetails.ClaimsToAddOrOverride["custom:tenantId"])
}

func TestPreToken_PanickingCollaboratorStillReturnsEvent(t *testing.T) {
	syncer := &fakeSyncer{panic: true}
	handler := newTestPreTokenHandler(syncer)
	event := tokenGenerationEvent(map[string]string{
		"custom:tenantId": "tenant-123",
		"custom:groups":   "Engineering",
	}, nil)

	var out *PreTokenEvent
	var err error
	assert.NotPanics(t, func() {
		out, err = handler.Handle(context.Background(), event)
	})
	require.NoError(t, err)
	require.Same(t, event, out)
	// The panic hit before claim install, so the response stays untouched
	assert.Nil(t, out.Response.ClaimsOverrideDetails)
}

func TestPreToken_NoGroupsSkipsSync(t *testing.T) {
	syncer := &fakeSyncer{}
	handler := newTestPreTokenHandler(syncer)
	event := tokenGenerationEvent(map[string]string{
		"custom:tenantId": "tenant-123",
	}, nil)

	_, err := handler.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Empty(t, syncer.calls)
}
