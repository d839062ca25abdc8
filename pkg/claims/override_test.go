package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOverride_AllFields(t *testing.T) {
	override := BuildOverride("tenant-123", "ORGANIZATION", []string{"Engineering", "Marketing"})

	assert.Equal(t, map[string]string{
		ClaimTenantID:   "tenant-123",
		ClaimTenantType: "ORGANIZATION",
		ClaimGroups:     "Engineering,Marketing",
	}, override)
}

func TestBuildOverride_OmitsAbsentClaims(t *testing.T) {
	override := BuildOverride("tenant-123", "", nil)
	assert.Equal(t, map[string]string{ClaimTenantID: "tenant-123"}, override)

	override = BuildOverride("", "", nil)
	assert.Empty(t, override)
}

func TestBuildOverride_NoGroupClaimForEmptyGroups(t *testing.T) {
	override := BuildOverride("tenant-123", "PERSONAL", []string{})
	assert.NotContains(t, override, ClaimGroups)
}
