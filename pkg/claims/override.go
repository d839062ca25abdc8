package claims

import "strings"

// Claim attribute names shared between the trigger pipeline and the issued
// token overrides
const (
	ClaimTenantID   = "custom:tenantId"
	ClaimTenantType = "custom:tenantType"
	ClaimGroups     = "custom:groups"
)

// BuildOverride assembles the claim-override map for the issued token. The
// resolved tenant id and the tenant-type attribute are included when present;
// the group list is appended as a single comma-joined claim only when
// non-empty. The same map is installed into both the ID-token and
// access-token override sections.
func BuildOverride(tenantID, tenantType string, groups []string) map[string]string {
	override := make(map[string]string)
	if tenantID != "" {
		override[ClaimTenantID] = tenantID
	}
	if tenantType != "" {
		override[ClaimTenantType] = tenantType
	}
	if len(groups) > 0 {
		override[ClaimGroups] = strings.Join(groups, ",")
	}
	return override
}
