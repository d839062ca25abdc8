package provision

import (
	"context"
	"fmt"
)

// GroupRoleMapper resolves an external group name to an internal role for a
// tenant. An empty role means no mapping exists for that group.
type GroupRoleMapper interface {
	ResolveGroupToRole(ctx context.Context, tenantID, group string) (string, error)
}

// RoleResolver maps a list of external group names to an internal role
type RoleResolver struct {
	mapper GroupRoleMapper
}

// NewRoleResolver creates a role resolver backed by the given mapper
func NewRoleResolver(mapper GroupRoleMapper) *RoleResolver {
	return &RoleResolver{mapper: mapper}
}

// Resolve returns the role mapped to the first group, in order, that has a
// mapping. Nil or empty groups yield "" with no error; the default role is
// applied by the caller, not here.
func (r *RoleResolver) Resolve(ctx context.Context, tenantID string, groups []string) (string, error) {
	if len(groups) == 0 {
		return "", nil
	}
	for _, group := range groups {
		role, err := r.mapper.ResolveGroupToRole(ctx, tenantID, group)
		if err != nil {
			return "", fmt.Errorf("failed to resolve role for group %q: %w", group, err)
		}
		if role != "" {
			return role, nil
		}
	}
	return "", nil
}
