package provision

import (
	"context"
	"time"

	"github.com/learning-platform/authhooks/pkg/claims"
	"github.com/learning-platform/authhooks/pkg/observability"
)

// DefaultRole is assigned when no group maps to a role
const DefaultRole = "viewer"

// UserStore is the tenant-scoped user record collaborator. ProvisionUser must
// be safe to call concurrently for the same identity (upsert semantics).
type UserStore interface {
	UserExists(ctx context.Context, tenantID, email string) (bool, error)
	ProvisionUser(ctx context.Context, tenantID, email, externalSubjectID, role string, idp claims.IdpType) error
}

// GroupSyncer pushes the user's external groups to the platform, best-effort
type GroupSyncer interface {
	SyncGroups(ctx context.Context, tenantID, email string, groups []string) error
}

// Provisioner orchestrates JIT provisioning of first-time federated users
type Provisioner struct {
	store   UserStore
	roles   *RoleResolver
	log     *observability.Logger
	metrics *observability.Metrics
}

// NewProvisioner creates a JIT provisioner
func NewProvisioner(store UserStore, roles *RoleResolver, log *observability.Logger, metrics *observability.Metrics) *Provisioner {
	return &Provisioner{
		store:   store,
		roles:   roles,
		log:     log,
		metrics: metrics,
	}
}

// ProvisionIfNeeded creates a tenant user record for a first-time federated
// login. Existing users are a no-op. Collaborator errors are logged and
// swallowed so provisioning never blocks the login in progress; a later login
// retries the same sequence.
func (p *Provisioner) ProvisionIfNeeded(ctx context.Context, tenantID, email, externalSubjectID string, groups []string, idp claims.IdpType) {
	log := p.log.WithTenant(tenantID, email)
	start := time.Now()
	defer func() {
		p.metrics.ProvisioningDuration.Observe(time.Since(start).Seconds())
	}()

	exists, err := p.store.UserExists(ctx, tenantID, email)
	if err != nil {
		log.WithError(err).WithField("operation", "user_exists").Error("JIT provisioning aborted: existence check failed")
		p.metrics.ProvisioningTotal.WithLabelValues(observability.StatusFailed).Inc()
		return
	}
	if exists {
		p.metrics.ProvisioningTotal.WithLabelValues(observability.StatusExists).Inc()
		return
	}

	role, err := p.roles.Resolve(ctx, tenantID, groups)
	if err != nil {
		log.WithError(err).WithField("operation", "resolve_role").Error("JIT provisioning aborted: role resolution failed")
		p.metrics.ProvisioningTotal.WithLabelValues(observability.StatusFailed).Inc()
		return
	}
	if role == "" {
		role = DefaultRole
	}

	if err := p.store.ProvisionUser(ctx, tenantID, email, externalSubjectID, role, idp); err != nil {
		log.WithError(err).WithField("operation", "provision_user").Error("JIT provisioning failed")
		p.metrics.ProvisioningTotal.WithLabelValues(observability.StatusFailed).Inc()
		return
	}

	p.metrics.ProvisioningTotal.WithLabelValues(observability.StatusOK).Inc()
	log.WithField("role", role).WithField("idp", string(idp)).Info("provisioned federated user")
}
