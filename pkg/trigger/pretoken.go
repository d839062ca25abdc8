package trigger

import (
	"context"
	"strings"

	"github.com/learning-platform/authhooks/pkg/claims"
	"github.com/learning-platform/authhooks/pkg/observability"
	"github.com/learning-platform/authhooks/pkg/provision"
	"github.com/learning-platform/authhooks/pkg/tenant"
)

// SelectedTenantMetadataKey is the client metadata key a caller sets to
// switch tenants for one token issuance
const SelectedTenantMetadataKey = "selectedTenantId"

// PreTokenHandler enriches issued tokens with tenant and group claims and
// drives side effects for first-time federated logins. Optional
// collaborators (provisioner, syncer) may be nil; the handler skips them.
type PreTokenHandler struct {
	tenants     *tenant.Resolver
	provisioner *provision.Provisioner
	syncer      provision.GroupSyncer
	log         *observability.Logger
	metrics     *observability.Metrics
}

// NewPreTokenHandler creates a pre-token-generation handler
func NewPreTokenHandler(tenants *tenant.Resolver, provisioner *provision.Provisioner, syncer provision.GroupSyncer, log *observability.Logger, metrics *observability.Metrics) *PreTokenHandler {
	return &PreTokenHandler{
		tenants:     tenants,
		provisioner: provisioner,
		syncer:      syncer,
		log:         log,
		metrics:     metrics,
	}
}

// Handle processes one pre-token-generation invocation. It always returns
// the event and a nil error: a raised error here would block the user's
// login, so every failure mode degrades to returning the event as received.
func (h *PreTokenHandler) Handle(ctx context.Context, event *PreTokenEvent) (out *PreTokenEvent, err error) {
	out = event
	log := observability.NewInvocationLogger(h.log)
	defer observability.RecoverPanicWithCallback(log, "pre_token_generation", func() {
		h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPreTokenGeneration, observability.OutcomeRecovered).Inc()
	})

	if !strings.Contains(event.TriggerSource, "TokenGeneration") {
		log.WithField("trigger_source", event.TriggerSource).Debug("ignoring non token-generation trigger")
		h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPreTokenGeneration, observability.OutcomePassthrough).Inc()
		return out, nil
	}

	h.process(ctx, log, event)
	h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPreTokenGeneration, observability.OutcomeProcessed).Inc()
	return out, nil
}

// process runs the enrichment pipeline. The claim override is installed as
// the last step so a failure anywhere above leaves the event unmodified.
func (h *PreTokenHandler) process(ctx context.Context, log *observability.Logger, event *PreTokenEvent) {
	attrs := event.Request.UserAttributes

	tenantID := h.tenants.Resolve(
		event.Request.ClientMetadata[SelectedTenantMetadataKey],
		attrs[claims.ClaimTenantID],
		event.UserName,
	)
	groups := claims.ExtractGroups(attrs)
	idp := claims.DetectIdp(attrs)

	email := attrs["email"]
	if email == "" {
		email = event.UserName
	}
	subject := attrs["sub"]

	log = log.WithTenant(tenantID, email)

	if tenantID != "" {
		h.syncGroups(ctx, log, tenantID, email, groups)
		if h.provisioner != nil {
			h.provisioner.ProvisionIfNeeded(ctx, tenantID, email, subject, groups, idp)
		}
	}

	event.InstallOverride(claims.BuildOverride(tenantID, attrs[claims.ClaimTenantType], groups))

	log.WithField("idp", string(idp)).
		WithField("groups", len(groups)).
		Info("token claims enriched")
}

// syncGroups pushes the user's groups to the platform, best-effort. A sync
// failure is logged and counted, never surfaced.
func (h *PreTokenHandler) syncGroups(ctx context.Context, log *observability.Logger, tenantID, email string, groups []string) {
	if h.syncer == nil || len(groups) == 0 {
		return
	}
	if err := h.syncer.SyncGroups(ctx, tenantID, email, groups); err != nil {
		log.WithError(err).Warn("group sync failed")
		h.metrics.GroupSyncTotal.WithLabelValues(observability.StatusFailed).Inc()
		return
	}
	h.metrics.GroupSyncTotal.WithLabelValues(observability.StatusOK).Inc()
}
