package trigger

import (
	"context"

	"github.com/learning-platform/authhooks/pkg/observability"
)

// triggerSourceConfirmSignUp is the only post-confirmation source that gets
// the tenant attribute stamped; forgot-password confirmations pass through
const triggerSourceConfirmSignUp = "PostConfirmation_ConfirmSignUp"

// DefaultTenantID is stamped when the caller supplied no tenant metadata
const DefaultTenantID = "default"

// AttributeWriter persists the tenant attribute onto the user record
type AttributeWriter interface {
	SetTenantAttribute(ctx context.Context, userPoolID, username, tenantID string) error
}

// PostConfirmationHandler stamps a tenant identifier onto newly confirmed
// users so later token issuances can resolve their stored tenant
type PostConfirmationHandler struct {
	writer  AttributeWriter
	log     *observability.Logger
	metrics *observability.Metrics
}

// NewPostConfirmationHandler creates a post-confirmation handler
func NewPostConfirmationHandler(writer AttributeWriter, log *observability.Logger, metrics *observability.Metrics) *PostConfirmationHandler {
	return &PostConfirmationHandler{
		writer:  writer,
		log:     log,
		metrics: metrics,
	}
}

// Handle processes one post-confirmation invocation. Like the pre-token
// handler it always returns the event: a failed attribute write is logged
// and swallowed so confirmation completes either way.
func (h *PostConfirmationHandler) Handle(ctx context.Context, event *PostConfirmationEvent) (out *PostConfirmationEvent, err error) {
	out = event
	log := observability.NewInvocationLogger(h.log)
	defer observability.RecoverPanicWithCallback(log, "post_confirmation", func() {
		h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPostConfirmation, observability.OutcomeRecovered).Inc()
	})

	if event.TriggerSource != triggerSourceConfirmSignUp {
		log.WithField("trigger_source", event.TriggerSource).Debug("ignoring non sign-up confirmation")
		h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPostConfirmation, observability.OutcomePassthrough).Inc()
		return out, nil
	}

	tenantID := event.Request.ClientMetadata["tenantId"]
	if tenantID == "" {
		tenantID = DefaultTenantID
	}

	log = log.WithTenant(tenantID, event.UserName)
	if err := h.writer.SetTenantAttribute(ctx, event.UserPoolID, event.UserName, tenantID); err != nil {
		log.WithError(err).Error("failed to stamp tenant attribute")
		h.metrics.AttributeWritesTotal.WithLabelValues(observability.StatusFailed).Inc()
	} else {
		log.Info("tenant attribute stamped")
		h.metrics.AttributeWritesTotal.WithLabelValues(observability.StatusOK).Inc()
	}

	h.metrics.TriggerInvocationsTotal.WithLabelValues(observability.TriggerPostConfirmation, observability.OutcomeProcessed).Inc()
	return out, nil
}
