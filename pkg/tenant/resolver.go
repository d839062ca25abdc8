package tenant

import (
	"strings"

	"github.com/learning-platform/authhooks/pkg/observability"
)

// Resolver determines the effective tenant for a single trigger invocation
type Resolver struct {
	log *observability.Logger
}

// NewResolver creates a tenant resolver
func NewResolver(log *observability.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve returns the effective tenant id by precedence: the trimmed selected
// override when non-empty, else the trimmed stored value, else "" for absent.
// The subject is used for diagnostics only and never affects the result.
func (r *Resolver) Resolve(selected, stored, subject string) string {
	if id := strings.TrimSpace(selected); id != "" {
		r.log.WithField("user", subject).WithField("tenant", id).Debug("using selected tenant override")
		return id
	}
	if id := strings.TrimSpace(stored); id != "" {
		r.log.WithField("user", subject).WithField("tenant", id).Debug("using stored tenant")
		return id
	}
	r.log.WithField("user", subject).Debug("no tenant resolved")
	return ""
}
