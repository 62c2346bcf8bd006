package worker

import (
	"github.com/spec-kit/bikehub-frontend/internal/service"
)

// StartSessionAudit registers the session audit handlers.
func StartSessionAudit(audit *service.SessionAuditService) {
	if audit == nil {
		return
	}
	audit.RegisterHandlers()
}
