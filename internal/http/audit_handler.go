package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/i18n"
	"github.com/medpak/webster-service/internal/service"
)

// AuditHandler exposes the workflow audit trail for compliance review.
type AuditHandler struct {
	audit service.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(audit service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Query handles GET /api/audit requests.
//
// @Summary      Query the audit trail
// @Description  Returns workflow audit entries, newest first. Filterable by pack, pharmacist, action and time window.
// @Tags         Audit
// @Produce      json
// @Param        pack_id query string false "Filter by pack ID"
// @Param        pharmacist_id query string false "Filter by pharmacist ID"
// @Param        action query string false "Filter by action" Enums(step_completed, pack_completed, scan_verified, scan_unmatched, pack_created)
// @Param        since query string false "RFC3339 lower bound"
// @Param        until query string false "RFC3339 upper bound"
// @Param        limit query int false "Maximum results" default(100)
// @Param        skip query int false "Results to skip" default(0)
// @Success      200 {object} dto.SuccessResponse "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid filters"
// @Security     BearerAuth
// @Router       /api/audit [get]
func (h *AuditHandler) Query(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q, err := parseAuditQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	entries, err := h.audit.Query(c.Request.Context(), q)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(entries)
}

func parseAuditQuery(c *gin.Context) (model.AuditQuery, error) {
	q := model.AuditQuery{
		PackID:       c.Query("pack_id"),
		PharmacistID: c.Query("pharmacist_id"),
		Action:       c.Query("action"),
	}

	if raw := c.Query("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, errors.New("since must be RFC3339")
		}
		q.Since = &ts
	}
	if raw := c.Query("until"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, errors.New("until must be RFC3339")
		}
		q.Until = &ts
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, errors.New("limit must be a positive integer")
		}
		q.Limit = n
	}
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return q, errors.New("skip must be a non-negative integer")
		}
		q.Skip = n
	}
	return q, nil
}
