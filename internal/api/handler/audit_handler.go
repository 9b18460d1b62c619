package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Nowell222/green-path-ai/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditHandler serves the authentication audit trail to administrators.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List returns recent authentication events, newest first.
//
// @Summary      List recent authentication events
// @Tags         audit
// @Produce      json
// @Param        X-Context-ID  header    string  false  "Browsing context ID"
// @Param        limit         query     int     false  "Maximum events to return (default 50, max 500)"
// @Success      200   {array}   auditEventResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /audit/events [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
		}
		if n > maxAuditLimit {
			n = maxAuditLimit
		}
		limit = n
	}

	events, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	items := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, auditEventResponse{
			ID:        e.ID,
			ContextID: e.ContextID,
			Kind:      string(e.Kind),
			Email:     e.Email,
			Role:      string(e.Role),
			Timestamp: e.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, items)
}
