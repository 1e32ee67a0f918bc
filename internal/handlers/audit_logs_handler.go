package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/policy"
	"github.com/BruksfildServices01/service-marketplace/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	audit    *audit.Logger
	timezone string
}

func NewAuditLogsHandler(logger *audit.Logger, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{audit: logger, timezone: tz}
}

// List serves GET /admin/audit-logs?action=&entity=&from=&to=&page=&limit=.
// from and to are calendar days in the configured timezone; to is inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}
	if err := policy.Authorize(actor, policy.ActionAuditRead, policy.Resource{}).Err(); err != nil {
		httperr.Abort(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date range
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := timezone.ParseDate(h.timezone, fromStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		filter.From = from
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := timezone.ParseDate(h.timezone, toStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		filter.To = to.Add(24 * time.Hour)
	}

	logs, total, err := h.audit.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
