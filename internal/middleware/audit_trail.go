// Package middleware provides audit trail utilities.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/service"
)

// AuditTrail returns a middleware that persists an audit entry for every
// mutating API request. Entries are written asynchronously and dropped on
// failure; the request is never blocked on the audit store. Workflow
// handlers record their own, more specific entries on top of these.
func AuditTrail(audit service.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return
		}

		entry := &model.AuditEntry{
			Timestamp: time.Now(),
			Action:    model.ActionAPIRequest,
			Message:   c.Request.Method + " " + c.FullPath(),
			RequestID: GetRequestID(c),
			Fields: map[string]interface{}{
				"path":        c.Request.URL.Path,
				"status_code": c.Writer.Status(),
				"ip":          c.ClientIP(),
			},
		}
		if packID := c.Param("id"); packID != "" {
			entry.PackID = packID
		}
		if id, exists := c.Get(PharmacistIDKey); exists {
			if oid, ok := id.(primitive.ObjectID); ok {
				entry.PharmacistID = oid.Hex()
			}
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = audit.Record(ctx, entry)
		}()
	}
}
