package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/circuitbreaker"
	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/i18n"
	"github.com/medpak/webster-service/internal/middleware"
	"github.com/medpak/webster-service/internal/service"
)

// WorkflowHandler exposes the pack preparation workflow: completing
// checklist steps and verifying medications by barcode.
type WorkflowHandler struct {
	workflow service.Workflow
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflow service.Workflow) *WorkflowHandler {
	return &WorkflowHandler{workflow: workflow}
}

// CompleteStep handles POST /api/packs/:id/steps/:stepID/complete requests.
//
// @Summary      Complete a checklist step
// @Description  Marks one preparation checklist step as completed by the authenticated pharmacist. When the last open step completes, the pack transitions to completed and the response notification announces it. Attempts on an already-completed pack are rejected with 409; a step that does not belong to the pack yields 422.
// @Tags         Workflow
// @Accept       json
// @Produce      json
// @Param        id path string true "Webster pack ID"
// @Param        stepID path string true "Checklist step ID"
// @Param        request body dto.CompleteStepRequest false "Optional completion notes"
// @Success      200 {object} dto.SuccessResponse "Step recorded"
// @Failure      400 {object} dto.ErrorResponse "Malformed ids or body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Pack not found"
// @Failure      409 {object} dto.ErrorResponse "Pack already completed"
// @Failure      422 {object} dto.ErrorResponse "Step does not belong to this pack"
// @Failure      502 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Router       /api/packs/{id}/steps/{stepID}/complete [post]
func (h *WorkflowHandler) CompleteStep(c *gin.Context) {
	builder := NewResponseBuilder(c)

	packID, stepID, ok := pathObjectIDs(c, builder, "id", "stepID")
	if !ok {
		return
	}
	pharmacistID, ok := middleware.GetPharmacistID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}

	var req dto.CompleteStepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	result, err := h.workflow.CompleteStep(c.Request.Context(), packID, stepID, pharmacistID, req.Notes)
	if err != nil {
		h.respondWorkflowError(builder, err)
		return
	}

	notification := completionNotification(c, result)
	builder.SuccessWithNotification(http.StatusOK, result, &notification)
}

// Scan handles POST /api/packs/:id/scan requests.
//
// @Summary      Verify a medication by barcode
// @Description  Matches a decoded barcode against the pack's medication line items, exact and case-sensitive. A match auto-completes the medication verification step when it is still open. An unmatched barcode is a 200 with a warning notification, not an error.
// @Tags         Workflow
// @Accept       json
// @Produce      json
// @Param        id path string true "Webster pack ID"
// @Param        request body dto.ScanRequest true "Decoded barcode"
// @Success      200 {object} dto.SuccessResponse "Verification outcome"
// @Failure      400 {object} dto.ErrorResponse "Malformed id or body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Pack not found"
// @Failure      502 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Router       /api/packs/{id}/scan [post]
func (h *WorkflowHandler) Scan(c *gin.Context) {
	builder := NewResponseBuilder(c)

	packID, ok := pathObjectID(c, builder, "id")
	if !ok {
		return
	}
	pharmacistID, ok := middleware.GetPharmacistID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.ScanRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.workflow.VerifyByBarcode(c.Request.Context(), packID, req.Barcode, pharmacistID)
	if err != nil {
		h.respondWorkflowError(builder, err)
		return
	}

	notification := verificationNotification(c, result)
	builder.SuccessWithNotification(http.StatusOK, result, &notification)
}

// respondWorkflowError maps workflow errors onto the API error contract.
func (h *WorkflowHandler) respondWorkflowError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrPackAlreadyCompleted):
		builder.ErrorWithNotification(http.StatusConflict, dto.NotificationWarning,
			i18n.KeyPackAlreadyCompletedTitle, i18n.KeyPackAlreadyCompleted, err)
	case errors.Is(err, service.ErrStepNotFound):
		builder.ErrorWithNotification(http.StatusUnprocessableEntity, dto.NotificationError,
			i18n.KeyStepNotFoundTitle, i18n.KeyStepNotFound, err)
	case errors.Is(err, service.ErrPackNotFound):
		builder.ErrorWithNotification(http.StatusNotFound, dto.NotificationError,
			i18n.KeyPackNotFoundTitle, i18n.KeyPackNotFound, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyStorageUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// completionNotification builds the UI notification for a step completion.
func completionNotification(c *gin.Context, result *service.CompletionResult) dto.Notification {
	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()

	if result.PackCompleted() {
		return dto.NewNotification(dto.NotificationSuccess,
			translator.Translate(i18n.KeyPackCompletedTitle, locale),
			translator.Translate(i18n.KeyPackCompleted, locale))
	}
	return dto.NewNotification(dto.NotificationSuccess,
		translator.Translate(i18n.KeyStepCompletedTitle, locale),
		translator.Translate(i18n.KeyStepCompleted, locale))
}

// verificationNotification builds the UI notification for a scan outcome.
func verificationNotification(c *gin.Context, result *service.VerificationResult) dto.Notification {
	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()

	if result.Outcome == service.NotFound {
		return dto.NewNotification(dto.NotificationWarning,
			translator.Translate(i18n.KeyScanUnmatchedTitle, locale),
			translator.Translate(i18n.KeyScanUnmatched, locale))
	}
	if result.StepCompletion != nil && result.StepCompletion.PackCompleted() {
		return dto.NewNotification(dto.NotificationSuccess,
			translator.Translate(i18n.KeyPackCompletedTitle, locale),
			translator.Translate(i18n.KeyPackCompleted, locale))
	}
	return dto.NewNotification(dto.NotificationSuccess,
		translator.Translate(i18n.KeyScanVerifiedTitle, locale),
		translator.Translate(i18n.KeyScanVerified, locale))
}

// pathObjectID parses one ObjectID path parameter, responding 400 on failure.
func pathObjectID(c *gin.Context, builder *ResponseBuilder, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathObjectIDs parses two ObjectID path parameters, responding 400 on failure.
func pathObjectIDs(c *gin.Context, builder *ResponseBuilder, first, second string) (primitive.ObjectID, primitive.ObjectID, bool) {
	a, ok := pathObjectID(c, builder, first)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	b, ok := pathObjectID(c, builder, second)
	if !ok {
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return a, b, true
}
