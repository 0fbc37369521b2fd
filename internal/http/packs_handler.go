package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/circuitbreaker"
	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/i18n"
	"github.com/medpak/webster-service/internal/middleware"
	"github.com/medpak/webster-service/internal/repository"
	"github.com/medpak/webster-service/internal/service"
)

// PacksHandler exposes webster pack CRUD and the status dashboard.
type PacksHandler struct {
	packs service.PackService
}

// NewPacksHandler creates a new PacksHandler.
func NewPacksHandler(packs service.PackService) *PacksHandler {
	return &PacksHandler{packs: packs}
}

// Create handles POST /api/packs requests.
//
// @Summary      Create a webster pack
// @Description  Opens a new pack for a customer with its medication line items and the standard preparation checklist. A pack created by an authenticated pharmacist starts in_progress, otherwise pending.
// @Tags         Packs
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePackRequest true "Pack details"
// @Success      201 {object} dto.SuccessResponse "Pack created"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Customer not found"
// @Failure      502 {object} dto.ErrorResponse "Storage unavailable"
// @Security     BearerAuth
// @Router       /api/packs [post]
func (h *PacksHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreatePackRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var pharmacistID *primitive.ObjectID
	if id, ok := middleware.GetPharmacistID(c); ok {
		pharmacistID = &id
	}

	pack, err := h.packs.Create(c.Request.Context(), *req, pharmacistID)
	if err != nil {
		h.respondError(builder, err)
		return
	}

	locale := i18n.GetLocale(c)
	translator := i18n.GetTranslator()
	notification := dto.NewNotification(dto.NotificationSuccess,
		translator.Translate(i18n.KeyPackCreatedTitle, locale),
		translator.Translate(i18n.KeyPackCreated, locale))
	builder.SuccessWithNotification(http.StatusCreated, pack, &notification)
}

// List handles GET /api/packs requests.
//
// @Summary      List webster packs
// @Description  Returns packs with their customers joined, newest first. Supports filtering by status and customer.
// @Tags         Packs
// @Produce      json
// @Param        status query string false "Filter by status" Enums(pending, in_progress, completed)
// @Param        customer_id query string false "Filter by customer ID"
// @Param        limit query int false "Maximum results" default(50)
// @Success      200 {object} dto.SuccessResponse "Packs"
// @Failure      400 {object} dto.ErrorResponse "Invalid filters"
// @Security     BearerAuth
// @Router       /api/packs [get]
func (h *PacksHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := repository.PackListOptions{Limit: 50}
	if status := c.Query("status"); status != "" {
		opts.Status = model.PackStatus(status)
		if !opts.Status.Valid() {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, errors.New("unknown status: "+status))
			return
		}
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		id, err := primitive.ObjectIDFromHex(customerID)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		opts.CustomerID = &id
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, errors.New("limit must be a positive integer"))
			return
		}
		opts.Limit = n
	}

	packs, err := h.packs.List(c.Request.Context(), opts)
	if err != nil {
		h.respondError(builder, err)
		return
	}
	builder.SuccessOK(packs)
}

// Get handles GET /api/packs/:id requests.
//
// @Summary      Get pack detail
// @Description  Returns one pack with its customer, medication line items in load order, and the checklist in creation order.
// @Tags         Packs
// @Produce      json
// @Param        id path string true "Webster pack ID"
// @Success      200 {object} dto.SuccessResponse "Pack detail"
// @Failure      400 {object} dto.ErrorResponse "Malformed id"
// @Failure      404 {object} dto.ErrorResponse "Pack not found"
// @Security     BearerAuth
// @Router       /api/packs/{id} [get]
func (h *PacksHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathObjectID(c, builder, "id")
	if !ok {
		return
	}

	detail, err := h.packs.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.respondError(builder, err)
		return
	}
	builder.SuccessOK(detail)
}

// Checklist handles GET /api/packs/:id/checklist requests.
//
// @Summary      Get pack checklist
// @Description  Returns the preparation checklist for one pack in creation order.
// @Tags         Packs
// @Produce      json
// @Param        id path string true "Webster pack ID"
// @Success      200 {object} dto.SuccessResponse "Checklist items"
// @Failure      404 {object} dto.ErrorResponse "Pack not found"
// @Security     BearerAuth
// @Router       /api/packs/{id}/checklist [get]
func (h *PacksHandler) Checklist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathObjectID(c, builder, "id")
	if !ok {
		return
	}

	items, err := h.packs.Checklist(c.Request.Context(), id)
	if err != nil {
		h.respondError(builder, err)
		return
	}
	builder.SuccessOK(items)
}

// Dashboard handles GET /api/dashboard/summary requests.
//
// @Summary      Pack status dashboard
// @Description  Returns pack counts grouped by status for the pharmacy dashboard.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Status counts"
// @Security     BearerAuth
// @Router       /api/dashboard/summary [get]
func (h *PacksHandler) Dashboard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	summary, err := h.packs.Dashboard(c.Request.Context())
	if err != nil {
		h.respondError(builder, err)
		return
	}
	builder.SuccessOK(summary)
}

func (h *PacksHandler) respondError(builder *ResponseBuilder, err error) {
	var vErr *dto.ValidationError
	switch {
	case errors.As(err, &vErr):
		builder.ErrorWithMessage(http.StatusBadRequest, vErr.Error(), err)
	case errors.Is(err, service.ErrPackNotFound), errors.Is(err, service.ErrCustomerNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyStorageUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
