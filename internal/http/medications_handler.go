package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/i18n"
	"github.com/medpak/webster-service/internal/service"
)

// MedicationsHandler exposes the medication catalog.
type MedicationsHandler struct {
	medications service.MedicationService
}

// NewMedicationsHandler creates a new MedicationsHandler.
func NewMedicationsHandler(medications service.MedicationService) *MedicationsHandler {
	return &MedicationsHandler{medications: medications}
}

// Create handles POST /api/medications requests.
//
// @Summary      Add a medication to the catalog
// @Tags         Medications
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMedicationRequest true "Medication details"
// @Success      201 {object} dto.SuccessResponse "Medication added"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Security     BearerAuth
// @Router       /api/medications [post]
func (h *MedicationsHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateMedicationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	med, err := h.medications.Create(c.Request.Context(), *req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessCreated(med)
}

// List handles GET /api/medications requests.
//
// @Summary      List catalog medications
// @Tags         Medications
// @Produce      json
// @Param        limit query int false "Maximum results" default(100)
// @Success      200 {object} dto.SuccessResponse "Medications"
// @Security     BearerAuth
// @Router       /api/medications [get]
func (h *MedicationsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, errors.New("limit must be a positive integer"))
			return
		}
		limit = n
	}

	meds, err := h.medications.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(meds)
}

// GetByBarcode handles GET /api/medications/barcode/:code requests.
//
// @Summary      Look up a medication by barcode
// @Description  Exact, case-sensitive barcode lookup backed by a TTL cache.
// @Tags         Medications
// @Produce      json
// @Param        code path string true "Barcode"
// @Success      200 {object} dto.SuccessResponse "Medication"
// @Failure      404 {object} dto.ErrorResponse "No medication carries this barcode"
// @Security     BearerAuth
// @Router       /api/medications/barcode/{code} [get]
func (h *MedicationsHandler) GetByBarcode(c *gin.Context) {
	builder := NewResponseBuilder(c)

	med, err := h.medications.GetByBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrMedicationNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(med)
}

// Get handles GET /api/medications/:id requests.
//
// @Summary      Get a medication
// @Tags         Medications
// @Produce      json
// @Param        id path string true "Medication ID"
// @Success      200 {object} dto.SuccessResponse "Medication"
// @Failure      404 {object} dto.ErrorResponse "Medication not found"
// @Security     BearerAuth
// @Router       /api/medications/{id} [get]
func (h *MedicationsHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathObjectID(c, builder, "id")
	if !ok {
		return
	}

	med, err := h.medications.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMedicationNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(med)
}
