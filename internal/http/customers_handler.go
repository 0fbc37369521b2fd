package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/i18n"
	"github.com/medpak/webster-service/internal/service"
)

// CustomersHandler exposes the customer register.
type CustomersHandler struct {
	customers service.CustomerService
}

// NewCustomersHandler creates a new CustomersHandler.
func NewCustomersHandler(customers service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// Create handles POST /api/customers requests.
//
// @Summary      Register a customer
// @Tags         Customers
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCustomerRequest true "Customer details"
// @Success      201 {object} dto.SuccessResponse "Customer registered"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Security     BearerAuth
// @Router       /api/customers [post]
func (h *CustomersHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateCustomerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), *req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessCreated(customer)
}

// List handles GET /api/customers requests.
//
// @Summary      List customers
// @Description  Returns all customers ordered by last name.
// @Tags         Customers
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Customers"
// @Security     BearerAuth
// @Router       /api/customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(customers)
}

// Search handles GET /api/customers/search requests.
//
// @Summary      Search customers
// @Description  Case-insensitive prefix search over first name, last name and Medicare number. Returns at most ten matches.
// @Tags         Customers
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {object} dto.SuccessResponse "Matching customers"
// @Security     BearerAuth
// @Router       /api/customers/search [get]
func (h *CustomersHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	results, err := h.customers.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(results)
}

// Get handles GET /api/customers/:id requests.
//
// @Summary      Get a customer
// @Tags         Customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.SuccessResponse "Customer"
// @Failure      404 {object} dto.ErrorResponse "Customer not found"
// @Security     BearerAuth
// @Router       /api/customers/{id} [get]
func (h *CustomersHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, ok := pathObjectID(c, builder, "id")
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(customer)
}
