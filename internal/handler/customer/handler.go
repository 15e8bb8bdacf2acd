package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/confirmly/dashboard-api/internal/handler"
	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/service/customer"
)

type Handler struct {
	service customer.CustomerService
}

func NewHandler(service customer.CustomerService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.GET("", h.LookupByPhone)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:id", h.GetCustomer)
	}
}

func (h *Handler) GetCustomer(c *gin.Context) {
	cust, err := h.service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(cust))
}

// LookupByPhone resolves GET /customers?phone=+1...
func (h *Handler) LookupByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("phone query parameter is required"))
		return
	}

	cust, err := h.service.GetCustomerByPhone(c.Request.Context(), phone)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(cust))
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req model.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	cust, err := h.service.CreateCustomer(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(cust))
}
