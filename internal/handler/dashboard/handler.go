package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/confirmly/dashboard-api/internal/handler"
	"github.com/confirmly/dashboard-api/internal/service/dashboard"
)

const defaultChartDays = 7

type Handler struct {
	service dashboard.DashboardService
}

func NewHandler(service dashboard.DashboardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	d := r.Group("/dashboard")
	{
		d.GET("/metrics", h.GetMetrics)
		d.GET("/chart", h.GetChart)
		d.GET("/categories", h.GetCategories)
	}
}

func (h *Handler) GetMetrics(c *gin.Context) {
	m, err := h.service.GetMetrics(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(m))
}

func (h *Handler) GetChart(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultChartDays)))
	if err != nil || days <= 0 || days > 365 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("days must be an integer between 1 and 365"))
		return
	}

	points, err := h.service.GetChartData(c.Request.Context(), days)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(points))
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategoryData(c.Request.Context())
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(categories))
}
