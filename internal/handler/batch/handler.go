package batch

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/confirmly/dashboard-api/internal/handler"
	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/internal/service/batch"
)

type Handler struct {
	service batch.BatchService
}

func NewHandler(service batch.BatchService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	batches := r.Group("/batches")
	{
		batches.GET("", h.ListBatches)
		batches.GET("/export", h.ExportBatches)
		batches.POST("", h.CreateBatch)
		batches.DELETE("/cleanup", h.Cleanup)
		batches.GET("/:id", h.GetBatch)
	}
}

func (h *Handler) ListBatches(c *gin.Context) {
	var filters model.BatchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	page, err := h.service.QueryBatches(c.Request.Context(), &filters)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(page))
}

func (h *Handler) GetBatch(c *gin.Context) {
	b, err := h.service.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(b))
}

func (h *Handler) CreateBatch(c *gin.Context) {
	var req model.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	b, err := h.service.CreateBatch(c.Request.Context(), &req)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(b))
}

// Cleanup triggers a retention sweep: DELETE /batches/cleanup?days=N.
func (h *Handler) Cleanup(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "90"))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("days must be a non-negative integer"))
		return
	}

	deleted, err := h.service.DeleteOlderThan(c.Request.Context(), days)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": deleted}))
}

// ExportBatches streams the filtered batch history as a CSV download.
func (h *Handler) ExportBatches(c *gin.Context) {
	var filters model.BatchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("batches_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := h.service.ExportCSV(c.Request.Context(), &filters, c.Writer); err != nil {
		// Headers may already be out; abort the stream.
		c.AbortWithStatus(handler.StatusFromError(err))
		return
	}
}
