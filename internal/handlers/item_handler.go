package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/models"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	Service *service.ItemService
}

func NewItemHandler(s *service.ItemService) *ItemHandler {
	return &ItemHandler{Service: s}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		items, err := h.Service.ListItemsByCategory(context.Background(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.Service.ListItems(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	item, err := h.Service.GetItem(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateItem(context.Background(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// BulkImport loads a batch of authored items; items with invalid
// calibration parameters are reported back and skipped.
func (h *ItemHandler) BulkImport(c *gin.Context) {
	var req struct {
		Items []models.Item `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imported, rejected, err := h.Service.BulkImport(context.Background(), req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    err.Error(),
			"rejected": rejected,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"imported": imported,
		"rejected": rejected,
	})
}
