package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

func (h *ResultHandler) GetResultsByExaminee(c *gin.Context) {
	results, err := h.Service.GetResultsByExaminee(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}
