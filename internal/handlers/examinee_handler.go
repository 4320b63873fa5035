package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ExamineeHandler struct {
	Service *service.ExamineeService
}

func NewExamineeHandler(s *service.ExamineeService) *ExamineeHandler {
	return &ExamineeHandler{Service: s}
}

func (h *ExamineeHandler) GetExaminee(c *gin.Context) {
	profile, err := h.Service.GetExaminee(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Examinee not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
