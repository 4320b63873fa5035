package handlers

import (
	"context"
	"errors"
	"net/http"

	"assessment-service/internal/adaptive"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service         *service.SessionService
	ResponseService *service.ResponseService
}

func NewSessionHandler(s *service.SessionService, rs *service.ResponseService) *SessionHandler {
	return &SessionHandler{
		Service:         s,
		ResponseService: rs,
	}
}

// CreateSession starts a new adaptive assessment session. The starting
// ability is carried over from the examinee's profile.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		ExamineeID string `json:"examinee_id" binding:"required"`
		FullName   string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	session, err := h.Service.CreateSession(context.Background(), req.ExamineeID, req.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"message":   "Session created successfully",
		"next_step": "Call /next endpoint to get the first item",
	})
}

// GetSession retrieves session state.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextItem returns the next item to administer, or the final summary when
// the assessment is complete.
func (h *SessionHandler) NextItem(c *gin.Context) {
	result, err := h.Service.NextItem(context.Background(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitResponse records an answer and returns the updated ability
// estimate. Correctness is decided server-side.
func (h *SessionHandler) SubmitResponse(c *gin.Context) {
	var input service.SubmitResponseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid response format",
			"details": err.Error(),
		})
		return
	}
	if input.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	result, err := h.Service.SubmitResponse(context.Background(), c.Param("id"), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetResult returns the finalized summary for a completed session.
func (h *SessionHandler) GetResult(c *gin.Context) {
	result, err := h.Service.GetResult(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No result for this session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSessionResponses lists the recorded responses for a session in
// administration order.
func (h *SessionHandler) GetSessionResponses(c *gin.Context) {
	responses, err := h.ResponseService.GetResponsesBySession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"responses": responses, "count": len(responses)})
}

// GetPoolInfo summarizes the calibrated item pool.
func (h *SessionHandler) GetPoolInfo(c *gin.Context) {
	info, err := h.Service.PoolInfo(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// respondError maps engine and service errors to HTTP statuses:
// identity errors are the caller's problem, duplicates are conflicts,
// anything else is internal.
func (h *SessionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, adaptive.ErrUnknownItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, adaptive.ErrDuplicateResponse):
		c.JSON(http.StatusConflict, gin.H{"error": "Item already answered in this session"})
	case errors.Is(err, adaptive.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session already complete"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
