package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/swipe"
)

// SwipeRecorder is the slice of the swipe use case the handler needs.
type SwipeRecorder interface {
	RecordSwipe(ctx context.Context, actorID int, req *swipe.SwipeRequest) (*swipe.SwipeResponse, error)
	ListMatches(ctx context.Context, userID int, statusFilter string, limit, offset int) ([]*swipe.MatchEntry, error)
}

type SwipeHandler struct {
	swipeUseCase SwipeRecorder
}

func NewSwipeHandler(swipeUseCase SwipeRecorder) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// RecordSwipe handles POST /swipes
func (h *SwipeHandler) RecordSwipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req swipe.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListMatches handles GET /matches
func (h *SwipeHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.swipeUseCase.ListMatches(c.Request.Context(), userID, status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": entries})
}
