package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

// CandidateSelector is the slice of the feed use case the handler needs.
type CandidateSelector interface {
	NextCandidates(ctx context.Context, userID, limit int) ([]domain.UserSummary, error)
}

type FeedHandler struct {
	feedUseCase CandidateSelector
}

func NewFeedHandler(feedUseCase CandidateSelector) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
	}
}

// Candidates handles GET /feed/candidates
func (h *FeedHandler) Candidates(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	candidates, err := h.feedUseCase.NextCandidates(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
