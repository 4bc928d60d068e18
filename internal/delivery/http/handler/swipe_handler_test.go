package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/usecase/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSwipeRecorder struct {
	recordResp *swipe.SwipeResponse
	recordErr  error
	entries    []*swipe.MatchEntry
	listErr    error

	gotActorID int
	gotReq     *swipe.SwipeRequest
	gotStatus  string
}

func (s *stubSwipeRecorder) RecordSwipe(_ context.Context, actorID int, req *swipe.SwipeRequest) (*swipe.SwipeResponse, error) {
	s.gotActorID = actorID
	s.gotReq = req
	return s.recordResp, s.recordErr
}

func (s *stubSwipeRecorder) ListMatches(_ context.Context, _ int, statusFilter string, _, _ int) ([]*swipe.MatchEntry, error) {
	s.gotStatus = statusFilter
	return s.entries, s.listErr
}

func newSwipeTestRouter(stub *stubSwipeRecorder, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidations()
	router := gin.New()

	h := NewSwipeHandler(stub)
	authed := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
	router.POST("/swipes", authed, h.RecordSwipe)
	router.GET("/matches", authed, h.ListMatches)
	return router
}

func TestRecordSwipeReturnsCreated(t *testing.T) {
	stub := &stubSwipeRecorder{
		recordResp: &swipe.SwipeResponse{
			Decision: &domain.SwipeDecision{
				ID:       1,
				ActorID:  10,
				TargetID: 20,
				Action:   domain.ActionLike,
				Status:   domain.StatusPending,
			},
		},
	}
	router := newSwipeTestRouter(stub, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/swipes",
		strings.NewReader(`{"target_id": 20, "action": "LIKE"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 10, stub.gotActorID)
	assert.Equal(t, 20, stub.gotReq.TargetID)

	var body swipe.SwipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Mutual)
	assert.Equal(t, domain.StatusPending, body.Decision.Status)
}

func TestRecordSwipeRejectsMalformedBody(t *testing.T) {
	router := newSwipeTestRouter(&stubSwipeRecorder{}, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader(`{"target_id":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordSwipeErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate decision", domain.ErrDecisionExists, http.StatusConflict},
		{"self swipe", domain.ErrSelfSwipe, http.StatusBadRequest},
		{"unknown user", domain.ErrUserNotFound, http.StatusNotFound},
		{"storage down", domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newSwipeTestRouter(&stubSwipeRecorder{recordErr: tc.err}, 10)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/swipes",
				strings.NewReader(`{"target_id": 20, "action": "LIKE"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestListMatchesPassesStatusFilter(t *testing.T) {
	stub := &stubSwipeRecorder{entries: []*swipe.MatchEntry{}}
	router := newSwipeTestRouter(stub, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matches?status=MATCHED", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MATCHED", stub.gotStatus)
}

func TestListMatchesRejectsBadStatus(t *testing.T) {
	stub := &stubSwipeRecorder{listErr: domain.ErrInvalidInput}
	router := newSwipeTestRouter(stub, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/matches?status=BLOCKED", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
