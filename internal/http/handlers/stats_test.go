package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	h := &Handler{Stats: &fakeStatsStore{
		summary: func(ctx context.Context) (domain.Summary, error) {
			return domain.NewSummary(1, 1, 0), nil
		},
	}}
	r := newTestRouter(h)

	w := doRequest(r, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["totalUsers"])
	assert.Equal(t, float64(1), got["totalTasks"])
	assert.Equal(t, float64(0), got["completedTasks"])
	assert.Equal(t, float64(1), got["pendingTasks"])
	assert.Equal(t, float64(0), got["completionRate"])
}

func TestDiscoveryListsRoutes(t *testing.T) {
	r := newTestRouter(&Handler{})

	w := doRequest(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/users")
	assert.Contains(t, w.Body.String(), "/tasks")
	assert.Contains(t, w.Body.String(), "/stats")
}

func TestUnmatchedRouteIs404(t *testing.T) {
	r := newTestRouter(&Handler{})

	w := doRequest(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "endpoint not found")
}
