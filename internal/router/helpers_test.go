package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mergington-high/activities-api/internal/domain"
	"github.com/mergington-high/activities-api/internal/handler"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/mergington-high/activities-api/internal/router"
	"github.com/mergington-high/activities-api/internal/service"
)

// newTestRouter wires the full HTTP stack against a fresh seeded store.
func newTestRouter(t *testing.T) (*gin.Engine, *repository.ActivityRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewActivityRepository()
	activityService := service.NewActivityService(repo)
	activityHandler := handler.NewActivityHandler(activityService)

	return router.SetupRoutes(activityHandler, t.TempDir()), repo
}

func performRequest(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupPath(activityName, email string) string {
	return "/activities/" + url.PathEscape(activityName) + "/signup?" + url.Values{"email": {email}}.Encode()
}

func unregisterPath(activityName, email string) string {
	return "/activities/" + url.PathEscape(activityName) + "/unregister?" + url.Values{"email": {email}}.Encode()
}

// getActivities fetches the roster listing and decodes it.
func getActivities(t *testing.T, r http.Handler) map[string]domain.Activity {
	t.Helper()

	w := performRequest(t, r, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var activities map[string]domain.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	return activities
}
