package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confirmly/dashboard-api/internal/handler"
	"github.com/confirmly/dashboard-api/internal/repository"
	"github.com/confirmly/dashboard-api/internal/repository/memory"
	"github.com/confirmly/dashboard-api/internal/repository/postgres"
	dashboardService "github.com/confirmly/dashboard-api/internal/service/dashboard"
)

var testToday = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

func setupRouter(t *testing.T, store repository.Storage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	h := NewHandler(dashboardService.NewService(store))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func mockStore(t *testing.T) repository.Storage {
	t.Helper()
	store, err := memory.NewStore(memory.DefaultGeneratorConfig(), memory.WithClock(func() time.Time { return testToday }))
	require.NoError(t, err)
	return store
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func parseData(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	return resp.Data
}

func TestGetMetrics(t *testing.T) {
	engine := setupRouter(t, mockStore(t))

	w := get(engine, "/api/v1/dashboard/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	data := parseData(t, w).(map[string]interface{})
	assert.Equal(t, "2024-01-15", data["date"])
	assert.Positive(t, data["total_sent"].(float64))
	assert.Positive(t, data["response_rate"].(float64))
}

func TestGetChart(t *testing.T) {
	engine := setupRouter(t, mockStore(t))

	w := get(engine, "/api/v1/dashboard/chart?days=7")
	require.Equal(t, http.StatusOK, w.Code)

	points := parseData(t, w).([]interface{})
	require.Len(t, points, 7)

	first := points[0].(map[string]interface{})
	assert.Equal(t, "2024-01-09", first["date"])
	last := points[6].(map[string]interface{})
	assert.Equal(t, "2024-01-15", last["date"])
}

func TestGetChartDefaultsToSevenDays(t *testing.T) {
	engine := setupRouter(t, mockStore(t))

	w := get(engine, "/api/v1/dashboard/chart")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseData(t, w).([]interface{}), 7)
}

func TestGetChartRejectsBadDays(t *testing.T) {
	engine := setupRouter(t, mockStore(t))

	for _, q := range []string{"days=0", "days=-5", "days=9999", "days=abc"} {
		w := get(engine, "/api/v1/dashboard/chart?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
	}
}

func TestGetCategories(t *testing.T) {
	engine := setupRouter(t, mockStore(t))

	w := get(engine, "/api/v1/dashboard/categories")
	require.Equal(t, http.StatusOK, w.Code)

	categories := parseData(t, w).([]interface{})
	require.Len(t, categories, 4)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Confirmed", first["name"])
	assert.Equal(t, "#10b981", first["color"])
}

func TestStubBackendMapsToNotImplemented(t *testing.T) {
	engine := setupRouter(t, postgres.NewStorage(nil))

	w := get(engine, "/api/v1/dashboard/metrics")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
