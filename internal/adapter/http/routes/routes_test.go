package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estimate_agent/internal/adapter/http/handlers/mocks"
	"estimate_agent/internal/app"
	"estimate_agent/internal/config"
	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/infrastructure/metrics"
	mock_interfaces "estimate_agent/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, apiKeyRequired bool) (*app.App, *mocks.MockIEstimateUseCase, *mock_interfaces.MockIAPIKeyRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	estimates := mocks.NewMockIEstimateUseCase(ctrl)
	keys := mock_interfaces.NewMockIAPIKeyRepository(ctrl)

	a := &app.App{
		Config: &config.Config{
			Env:            "test",
			APIVersion:     "v1",
			RateLimit:      config.RateLimitConfig{Max: 100, Window: time.Minute},
			APIKeyRequired: apiKeyRequired,
		},
		Metrics:      metrics.New(),
		Estimates:    estimates,
		Requirements: mocks.NewMockIRequirementUseCase(ctrl),
		Questions:    mocks.NewMockIQuestionUseCase(ctrl),
		RAG:          mocks.NewMockIRAGUseCase(ctrl),
		APIKeys:      keys,
	}
	return a, estimates, keys
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("health", func(t *testing.T) {
		a, _, _ := newTestApp(t, false)
		w := get(NewRouter(a), "/api/health", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("estimates are served under v1", func(t *testing.T) {
		a, estimates, _ := newTestApp(t, false)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1", SessionID: "sess-1"}, nil)

		w := get(NewRouter(a), "/api/v1/estimates/sess-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		a, _, _ := newTestApp(t, false)
		w := get(NewRouter(a), "/api/v1/nope", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"reason":"NOT_FOUND"`) {
			t.Fatalf("expected not found envelope, got %s", w.Body.String())
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		a, _, _ := newTestApp(t, false)
		w := get(NewRouter(a), "/api/v2/estimates", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		a, _, _ := newTestApp(t, false)
		r := NewRouter(a)
		get(r, "/api/health", nil)

		w := get(r, "/metrics", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "estimate_agent_http_requests_total") {
			t.Fatalf("expected http metrics in exposition")
		}
	})

	t.Run("api key required", func(t *testing.T) {
		a, estimates, keys := newTestApp(t, true)
		r := NewRouter(a)

		if w := get(r, "/api/v1/estimates/sess-1", nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without key, got %d", w.Code)
		}

		keys.EXPECT().FindActive(gomock.Any(), "good").Return(entities.APIKey{ID: "k1", IsActive: true}, nil)
		estimates.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.Estimate{ID: "est-1"}, nil)
		if w := get(r, "/api/v1/estimates/sess-1", map[string]string{"X-API-Key": "good"}); w.Code != http.StatusOK {
			t.Fatalf("expected 200 with key, got %d", w.Code)
		}

		if w := get(r, "/api/health", nil); w.Code != http.StatusOK {
			t.Fatalf("health must stay public, got %d", w.Code)
		}
	})
}
