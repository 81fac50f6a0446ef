package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tandoor/config"
	"tandoor/infras/otel/mocks"
	"tandoor/shared/cache"
	cacheMocks "tandoor/shared/cache/mocks"
	"tandoor/shared/constant"
	"tandoor/transport/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAppMiddleware_AdminKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{name: "matching key passes", configured: "secret-key", provided: "secret-key", wantStatus: http.StatusOK},
		{name: "wrong key rejected", configured: "secret-key", provided: "other-key", wantStatus: http.StatusUnauthorized},
		{name: "missing key rejected", configured: "secret-key", provided: "", wantStatus: http.StatusUnauthorized},
		{name: "unset key keeps surface closed", configured: "", provided: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cfg := &config.Config{}
			cfg.App.AdminAPIKey = tt.configured

			m := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

			req := httptest.NewRequest(http.MethodGet, "/v1/admin", nil)
			if tt.provided != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.provided)
			}

			rec := httptest.NewRecorder()

			m.AdminKey(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAppMiddleware_RequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))

	t.Run("generates an id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		rec := httptest.NewRecorder()

		m.RequestID(okHandler()).ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("echoes the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-123")

		rec := httptest.NewRecorder()

		m.RequestID(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	newConfig := func(enabled bool, maxReqs int) *config.Config {
		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = enabled
		cfg.App.RateLimiter.MaxRequests = maxReqs
		cfg.App.RateLimiter.WindowSeconds = 60

		return cfg
	}

	t.Run("disabled limiter passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		m := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig(false, 1), mockCache)

		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		rec := httptest.NewRecorder()

		m.RateLimit()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request within window passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), 1, 60).
			Return(nil)

		m := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig(true, 5), mockCache)

		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		rec := httptest.NewRecorder()

		m.RateLimit()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get(constant.RequestHeaderRateLimit))
	})

	t.Run("request over the limit is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, value any) error {
				count := value.(*int)
				*count = 5

				return nil
			})

		m := middleware.NewAppMiddleware(mocks.NewOtel(), newConfig(true, 5), mockCache)

		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		rec := httptest.NewRecorder()

		m.RateLimit()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}
