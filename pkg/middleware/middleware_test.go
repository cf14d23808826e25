package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-target-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleEmployee, UserActorID: "A1", UserCapability: domain.CapabilitySales}

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(*mocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "healthcheck é público",
			path:       "/healthcheck",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "caminho público informado",
			path:       "/metrics",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem cabeçalho",
			path:       "/v1/targets",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "sem prefixo Bearer",
			path:       "/v1/targets",
			header:     "abc",
			setup:      func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/targets",
			header: "Bearer expired",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("expired").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/v1/targets",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authenticator := mocks.NewMockAuthenticator(ctrl)
			tt.setup(authenticator)

			var seen *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator, "/metrics")(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.header == "Bearer good" {
				assert.Equal(t, claims, seen)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{"admin em rota de admin", &domain.Claims{UserRoleID: domain.RoleAdmin}, AdminOnly(), http.StatusOK},
		{"supervisor em rota de admin", &domain.Claims{UserRoleID: domain.RoleSupervisor}, AdminOnly(), http.StatusForbidden},
		{"supervisor gerencia metas", &domain.Claims{UserRoleID: domain.RoleSupervisor}, AdminOrSupervisor(), http.StatusOK},
		{"colaborador não gerencia metas", &domain.Claims{UserRoleID: domain.RoleEmployee}, AdminOrSupervisor(), http.StatusForbidden},
		{"colaborador em rota comum", &domain.Claims{UserRoleID: domain.RoleEmployee}, AllRoles(), http.StatusOK},
		{"sem usuário", nil, AllRoles(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware_RecordsRoutePattern(t *testing.T) {
	registry := prometheus.NewRegistry()
	manager := metrics.NewManager(metrics.WithRegistry(registry))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetRoutePattern(r, "/v1/targets/:id")
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/targets/T1", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	expected := `
# HELP sales_targets_http_requests_total Requisições HTTP por método, rota e status
# TYPE sales_targets_http_requests_total counter
sales_targets_http_requests_total{method="DELETE",route="/v1/targets/:id",status="204"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "sales_targets_http_requests_total")
	assert.NoError(t, err)
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
