package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/infrastructure/http/handlers"
)

const testSecret = "router-secret"

type stubService struct{}

func (stubService) List(context.Context, domain.Category, *domain.DateFilter) ([]domain.Record, error) {
	return nil, nil
}

func (stubService) Stats(context.Context, domain.Category) (domain.Stats, error) {
	return domain.Stats{}, nil
}

func (stubService) Query(_ context.Context, q ports.ListQuery) (*ports.ListResult, error) {
	return &ports.ListResult{Category: q.Category, PageSize: q.PageSize}, nil
}

func (stubService) Export(context.Context, domain.Category, domain.ExportFormat, *domain.DateFilter) (string, error) {
	return "https://files.test/x.csv", nil
}

func (stubService) Schedule(context.Context, domain.ScheduleRequest) (*domain.ScheduleAck, error) {
	return nil, domain.ErrInvalidCadence
}

func (stubService) Download(context.Context, ports.ListQuery, domain.ExportFormat) (*ports.Download, error) {
	return nil, domain.ErrUnsupportedFormat
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(secret string) http.Handler {
	reg := prometheus.NewRegistry()
	return NewRouter(Deps{
		Service:    stubService{},
		Ready:      map[string]handlers.Pinger{"store": okPinger{}},
		JWTSecret:  secret,
		Logger:     zerolog.Nop(),
		Registerer: reg,
		Gatherer:   reg,
	})
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "tester", "role": role}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + s
}

func TestRouter(t *testing.T) {
	exportBody := `{"format":"csv"}`

	tests := []struct {
		name     string
		secret   string
		method   string
		path     string
		body     string
		auth     string
		wantCode int
		wantBody string
	}{
		{name: "liveness", secret: testSecret, method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "readiness", secret: testSecret, method: http.MethodGet, path: "/health/ready", wantCode: http.StatusOK},
		{name: "metrics", secret: testSecret, method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
		{name: "no token", secret: testSecret, method: http.MethodGet, path: "/v1/reports/task", wantCode: http.StatusUnauthorized},
		{name: "viewer reads", secret: testSecret, method: http.MethodGet, path: "/v1/reports/task", auth: "viewer", wantCode: http.StatusOK},
		{name: "viewer cannot export", secret: testSecret, method: http.MethodPost, path: "/v1/reports/task/export", body: exportBody, auth: "viewer", wantCode: http.StatusForbidden},
		{name: "manager exports", secret: testSecret, method: http.MethodPost, path: "/v1/reports/task/export", body: exportBody, auth: "manager", wantCode: http.StatusAccepted},
		{name: "unknown role", secret: testSecret, method: http.MethodGet, path: "/v1/reports/task", auth: "guest", wantCode: http.StatusForbidden},
		{name: "auth disabled", method: http.MethodGet, path: "/v1/reports/categories", wantCode: http.StatusOK},
		{name: "unknown category", method: http.MethodGet, path: "/v1/reports/invoice/stats", wantCode: http.StatusNotFound, wantBody: `"error":"unknown report category"`},
		{name: "service error mapped", method: http.MethodPost, path: "/v1/reports/task/schedule",
			body: `{"cadence":"daily","recipients":["a@example.com"],"format":"csv"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "pdf download rejected", method: http.MethodGet, path: "/v1/reports/task/download?format=pdf", wantCode: http.StatusUnprocessableEntity},
		{name: "unknown route", method: http.MethodGet, path: "/v2/nothing", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.secret)

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			if tt.auth != "" {
				req.Header.Set("Authorization", bearer(t, tt.auth))
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("body %s does not contain %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
