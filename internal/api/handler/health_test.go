package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newHealthTestContext(t *testing.T, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newHealthTestContext(t, "/health")

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("Liveness() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestReadinessHandler_AllHealthy(t *testing.T) {
	h := &ReadinessHandler{probes: []readinessProbe{
		{name: "mongodb", check: func(context.Context) error { return nil }},
		{name: "redis", check: func(context.Context) error { return nil }},
	}}

	c, rec := newHealthTestContext(t, "/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("overall status = %q, want ok", body.Status)
	}
	for _, name := range []string{"mongodb", "redis"} {
		if body.Dependencies[name].Status != "ok" {
			t.Errorf("%s status = %q, want ok", name, body.Dependencies[name].Status)
		}
	}
}

func TestReadinessHandler_DependencyDown(t *testing.T) {
	h := &ReadinessHandler{probes: []readinessProbe{
		{name: "mongodb", check: func(context.Context) error { return nil }},
		{name: "redis", check: func(context.Context) error { return errors.New("connection refused") }},
	}}

	c, rec := newHealthTestContext(t, "/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness() error = %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("overall status = %q, want degraded", body.Status)
	}
	if body.Dependencies["mongodb"].Status != "ok" {
		t.Errorf("mongodb status = %q, want ok", body.Dependencies["mongodb"].Status)
	}
	redisDep := body.Dependencies["redis"]
	if redisDep.Status != "unhealthy" {
		t.Errorf("redis status = %q, want unhealthy", redisDep.Status)
	}
	if redisDep.Error != "connection refused" {
		t.Errorf("redis error = %q, want connection refused", redisDep.Error)
	}
}
