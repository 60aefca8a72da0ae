package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	h := newTestServer(t)

	var body map[string]string
	rec := doJSON(t, h, http.MethodGet, "/health", "", nil, &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	if body["status"] != "ok" || body["service"] != "rentdesk" {
		t.Errorf("health body = %+v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t)

	// Generate at least one request first.
	doJSON(t, h, http.MethodGet, "/health", "", nil, nil)

	rec := doJSON(t, h, http.MethodGet, "/metrics", "", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rentdesk_http_requests_total") {
		t.Error("metrics output missing rentdesk_http_requests_total")
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/health", "", nil, nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry an X-Request-ID header")
	}
}

func TestInvalidJSONBody(t *testing.T) {
	h := newTestServer(t)

	req := newRawRequest(t, http.MethodPost, "/api/v1/auth/register", "{not json")
	rec := record(h, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON status = %d, want 400", rec.Code)
	}
}

func TestNewRequiresServices(t *testing.T) {
	cfg := newTestConfig(t)

	if _, err := New(Deps{Config: cfg}); err == nil {
		t.Error("New without services should fail")
	}
	if _, err := New(Deps{}); err == nil {
		t.Error("New without config should fail")
	}
}
