package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollector_RecordsAndExposes(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, "/api/v1/complaints", 200, 5*time.Millisecond)
	c.RecordRequest(http.MethodPost, "/api/v1/auth/login", 400, time.Millisecond)
	c.RecordAuthFailure("login")
	c.RecordComplaintFiled()
	c.RecordAccountDeleted()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics endpoint status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"rentdesk_http_requests_total",
		"rentdesk_auth_failures_total",
		"rentdesk_complaints_filed_total",
		"rentdesk_accounts_deleted_total",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %s", want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
	}

	for _, tt := range tests {
		if got := statusLabel(tt.status); got != tt.want {
			t.Errorf("statusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
