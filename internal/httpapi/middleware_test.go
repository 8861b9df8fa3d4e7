package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Spok95/admissions-site/internal/ctxutil"
	"github.com/Spok95/admissions-site/internal/metrics"
)

func TestRequestIDKeepsCallerValue(t *testing.T) {
	var seen string
	h := withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ctxutil.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("request id = %q / %q, want abc-123", seen, rec.Header().Get(requestIDHeader))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "abc-123" || rec.Header().Get(requestIDHeader) != seen {
		t.Fatalf("expected a fresh request id, got %q", seen)
	}
}

func TestRecoverPanicsReturns500(t *testing.T) {
	api := NewAPI(nil, nil, nil, nil)
	before := testutil.ToFloat64(metrics.HandlerErrors)

	h := api.instrument("/boom", api.recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := testutil.ToFloat64(metrics.HandlerErrors); got != before+1 {
		t.Fatalf("handler errors = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/boom", http.MethodGet, "500")); got != 1 {
		t.Fatalf("request counter = %v, want 1", got)
	}
}

func TestStatusRecorderDefaultsTo200(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if _, err := rec.Write([]byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	rec.WriteHeader(http.StatusTeapot)
	if rec.status() != http.StatusOK || rec.bytesWritten != 2 {
		t.Fatalf("status = %d, bytes = %d", rec.status(), rec.bytesWritten)
	}
}
