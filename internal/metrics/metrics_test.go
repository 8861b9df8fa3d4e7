package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/api/bookings", http.MethodPost, "201"))
	ObserveRequest("/api/bookings", http.MethodPost, http.StatusCreated, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("/api/bookings", http.MethodPost, "201"))
	if after != before+1 {
		t.Fatalf("requests counter = %v, want %v", after, before+1)
	}
}

func TestHandlerExposesNamespace(t *testing.T) {
	Conflicts.WithLabelValues("email", "precheck").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admissions_conflicts_total") {
		t.Fatalf("metrics output misses admissions_conflicts_total")
	}
}
