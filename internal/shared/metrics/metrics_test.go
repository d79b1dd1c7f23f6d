package metrics

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "h", "test", h.Snapshot())
	out := buf.String()
	for _, want := range []string{
		`h_bucket{le="10"} 1`,
		`h_bucket{le="100"} 2`,
		`h_bucket{le="+Inf"} 3`,
		"h_sum 555",
		"h_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("histogram output missing %q:\n%s", want, out)
		}
	}
}

func TestHandlerRendersCounters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncRendered()
	IncOverflow()
	ObserveRenderDurationMs(12.5)

	r := gin.New()
	r.GET("/metrics", Handler())
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		"# TYPE cv_rendered_total counter",
		"cv_delivered_total ",
		"cv_overflow_total ",
		"# TYPE cv_render_duration_ms histogram",
		`cv_render_duration_ms_bucket{le="25"}`,
		`cv_render_duration_ms_bucket{le="+Inf"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}
