package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	cvRenderedTotal  atomic.Uint64
	cvDeliveredTotal atomic.Uint64
	cvRejectedTotal  atomic.Uint64
	cvFailedTotal    atomic.Uint64
	cvOverflowTotal  atomic.Uint64

	renderDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncRendered counts a CV turned into a PDF.
func IncRendered() {
	cvRenderedTotal.Add(1)
}

// IncDelivered counts a CV handed to the mail transport.
func IncDelivered() {
	cvDeliveredTotal.Add(1)
}

// IncRejected counts a request refused for configuration or recipient problems.
func IncRejected() {
	cvRejectedTotal.Add(1)
}

// IncFailed counts a request that ended in a server error.
func IncFailed() {
	cvFailedTotal.Add(1)
}

// IncOverflow counts a rendered CV whose content ran into the footer.
func IncOverflow() {
	cvOverflowTotal.Add(1)
}

// ObserveRenderDurationMs records a render duration in milliseconds.
func ObserveRenderDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	renderDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "cv_rendered_total", "Total CVs rendered", cvRenderedTotal.Load())
	writeCounter(&buf, "cv_delivered_total", "Total CVs delivered", cvDeliveredTotal.Load())
	writeCounter(&buf, "cv_rejected_total", "Total requests rejected with 400", cvRejectedTotal.Load())
	writeCounter(&buf, "cv_failed_total", "Total requests failed with 500", cvFailedTotal.Load())
	writeCounter(&buf, "cv_overflow_total", "Total CVs that overflowed the page", cvOverflowTotal.Load())
	writeHistogram(&buf, "cv_render_duration_ms", "CV render duration in milliseconds", renderDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
