// /internal/handler/metrics.go
package handler

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/gin-gonic/gin"
)

// Latencies are tracked in microseconds, up to one minute.
const maxLatencyMicros = int64(time.Minute / time.Microsecond)

// LatencyRecorder keeps an HDR histogram of request durations.
type LatencyRecorder struct {
	mu        sync.Mutex
	histogram *hdrhistogram.Histogram
}

func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{histogram: hdrhistogram.New(1, maxLatencyMicros, 3)}
}

type LatencySnapshot struct {
	Count      int64   `json:"count"`
	MeanMicros float64 `json:"meanMicros"`
	P50Micros  int64   `json:"p50Micros"`
	P95Micros  int64   `json:"p95Micros"`
	P99Micros  int64   `json:"p99Micros"`
	MaxMicros  int64   `json:"maxMicros"`
}

// Record adds one duration, clamped to the trackable range.
func (r *LatencyRecorder) Record(d time.Duration) {
	us := d.Microseconds()
	us = max(us, 1)
	us = min(us, maxLatencyMicros)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.histogram.RecordValue(us); err != nil {
		log.Printf("Could not record request latency: %v", err)
	}
}

func (r *LatencyRecorder) Snapshot() LatencySnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LatencySnapshot{
		Count:      r.histogram.TotalCount(),
		MeanMicros: r.histogram.Mean(),
		P50Micros:  r.histogram.ValueAtQuantile(50),
		P95Micros:  r.histogram.ValueAtQuantile(95),
		P99Micros:  r.histogram.ValueAtQuantile(99),
		MaxMicros:  r.histogram.Max(),
	}
}

// Middleware times every request that passes through it.
func (r *LatencyRecorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		r.Record(time.Since(start))
	}
}

func (r *LatencyRecorder) Show(c *gin.Context) {
	c.JSON(http.StatusOK, r.Snapshot())
}
