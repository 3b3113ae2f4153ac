package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokidex_llm_requests_total",
			Help: "Total number of generation requests.",
		},
		[]string{"backend", "model", "status", "media"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokidex_llm_request_duration_seconds",
			Help:    "Histogram of generation request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "model"},
	)
	responseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokidex_llm_response_bytes",
			Help:    "Histogram of generated text sizes.",
			Buckets: prometheus.ExponentialBuckets(64, 2, 10), // 64 .. 32768
		},
		[]string{"backend", "model"},
	)
)

func observe(backend, model string, input *GenerateInput, start time.Time, text string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	media := "false"
	if input != nil && input.Media != nil {
		media = "true"
	}

	requestsTotal.With(prometheus.Labels{"backend": backend, "model": model, "status": status, "media": media}).Inc()
	requestDuration.With(prometheus.Labels{"backend": backend, "model": model}).Observe(time.Since(start).Seconds())
	if err == nil {
		responseBytes.With(prometheus.Labels{"backend": backend, "model": model}).Observe(float64(len(text)))
	}
}
