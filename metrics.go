package client

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bdr_client",
			Name:      "requests_total",
			Help:      "Completed HTTP requests by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bdr_client",
			Name:      "request_failures_total",
			Help:      "Requests that failed at the transport before any response.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every round trip. It sits above the retry layer
// so a retried request is observed once, with its final outcome.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(req.Method).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
