package sleeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sleeper_upstream_requests_total",
	Help: "Requests to the Sleeper API by endpoint and HTTP status (or \"error\" on transport failure).",
}, []string{"endpoint", "status"})
