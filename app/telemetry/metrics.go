package telemetry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled requests by method and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aquaclub_http_requests_total",
		Help: "Handled HTTP requests.",
	}, []string{"method", "status"})

	// LaneTimeWrites counts persisted lane time updates, single and batch.
	LaneTimeWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aquaclub_lane_time_writes_total",
		Help: "Recorded lane times.",
	})
)

// Handler exposes the default prometheus registry as a fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// Middleware counts every request after it is handled. When the handler
// returned an error the response status is not written yet — the fiber
// error handler runs later — so the class comes from the error itself.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
		}

		HTTPRequests.WithLabelValues(c.Method(), statusClass(code)).Inc()
		return err
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
