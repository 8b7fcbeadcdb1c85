package telemetry

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStatusClass(t *testing.T) {
	cases := map[int]string{
		200: "2xx",
		201: "2xx",
		302: "3xx",
		400: "4xx",
		404: "4xx",
		500: "5xx",
		503: "5xx",
	}
	for code, expect := range cases {
		if got := statusClass(code); got != expect {
			t.Fatalf("code %d: expected %s, got %s", code, expect, got)
		}
	}
}

// Handler errors are rendered after the middleware returns, so the counter
// must classify them by the error's code, not the pending response status.
func TestMiddlewareCountsErrorResponses(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return fiber.ErrInternalServerError
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	counter := func(status string) float64 {
		return testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", status))
	}
	before4xx, before5xx, before2xx := counter("4xx"), counter("5xx"), counter("2xx")

	for _, path := range []string{"/missing", "/broken", "/ok"} {
		if _, err := app.Test(httptest.NewRequest("GET", path, nil)); err != nil {
			t.Fatalf("request error: %v", err)
		}
	}

	if got := counter("4xx") - before4xx; got != 1 {
		t.Fatalf("expected one 4xx increment, got %v", got)
	}
	if got := counter("5xx") - before5xx; got != 1 {
		t.Fatalf("expected one 5xx increment, got %v", got)
	}
	if got := counter("2xx") - before2xx; got != 1 {
		t.Fatalf("expected one 2xx increment, got %v", got)
	}
}
