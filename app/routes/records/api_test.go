package records

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	SetupRecordsRoutes(app)
	return app
}

func coachToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateJWT("u-1", "coach@club.test", "Ana", "Paredes", "", []string{"TEACHER"})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, token, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	return resp
}

func TestRecordsEndpointsRequireAuth(t *testing.T) {
	app := testApp(t)
	for _, path := range []string{"/api/records", "/api/records/best", "/api/records/latest"} {
		resp := doJSON(t, app, "", "GET", path, "")
		if resp.StatusCode != 401 {
			t.Fatalf("path %s: expected 401, got %d", path, resp.StatusCode)
		}
	}
}

func TestBestTimeRequiresSwimmerAndStyle(t *testing.T) {
	app := testApp(t)
	token := coachToken(t)

	cases := []string{
		"/api/records/best",
		"/api/records/best?swimmerId=s-1",
		"/api/records/best?style=freestyle",
	}
	for _, path := range cases {
		resp := doJSON(t, app, token, "GET", path, "")
		if resp.StatusCode != 400 {
			t.Fatalf("path %s: expected 400, got %d", path, resp.StatusCode)
		}
	}
}

// Create validation must reject before any write is attempted.
func TestCreateRecordValidation(t *testing.T) {
	app := testApp(t)
	token := coachToken(t)

	cases := map[string]string{
		"missing swimmer": `{"style":"freestyle","final_time":61200}`,
		"missing style":   `{"swimmer_id":"s-1","final_time":61200}`,
		"string time":     `{"swimmer_id":"s-1","style":"freestyle","final_time":"abc"}`,
		"missing time":    `{"swimmer_id":"s-1","style":"freestyle"}`,
		"negative time":   `{"swimmer_id":"s-1","style":"freestyle","final_time":-100}`,
		"bad achieved_at": `{"swimmer_id":"s-1","style":"freestyle","final_time":61200,"achieved_at":"yesterday"}`,
	}
	for name, body := range cases {
		resp := doJSON(t, app, token, "POST", "/api/records", body)
		if resp.StatusCode != 400 {
			t.Fatalf("case %s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}
