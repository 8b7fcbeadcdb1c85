package lanes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aquaclub/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func TestValidateFinalTime(t *testing.T) {
	if err := validateFinalTime(nil); err == nil {
		t.Fatalf("expected missing time to error")
	}

	negative := int64(-1)
	if err := validateFinalTime(&negative); err == nil {
		t.Fatalf("expected negative time to error")
	}

	zero := int64(0)
	if err := validateFinalTime(&zero); err != nil {
		t.Fatalf("expected zero to be valid: %v", err)
	}

	valid := int64(62350)
	if err := validateFinalTime(&valid); err != nil {
		t.Fatalf("expected %d to be valid: %v", valid, err)
	}
}

func TestValidateSaveTimes(t *testing.T) {
	if _, err := validateSaveTimes(saveTimesRequest{}); err == nil {
		t.Fatalf("expected empty batch to error")
	}

	ms := func(v int64) *int64 { return &v }

	req := saveTimesRequest{Times: []laneTimeEntry{
		{LaneID: "lane-1", FinalTime: ms(62350)},
		{LaneID: "lane-2", FinalTime: ms(59900)},
	}}

	times, err := validateSaveTimes(req)
	if err != nil {
		t.Fatalf("expected valid batch: %v", err)
	}
	if len(times) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(times))
	}
	if times[0].LaneID != "lane-1" || times[0].FinalTime != 62350 {
		t.Fatalf("unexpected first entry: %+v", times[0])
	}

	req.Times[1].FinalTime = nil
	if _, err := validateSaveTimes(req); err == nil {
		t.Fatalf("expected missing time in batch to error")
	}

	req.Times[1].FinalTime = ms(1000)
	req.Times[1].LaneID = ""
	if _, err := validateSaveTimes(req); err == nil {
		t.Fatalf("expected missing laneId in batch to error")
	}
}

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	SetupLanesRoutes(app)
	return app
}

func staffToken(t *testing.T) string {
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

func TestRecordTimeRequiresAuth(t *testing.T) {
	app := testApp(t)
	resp := doJSON(t, app, "", "POST", "/api/lanes/l-1/time", `{"finalTime":62350}`)
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRecordTimeForbiddenForParents(t *testing.T) {
	app := testApp(t)
	token, err := auth.GenerateJWT("u-2", "parent@club.test", "Luis", "Soto", "", []string{"PARENT"})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	resp := doJSON(t, app, token, "POST", "/api/lanes/l-1/time", `{"finalTime":62350}`)
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

// Validation failures must reject before any database work, so these run
// against a handler with no database behind it.
func TestRecordTimeRejectsNonNumeric(t *testing.T) {
	app := testApp(t)
	token := staffToken(t)

	cases := map[string]string{
		"string value": `{"finalTime":"abc"}`,
		"missing":      `{}`,
		"null":         `{"finalTime":null}`,
		"negative":     `{"finalTime":-5}`,
	}
	for name, body := range cases {
		resp := doJSON(t, app, token, "POST", "/api/lanes/l-1/time", body)
		if resp.StatusCode != 400 {
			t.Fatalf("case %s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}

func TestSaveHeatTimesRejectsEmptyBatch(t *testing.T) {
	app := testApp(t)
	token := staffToken(t)

	cases := map[string]string{
		"empty array":  `{"times":[]}`,
		"missing":      `{}`,
		"bad time":     `{"times":[{"laneId":"l-1","finalTime":"abc"}]}`,
		"missing lane": `{"times":[{"finalTime":62350}]}`,
	}
	for name, body := range cases {
		resp := doJSON(t, app, token, "POST", "/api/heats/h-1/save-times", body)
		if resp.StatusCode != 400 {
			t.Fatalf("case %s: expected 400, got %d", name, resp.StatusCode)
		}
	}
}

func TestGetLanesRequiresEventID(t *testing.T) {
	app := testApp(t)
	resp := doJSON(t, app, staffToken(t), "GET", "/api/lanes", "")
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 without eventId, got %d", resp.StatusCode)
	}
}
