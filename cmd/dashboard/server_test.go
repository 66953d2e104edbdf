package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perf "github.com/Paramesht/aircraft-performance-simulator"
)

func testRouter() http.Handler {
	return newServer(nil).router()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
}

func TestListAircraft(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/aircraft", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("aircraft list returned %d", rec.Code)
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("list is not JSON: %s", err)
	}
	if len(names) != len(perf.BuiltinAircraft()) {
		t.Fatalf("expected %d aircraft, got %v", len(perf.BuiltinAircraft()), names)
	}
}

func TestAircraftByName(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/aircraft/b777-300", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("aircraft lookup returned %d", rec.Code)
	}
	var ac perf.Aircraft
	if err := json.Unmarshal(rec.Body.Bytes(), &ac); err != nil {
		t.Fatalf("aircraft is not JSON: %s", err)
	}
	if ac.WingArea != 427 {
		t.Fatalf("wrong aircraft returned: %+v", ac)
	}

	rec = httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/aircraft/concorde", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown aircraft should 404, got %d", rec.Code)
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{
		"aircraft":    "B777-300",
		"mass_kg":     250000,
		"altitude_ft": 35000,
		"mach":        0.84,
		"fuel_ratio":  1.5,
		"throttle":    1,
	})
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("POST", "/evaluate", bytes.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("evaluate returned %d: %s", rec.Code, rec.Body.String())
	}
	var res perf.PerformanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("result is not JSON: %s", err)
	}
	if res.LiftToDrag < 15 || res.LiftToDrag > 20 {
		t.Fatalf("cruise L/D out of band: %f", res.LiftToDrag)
	}
}

func TestEvaluateEndpointRejectsInvalidInput(t *testing.T) {
	// A fuel ratio of 1 makes the Breguet logarithm undefined: the API must
	// answer 400 with a message and no metrics.
	body, _ := json.Marshal(map[string]interface{}{
		"aircraft":    "B777-300",
		"mass_kg":     250000,
		"altitude_ft": 35000,
		"mach":        0.84,
		"fuel_ratio":  1.0,
		"throttle":    1,
	})
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("POST", "/evaluate", bytes.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid input should 400, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error payload is not JSON: %s", err)
	}
	if payload["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestSweepEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sweep?aircraft=B777-300&mass=250000&altitude=35000&mach=0.84&from=30000&to=43000&steps=10", nil)
	testRouter().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("sweep returned %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("sweep content type %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("altitude_ft")) {
		t.Fatalf("sweep output missing header: %q", rec.Body.String())
	}
}
