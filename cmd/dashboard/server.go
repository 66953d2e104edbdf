package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	perf "github.com/Paramesht/aircraft-performance-simulator"
	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/websocket"
)

// server is the presentation boundary of the performance model: it collects
// numeric inputs and serves the metric set, nothing else. All layout, gauges
// and styling live in whatever front end consumes this API.
type server struct {
	fleet map[string]perf.Aircraft
}

func newServer(extra []perf.Aircraft) *server {
	fleet := make(map[string]perf.Aircraft)
	for _, ac := range perf.BuiltinAircraft() {
		fleet[strings.ToLower(ac.Name)] = ac
	}
	for _, ac := range extra {
		fleet[strings.ToLower(ac.Name)] = ac
	}
	return &server{fleet}
}

func (s *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/aircraft", s.handleAircraft)
	r.Get("/aircraft/{name}", s.handleAircraftByName)
	r.Post("/evaluate", s.handleEvaluate)
	r.Get("/sweep", s.handleSweep)
	r.Get("/ws", s.handleWS)

	return r
}

func (s *server) lookup(name string) (perf.Aircraft, bool) {
	ac, ok := s.fleet[strings.ToLower(name)]
	return ac, ok
}

// quietEvaluator returns an evaluator that does not write logfmt lines into
// the HTTP server's stdout for every request.
func (s *server) quietEvaluator(ac perf.Aircraft) *perf.Evaluator {
	ev := perf.NewEvaluator(ac)
	ev.SetLogger(kitlog.NewLogfmtLogger(ioutil.Discard))
	return ev
}

func (s *server) handleAircraft(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(s.fleet))
	for _, ac := range s.fleet {
		names = append(names, ac.Name)
	}
	sort.Strings(names)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(names)
}

func (s *server) handleAircraftByName(w http.ResponseWriter, r *http.Request) {
	ac, ok := s.lookup(chi.URLParam(r, "name"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown aircraft")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ac)
}

// evaluateRequest is one dashboard input set: an aircraft name plus the
// flight-condition sliders.
type evaluateRequest struct {
	Aircraft string `json:"aircraft"`
	perf.FlightCondition
}

func (s *server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	ac, ok := s.lookup(req.Aircraft)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown aircraft")
		return
	}
	res, err := s.quietEvaluator(ac).Evaluate(req.FlightCondition)
	if err != nil {
		// No partial or stale metrics on invalid input, only the message.
		if perf.IsInvalidInput(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (s *server) handleSweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ac, ok := s.lookup(q.Get("aircraft"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown aircraft")
		return
	}
	fc := perf.FlightCondition{
		MassKg:     queryFloat(q.Get("mass"), 0),
		AltitudeFt: queryFloat(q.Get("altitude"), 0),
		Mach:       queryFloat(q.Get("mach"), 0),
		FuelRatio:  queryFloat(q.Get("fuelRatio"), 1.5),
		Throttle:   queryFloat(q.Get("throttle"), 1),
	}
	cfg := perf.SweepConfig{
		FromFt: queryFloat(q.Get("from"), 0),
		ToFt:   queryFloat(q.Get("to"), 43000),
		Steps:  int(queryFloat(q.Get("steps"), 50)),
	}
	w.Header().Set("Content-Type", "text/csv")
	if err := s.quietEvaluator(ac).WriteAltitudeSweep(w, fc, cfg); err != nil {
		// Headers may already be gone; the CSV stream just stops.
		log.Printf("dashboard: sweep: %v", err)
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// handleWS serves the live recompute loop: every client message is a fresh
// input set and every reply a fresh evaluation. Nothing is retained between
// messages.
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: upgrade: %v", err)
		return
	}
	defer conn.Close()
	for {
		var req evaluateRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		ac, ok := s.lookup(req.Aircraft)
		if !ok {
			if err := conn.WriteJSON(map[string]string{"error": "unknown aircraft"}); err != nil {
				return
			}
			continue
		}
		res, err := s.quietEvaluator(ac).Evaluate(req.FlightCondition)
		if err != nil {
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(res); err != nil {
			return
		}
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func queryFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
