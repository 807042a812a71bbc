// Package api exposes the advisor over HTTP: server-rendered pages, a JSON
// API mirroring them, health, and metrics.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fruitvolt/fruitvolt/internal/engine"
	"github.com/fruitvolt/fruitvolt/internal/store"
	"github.com/fruitvolt/fruitvolt/internal/weather"
)

//go:embed templates/*
var templateFS embed.FS

type Server struct {
	engine *engine.Engine
	source *weather.Source
	store  *store.Store
	port   string
	tmpl   *template.Template
}

func NewServer(eng *engine.Engine, source *weather.Source, st *store.Store, port string) *Server {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
	return &Server{
		engine: eng,
		source: source,
		store:  st,
		port:   port,
		tmpl:   tmpl,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/calculator", s.handleCalculator)
	mux.HandleFunc("/api/recommendations/", s.handleAPIRecommendations)
	mux.HandleFunc("/api/calculate", s.handleAPICalculate)
	mux.HandleFunc("/api/devices", s.handleAPIDevices)
	mux.HandleFunc("/api/stats", s.handleAPIStats)
	mux.HandleFunc("/api/clear_cache", s.handleAPIClearCache)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

type HealthStatus struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	LiveProvider bool   `json:"live_provider"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{
		Status:       "ok",
		Database:     "ok",
		LiveProvider: s.source.HasLiveProvider(),
	}

	if err := s.store.Ping(); err != nil {
		health.Status = "degraded"
		health.Database = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Printf("health: write response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// mockParam parses the optional ?mock= override. nil means the request did
// not ask, so the source's configured default applies.
func mockParam(r *http.Request) *bool {
	v := r.URL.Query().Get("mock")
	if v == "" {
		return nil
	}
	mock := v == "1" || v == "true" || v == "yes"
	return &mock
}
