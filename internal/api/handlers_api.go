package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/fruitvolt/fruitvolt/internal/engine"
	"github.com/fruitvolt/fruitvolt/internal/metrics"
	"github.com/fruitvolt/fruitvolt/internal/models"
)

type recommendationsResponse struct {
	City            string                     `json:"city"`
	Weather         models.WeatherObservation  `json:"weather"`
	Recommendations []models.SuitabilityResult `json:"recommendations"`
}

func (s *Server) handleAPIRecommendations(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimPrefix(r.URL.Path, "/api/recommendations/")
	if city == "" {
		writeError(w, http.StatusBadRequest, "city is required")
		return
	}

	topN := engine.DefaultTopN
	if v := r.URL.Query().Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "n must be a positive integer")
			return
		}
		topN = n
	}

	obs := s.source.Current(city, mockParam(r))
	recs, err := s.engine.Recommend(obs, topN)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.recordRecommendation(city, obs, recs)

	writeJSON(w, http.StatusOK, recommendationsResponse{
		City:            city,
		Weather:         obs,
		Recommendations: recs,
	})
}

type calculateRequest struct {
	City           string   `json:"city"`
	Fruit          string   `json:"fruit"`
	PanelSize      *float64 `json:"panel_size"`
	DeviceCategory string   `json:"device_category"`
	Mock           *bool    `json:"mock"`
}

type calculateResponse struct {
	City         string                      `json:"city"`
	Fruit        string                      `json:"fruit"`
	Weather      models.WeatherObservation   `json:"weather"`
	PowerOutput  models.PowerEstimate        `json:"power_output"`
	Installation models.InstallationEstimate `json:"installation"`
	Devices      []models.DeviceMatch        `json:"devices"`
}

func (s *Server) handleAPICalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.City == "" {
		req.City = "London"
	}
	panelSize := 2.0
	if req.PanelSize != nil {
		panelSize = *req.PanelSize
	}

	obs := s.source.Current(req.City, req.Mock)

	// No fruit given: the top recommendation for the city's weather wins.
	fruit := req.Fruit
	if fruit == "" {
		recs, err := s.engine.Recommend(obs, 1)
		if err != nil {
			s.writeEngineError(w, err)
			return
		}
		if len(recs) == 0 {
			writeError(w, http.StatusInternalServerError, "no fruits in catalog")
			return
		}
		fruit = recs[0].FruitID
	}

	power, err := s.engine.EstimatePower(fruit, panelSize, obs)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	installation, err := s.engine.EstimateInstallation(fruit, panelSize)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	devices := s.engine.CompatibleDevices(power.CurrentPower, req.DeviceCategory)

	writeJSON(w, http.StatusOK, calculateResponse{
		City:         req.City,
		Fruit:        fruit,
		Weather:      obs,
		PowerOutput:  power,
		Installation: installation,
		Devices:      devices,
	})
}

func (s *Server) handleAPIDevices(w http.ResponseWriter, r *http.Request) {
	powerStr := r.URL.Query().Get("power")
	if powerStr == "" {
		writeError(w, http.StatusBadRequest, "power is required")
		return
	}
	power, err := strconv.ParseFloat(powerStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "power must be a number")
		return
	}

	devices := s.engine.CompatibleDevices(power, r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string]any{"devices": devices})
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.RecommendationStats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": stats})
}

func (s *Server) handleAPIClearCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	if err := s.store.ClearCache(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) recordRecommendation(city string, obs models.WeatherObservation, recs []models.SuitabilityResult) {
	if len(recs) == 0 {
		return
	}
	metrics.RecommendationsServed.WithLabelValues(recs[0].FruitID).Inc()
	if err := s.store.LogRecommendation(city, recs[0].FruitID, recs[0].Score, obs.Provider); err != nil {
		log.Printf("api: log recommendation: %v", err)
	}
}
