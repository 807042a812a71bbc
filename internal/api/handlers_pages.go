package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/fruitvolt/fruitvolt/internal/engine"
	"github.com/fruitvolt/fruitvolt/internal/models"
)

type IndexData struct {
	City            string
	Weather         *models.WeatherObservation
	Recommendations []models.SuitabilityResult
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := IndexData{City: r.URL.Query().Get("city")}
	if data.City != "" {
		obs := s.source.Current(data.City, mockParam(r))
		recs, err := s.engine.Recommend(obs, engine.DefaultTopN)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.recordRecommendation(data.City, obs, recs)
		data.Weather = &obs
		data.Recommendations = recs
	}

	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

type CalculatorData struct {
	City         string
	PanelSize    float64
	Category     string
	Weather      models.WeatherObservation
	Fruit        models.FruitProfile
	Power        models.PowerEstimate
	Installation models.InstallationEstimate
	Devices      []models.DeviceMatch
	Categories   []models.DeviceCategory
}

func (s *Server) handleCalculator(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		city = "London"
	}
	panelSize := 2.0
	if v := r.URL.Query().Get("panel_size"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "panel_size must be a number", http.StatusBadRequest)
			return
		}
		panelSize = p
	}
	category := r.URL.Query().Get("device_category")
	if category == "" {
		category = "small"
	}

	obs := s.source.Current(city, mockParam(r))

	fruitID := r.URL.Query().Get("fruit")
	if fruitID == "" {
		recs, err := s.engine.Recommend(obs, 1)
		if err != nil || len(recs) == 0 {
			http.Error(w, "no recommendation available", http.StatusInternalServerError)
			return
		}
		fruitID = recs[0].FruitID
	}

	fruit, ok := s.engine.Catalog().Fruit(fruitID)
	if !ok {
		http.Error(w, "unknown fruit: "+fruitID, http.StatusNotFound)
		return
	}

	power, err := s.engine.EstimatePower(fruitID, panelSize, obs)
	if err != nil {
		s.writePageEngineError(w, err)
		return
	}
	installation, err := s.engine.EstimateInstallation(fruitID, panelSize)
	if err != nil {
		s.writePageEngineError(w, err)
		return
	}

	data := CalculatorData{
		City:         city,
		PanelSize:    panelSize,
		Category:     category,
		Weather:      obs,
		Fruit:        fruit,
		Power:        power,
		Installation: installation,
		Devices:      s.engine.CompatibleDevices(power.CurrentPower, category),
		Categories:   s.engine.Catalog().DeviceCategories(),
	}

	if err := s.tmpl.ExecuteTemplate(w, "calculator.html", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

func (s *Server) writePageEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}
