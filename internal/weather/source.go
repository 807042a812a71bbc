// Package weather acquires current-conditions observations for the
// estimation engine: live providers with retry and caching, plus canned mock
// data for keyless operation.
package weather

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/fruitvolt/fruitvolt/internal/metrics"
	"github.com/fruitvolt/fruitvolt/internal/models"
)

const (
	// luxPerUVIndex converts a UV index reading into the lux-like light
	// intensity unit fruit profiles are calibrated against.
	luxPerUVIndex = 10000.0

	// fullDaylightLux anchors the cloud-cover light estimate when a
	// provider reports no UV index.
	fullDaylightLux = 100000.0

	// DefaultCacheTTL bounds how long a cached observation is served
	// before providers are consulted again.
	DefaultCacheTTL = 10 * time.Minute
)

// Cache stores observations keyed by (location, mock flag). Implemented by
// the sqlite store; nil disables caching.
type Cache interface {
	GetCachedObservation(location string, mock bool, maxAge time.Duration) (*models.WeatherObservation, error)
	PutCachedObservation(location string, mock bool, obs models.WeatherObservation) error
}

// Config is the explicit configuration for a Source. Keys left empty
// disable their provider; with no providers the source always serves mock
// data regardless of UseMock.
type Config struct {
	OpenWeatherKey string
	WeatherAPIKey  string
	UseMock        bool
	CacheTTL       time.Duration
}

// Source resolves a location to a WeatherObservation: cache, then
// OpenWeatherMap, then WeatherAPI, then mock data. It never fails to
// produce an observation.
type Source struct {
	openWeather *OpenWeather
	weatherAPI  *WeatherAPI
	useMock     bool
	cache       Cache
	cacheTTL    time.Duration
}

func NewSource(cfg Config, cache Cache) *Source {
	s := &Source{
		useMock:  cfg.UseMock,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = DefaultCacheTTL
	}
	if cfg.OpenWeatherKey != "" {
		s.openWeather = NewOpenWeather(cfg.OpenWeatherKey)
	}
	if cfg.WeatherAPIKey != "" {
		s.weatherAPI = NewWeatherAPI(cfg.WeatherAPIKey)
	}
	if s.openWeather == nil && s.weatherAPI == nil {
		s.useMock = true
	}
	return s
}

// HasLiveProvider reports whether any live provider is configured.
func (s *Source) HasLiveProvider() bool {
	return s.openWeather != nil || s.weatherAPI != nil
}

// Current returns the observation for a location. forceMock overrides the
// configured mock/live choice for this request when non-nil.
func (s *Source) Current(location string, forceMock *bool) models.WeatherObservation {
	useMock := s.useMock
	if forceMock != nil {
		useMock = *forceMock
	}
	if !s.HasLiveProvider() {
		useMock = true
	}

	if s.cache != nil {
		cached, err := s.cache.GetCachedObservation(location, useMock, s.cacheTTL)
		if err != nil {
			log.Printf("weather: cache read for %s: %v", location, err)
		}
		if cached != nil {
			metrics.WeatherCacheHits.Inc()
			return *cached
		}
		metrics.WeatherCacheMisses.Inc()
	}

	obs := s.fetch(location, useMock)
	if s.cache != nil {
		if err := s.cache.PutCachedObservation(location, useMock, obs); err != nil {
			log.Printf("weather: cache write for %s: %v", location, err)
		}
	}
	return obs
}

func (s *Source) fetch(location string, useMock bool) models.WeatherObservation {
	if !useMock {
		if s.openWeather != nil {
			obs, err := s.openWeather.Fetch(location)
			if err == nil {
				return *obs
			}
			log.Printf("weather: openweathermap fetch for %s: %v", location, err)
		}
		if s.weatherAPI != nil {
			obs, err := s.weatherAPI.Fetch(location)
			if err == nil {
				return *obs
			}
			log.Printf("weather: weatherapi fetch for %s: %v", location, err)
		}
		log.Printf("weather: all providers failed for %s, serving mock data", location)
	}

	if obs, ok := mockObservations[strings.ToLower(strings.TrimSpace(location))]; ok {
		return cloneObservation(obs)
	}
	return defaultMockObservation()
}

// climateZoneForLatitude is a coarse zone guess from absolute latitude.
func climateZoneForLatitude(lat float64) string {
	switch abs := math.Abs(lat); {
	case abs < 23:
		return models.ClimateTropical
	case abs <= 40:
		return "subtropical"
	default:
		return models.ClimateTemperate
	}
}
