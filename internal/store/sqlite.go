// Package store persists the weather observation cache and a log of served
// recommendations. The estimation engine never touches it.
package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the database is reachable, for health checks.
func (s *Store) Ping() error {
	return s.db.Ping()
}

func cacheKey(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// GetCachedObservation returns the cached observation for a location if one
// exists and is younger than maxAge. Mock and live responses live in
// separate key spaces so per-request overrides never leak between them.
func (s *Store) GetCachedObservation(location string, mock bool, maxAge time.Duration) (*models.WeatherObservation, error) {
	row := s.db.QueryRow(`
		SELECT temperature, humidity, cloud_cover, uv_index, light_intensity, climate_zone, country, provider, fetched_at
		FROM weather_cache
		WHERE location = ? AND mock = ?
	`, cacheKey(location), mock)

	var (
		temp, humidity, cloud, uv, light sql.NullFloat64
		zone, country, provider          sql.NullString
		fetchedAt                        time.Time
	)
	err := row.Scan(&temp, &humidity, &cloud, &uv, &light, &zone, &country, &provider, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Since(fetchedAt) > maxAge {
		return nil, nil
	}

	obs := &models.WeatherObservation{
		ClimateZone: zone.String,
		Country:     country.String,
		Provider:    provider.String,
	}
	if temp.Valid {
		obs.Temperature = models.Float(temp.Float64)
	}
	if humidity.Valid {
		obs.Humidity = models.Float(humidity.Float64)
	}
	if cloud.Valid {
		obs.CloudCover = models.Float(cloud.Float64)
	}
	if uv.Valid {
		obs.UVIndex = models.Float(uv.Float64)
	}
	if light.Valid {
		obs.LightIntensity = models.Float(light.Float64)
	}
	return obs, nil
}

// PutCachedObservation upserts the cached observation for a location.
func (s *Store) PutCachedObservation(location string, mock bool, obs models.WeatherObservation) error {
	_, err := s.db.Exec(`
		INSERT INTO weather_cache (location, mock, temperature, humidity, cloud_cover, uv_index, light_intensity, climate_zone, country, provider, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(location, mock) DO UPDATE SET
			temperature = excluded.temperature,
			humidity = excluded.humidity,
			cloud_cover = excluded.cloud_cover,
			uv_index = excluded.uv_index,
			light_intensity = excluded.light_intensity,
			climate_zone = excluded.climate_zone,
			country = excluded.country,
			provider = excluded.provider,
			fetched_at = excluded.fetched_at
	`, cacheKey(location), mock,
		nullable(obs.Temperature), nullable(obs.Humidity), nullable(obs.CloudCover),
		nullable(obs.UVIndex), nullable(obs.LightIntensity),
		obs.ClimateZone, obs.Country, obs.Provider, time.Now().UTC())
	return err
}

// ClearCache drops every cached observation.
func (s *Store) ClearCache() error {
	_, err := s.db.Exec(`DELETE FROM weather_cache`)
	return err
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// LogRecommendation records the top fruit served for a city.
func (s *Store) LogRecommendation(city, fruitID string, score float64, provider string) error {
	_, err := s.db.Exec(`
		INSERT INTO recommendation_log (city, fruit_id, score, provider)
		VALUES (?, ?, ?, ?)
	`, cacheKey(city), fruitID, score, provider)
	return err
}

// FruitCount is one row of recommendation statistics.
type FruitCount struct {
	FruitID  string  `json:"fruit_id"`
	Count    int     `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

// RecommendationStats aggregates the log by fruit, most-recommended first.
func (s *Store) RecommendationStats() ([]FruitCount, error) {
	rows, err := s.db.Query(`
		SELECT fruit_id, COUNT(*), AVG(score)
		FROM recommendation_log
		GROUP BY fruit_id
		ORDER BY COUNT(*) DESC, fruit_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []FruitCount
	for rows.Next() {
		var fc FruitCount
		if err := rows.Scan(&fc.FruitID, &fc.Count, &fc.AvgScore); err != nil {
			return nil, err
		}
		stats = append(stats, fc)
	}
	return stats, rows.Err()
}
