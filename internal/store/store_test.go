package store

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := New(db)
	if err := s.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return s
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	v, err := s.MigrationVersion()
	if err != nil {
		t.Fatalf("migration version: %v", err)
	}
	if v != 1 {
		t.Errorf("migration version = %d, want 1", v)
	}
}

func TestCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)

	obs := models.WeatherObservation{
		Temperature:    models.Float(15),
		Humidity:       models.Float(75),
		CloudCover:     models.Float(68),
		UVIndex:        models.Float(2),
		LightIntensity: models.Float(5000),
		ClimateZone:    "temperate",
		Country:        "GB",
		Provider:       "openweathermap",
	}
	if err := s.PutCachedObservation("London", false, obs); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.GetCachedObservation("London", false, time.Minute)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("get returned nil for freshly cached observation")
	}
	if *got.Temperature != 15 || *got.Humidity != 75 || *got.CloudCover != 68 {
		t.Errorf("numeric fields = %v/%v/%v, want 15/75/68", *got.Temperature, *got.Humidity, *got.CloudCover)
	}
	if got.ClimateZone != "temperate" || got.Country != "GB" || got.Provider != "openweathermap" {
		t.Errorf("string fields = %q/%q/%q", got.ClimateZone, got.Country, got.Provider)
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	s := newTestStore(t)

	obs := models.WeatherObservation{Temperature: models.Float(20), Provider: "mock"}
	if err := s.PutCachedObservation("  LONDON ", true, obs); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.GetCachedObservation("london", true, time.Minute)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("case/whitespace variants should hit the same cache entry")
	}
}

func TestCacheMissAndExpiry(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetCachedObservation("nowhere", false, time.Minute)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown location")
	}

	obs := models.WeatherObservation{Temperature: models.Float(10), Provider: "mock"}
	if err := s.PutCachedObservation("Oslo", false, obs); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A zero max age makes any stored row stale.
	got, err = s.GetCachedObservation("Oslo", false, 0)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil for expired entry")
	}
}

func TestCacheSeparatesMockFromLive(t *testing.T) {
	s := newTestStore(t)

	live := models.WeatherObservation{Temperature: models.Float(11), Provider: "weatherapi"}
	mock := models.WeatherObservation{Temperature: models.Float(99), Provider: "mock"}
	if err := s.PutCachedObservation("Tokyo", false, live); err != nil {
		t.Fatalf("put live: %v", err)
	}
	if err := s.PutCachedObservation("Tokyo", true, mock); err != nil {
		t.Fatalf("put mock: %v", err)
	}

	gotLive, err := s.GetCachedObservation("Tokyo", false, time.Minute)
	if err != nil {
		t.Fatalf("get live: %v", err)
	}
	gotMock, err := s.GetCachedObservation("Tokyo", true, time.Minute)
	if err != nil {
		t.Fatalf("get mock: %v", err)
	}
	if gotLive == nil || gotMock == nil {
		t.Fatal("expected both cache entries to survive")
	}
	if *gotLive.Temperature != 11 || *gotMock.Temperature != 99 {
		t.Errorf("temperatures = %v/%v, want 11/99", *gotLive.Temperature, *gotMock.Temperature)
	}
}

func TestCacheUpsertAndNilFields(t *testing.T) {
	s := newTestStore(t)

	first := models.WeatherObservation{
		Temperature: models.Float(5),
		UVIndex:     models.Float(1),
		Provider:    "openweathermap",
	}
	if err := s.PutCachedObservation("Paris", false, first); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Second write for the same key replaces the row; nil optionals stay nil.
	second := models.WeatherObservation{
		Temperature: models.Float(8),
		Provider:    "weatherapi",
	}
	if err := s.PutCachedObservation("Paris", false, second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := s.GetCachedObservation("Paris", false, time.Minute)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached entry")
	}
	if *got.Temperature != 8 || got.Provider != "weatherapi" {
		t.Errorf("got %v/%q, want 8/weatherapi", *got.Temperature, got.Provider)
	}
	if got.UVIndex != nil {
		t.Errorf("UVIndex = %v, want nil after upsert without it", *got.UVIndex)
	}
	if got.Humidity != nil || got.CloudCover != nil || got.LightIntensity != nil {
		t.Error("absent optional fields should come back nil")
	}
}

func TestClearCache(t *testing.T) {
	s := newTestStore(t)

	obs := models.WeatherObservation{Temperature: models.Float(20), Provider: "mock"}
	if err := s.PutCachedObservation("Miami", true, obs); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.ClearCache(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := s.GetCachedObservation("Miami", true, time.Minute)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected empty cache after clear")
	}
}

func TestRecommendationStats(t *testing.T) {
	s := newTestStore(t)

	entries := []struct {
		city    string
		fruitID string
		score   float64
	}{
		{"London", "beetroot", 97.6},
		{"Oslo", "beetroot", 92.4},
		{"Miami", "orange", 88.0},
	}
	for _, e := range entries {
		if err := s.LogRecommendation(e.city, e.fruitID, e.score, "mock"); err != nil {
			t.Fatalf("log %s: %v", e.city, err)
		}
	}

	stats, err := s.RecommendationStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	if stats[0].FruitID != "beetroot" || stats[0].Count != 2 {
		t.Errorf("stats[0] = %+v, want beetroot with count 2", stats[0])
	}
	if avg := stats[0].AvgScore; avg < 94.99 || avg > 95.01 {
		t.Errorf("AvgScore = %v, want ~95", avg)
	}
	if stats[1].FruitID != "orange" || stats[1].Count != 1 {
		t.Errorf("stats[1] = %+v, want orange with count 1", stats[1])
	}
}

func TestRecommendationStatsEmpty(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.RecommendationStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("len(stats) = %d, want 0", len(stats))
	}
}
