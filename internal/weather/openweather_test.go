package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func openWeatherTestServer(t *testing.T, oneCallStatus int, oneCallBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			http.Error(w, "missing q", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `[{"lat": 51.5, "lon": -0.12, "country": "GB"}]`)
	})
	mux.HandleFunc("/data/2.5/onecall", func(w http.ResponseWriter, r *http.Request) {
		if oneCallStatus != http.StatusOK {
			http.Error(w, "no one call access", oneCallStatus)
			return
		}
		fmt.Fprint(w, oneCallBody)
	})
	mux.HandleFunc("/data/2.5/weather", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"main": {"temp": 22, "humidity": 60}, "clouds": {"all": 30}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenWeatherFetchOneCall(t *testing.T) {
	srv := openWeatherTestServer(t, http.StatusOK,
		`{"current": {"temp": 14.2, "humidity": 80, "clouds": 75, "uvi": 3}}`)
	ow := NewOpenWeatherWithBaseURL("test-key", srv.URL)

	obs, err := ow.Fetch("London")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if obs.Temperature == nil || *obs.Temperature != 14.2 {
		t.Errorf("Temperature = %v, want 14.2", obs.Temperature)
	}
	if obs.UVIndex == nil || *obs.UVIndex != 3 {
		t.Errorf("UVIndex = %v, want 3", obs.UVIndex)
	}
	if obs.LightIntensity == nil || *obs.LightIntensity != 30000 {
		t.Errorf("LightIntensity = %v, want 30000 (uvi * 10000)", obs.LightIntensity)
	}
	if obs.Country != "GB" {
		t.Errorf("Country = %q, want GB", obs.Country)
	}
	if obs.ClimateZone != "temperate" {
		t.Errorf("ClimateZone = %q, want temperate for latitude 51.5", obs.ClimateZone)
	}
	if obs.Provider != "openweathermap" {
		t.Errorf("Provider = %q, want openweathermap", obs.Provider)
	}
}

func TestOpenWeatherOneCallWithoutUVI(t *testing.T) {
	srv := openWeatherTestServer(t, http.StatusOK,
		`{"current": {"temp": 10, "humidity": 90, "clouds": 100}}`)
	ow := NewOpenWeatherWithBaseURL("test-key", srv.URL)

	obs, err := ow.Fetch("London")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if obs.UVIndex == nil || *obs.UVIndex != 0 {
		t.Errorf("UVIndex = %v, want explicit 0", obs.UVIndex)
	}
	if obs.LightIntensity == nil || *obs.LightIntensity != 0 {
		t.Errorf("LightIntensity = %v, want explicit 0", obs.LightIntensity)
	}
}

func TestOpenWeatherFallsBackToBasicEndpoint(t *testing.T) {
	// Accounts without One Call access get a 401 there; the client must
	// switch to the basic endpoint and estimate light from cloud cover.
	srv := openWeatherTestServer(t, http.StatusUnauthorized, "")
	ow := NewOpenWeatherWithBaseURL("test-key", srv.URL)

	obs, err := ow.Fetch("London")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if obs.Temperature == nil || *obs.Temperature != 22 {
		t.Errorf("Temperature = %v, want 22", obs.Temperature)
	}
	if obs.UVIndex != nil {
		t.Errorf("UVIndex = %v, want nil from basic endpoint", *obs.UVIndex)
	}
	if obs.LightIntensity == nil || *obs.LightIntensity != 70000 {
		t.Errorf("LightIntensity = %v, want 70000 (100000 - 30*1000)", obs.LightIntensity)
	}
}

func TestOpenWeatherNoGeocodeResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo/1.0/direct", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	ow := NewOpenWeatherWithBaseURL("test-key", srv.URL)
	_, err := ow.Fetch("Atlantis")
	if err == nil || !strings.Contains(err.Error(), "no geocode result") {
		t.Errorf("err = %v, want geocode failure", err)
	}
}

func TestFetchWithRetryRecoversFromRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"ok": true}`)
	}))
	t.Cleanup(srv.Close)

	body, err := fetchWithRetry(srv.Client(), "test", srv.URL)
	if err != nil {
		t.Fatalf("fetchWithRetry: %v", err)
	}
	if string(body) != `{"ok": true}` {
		t.Errorf("body = %s", body)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestFetchWithRetryPermanentOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := fetchWithRetry(srv.Client(), "test", srv.URL)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (no retry on 500)", got)
	}
}
