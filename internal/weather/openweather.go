package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/fruitvolt/fruitvolt/internal/metrics"
	"github.com/fruitvolt/fruitvolt/internal/models"
)

const openWeatherBaseURL = "https://api.openweathermap.org"

// OpenWeather fetches current conditions from OpenWeatherMap: geocode the
// city, then prefer the One Call endpoint (has UV index), falling back to
// the plain current-weather endpoint some accounts are limited to.
type OpenWeather struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeather(apiKey string) *OpenWeather {
	return NewOpenWeatherWithBaseURL(apiKey, openWeatherBaseURL)
}

func NewOpenWeatherWithBaseURL(apiKey, baseURL string) *OpenWeather {
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenWeather) Name() string {
	return "openweathermap"
}

type geocodeResult struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

type oneCallResponse struct {
	Current struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
		Clouds   *float64 `json:"clouds"`
		UVI      *float64 `json:"uvi"`
	} `json:"current"`
}

type currentWeatherResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Clouds struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
}

func (o *OpenWeather) Fetch(city string) (*models.WeatherObservation, error) {
	geoURL := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=1&appid=%s", o.baseURL, url.QueryEscape(city), o.apiKey)
	body, err := fetchWithRetry(o.client, o.Name(), geoURL)
	if err != nil {
		return nil, fmt.Errorf("geocode %s: %w", city, err)
	}

	var geo []geocodeResult
	if err := json.Unmarshal(body, &geo); err != nil {
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}
	if len(geo) == 0 {
		return nil, fmt.Errorf("no geocode result for %q", city)
	}
	lat, lon, country := geo[0].Lat, geo[0].Lon, geo[0].Country

	obs := &models.WeatherObservation{
		Country:     country,
		ClimateZone: climateZoneForLatitude(lat),
		Provider:    o.Name(),
	}

	oneCallURL := fmt.Sprintf("%s/data/2.5/onecall?lat=%v&lon=%v&exclude=minutely,hourly,daily,alerts&units=metric&appid=%s", o.baseURL, lat, lon, o.apiKey)
	if body, err := fetchWithRetry(o.client, o.Name(), oneCallURL); err == nil {
		var oc oneCallResponse
		if err := json.Unmarshal(body, &oc); err != nil {
			return nil, fmt.Errorf("unmarshal onecall: %w", err)
		}
		obs.Temperature = oc.Current.Temp
		obs.Humidity = oc.Current.Humidity
		obs.CloudCover = oc.Current.Clouds
		if oc.Current.UVI != nil {
			obs.UVIndex = oc.Current.UVI
			obs.LightIntensity = models.Float(*oc.Current.UVI * luxPerUVIndex)
		} else {
			obs.UVIndex = models.Float(0)
			obs.LightIntensity = models.Float(0)
		}
		return obs, nil
	}

	// One Call not available for this account; the basic endpoint carries no
	// UV, so estimate light from cloud cover instead.
	weatherURL := fmt.Sprintf("%s/data/2.5/weather?lat=%v&lon=%v&units=metric&appid=%s", o.baseURL, lat, lon, o.apiKey)
	body, err = fetchWithRetry(o.client, o.Name(), weatherURL)
	if err != nil {
		return nil, fmt.Errorf("current weather for %s: %w", city, err)
	}

	var cw currentWeatherResponse
	if err := json.Unmarshal(body, &cw); err != nil {
		return nil, fmt.Errorf("unmarshal current weather: %w", err)
	}
	obs.Temperature = cw.Main.Temp
	obs.Humidity = cw.Main.Humidity
	obs.CloudCover = cw.Clouds.All
	if cw.Clouds.All != nil {
		obs.LightIntensity = models.Float(math.Max(1000, fullDaylightLux-*cw.Clouds.All*1000))
	}
	return obs, nil
}

// fetchWithRetry GETs a URL with exponential backoff. Only rate-limit
// responses are retried (keys get throttled intermittently); anything else
// fails permanently.
func fetchWithRetry(client *http.Client, provider, fetchURL string) ([]byte, error) {
	var body []byte
	operation := func() error {
		start := time.Now()
		resp, err := client.Get(fetchURL)
		metrics.WeatherAPILatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.WeatherAPICallsTotal.WithLabelValues(provider, "error").Inc()
			return backoff.Permanent(fmt.Errorf("fetch: %w", err))
		}
		defer resp.Body.Close()

		// 401/403 are permanent here: OpenWeatherMap answers 401 for plans
		// without One Call access and the caller needs to fall back fast.
		if resp.StatusCode == http.StatusTooManyRequests {
			metrics.WeatherAPICallsTotal.WithLabelValues(provider, "rate_limited").Inc()
			return fmt.Errorf("rate limited: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			metrics.WeatherAPICallsTotal.WithLabelValues(provider, "error").Inc()
			return backoff.Permanent(fmt.Errorf("fetch: status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			metrics.WeatherAPICallsTotal.WithLabelValues(provider, "error").Inc()
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		metrics.WeatherAPICallsTotal.WithLabelValues(provider, "ok").Inc()
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, err
	}
	return body, nil
}
