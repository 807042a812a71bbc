package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

const weatherAPIBaseURL = "https://api.weatherapi.com"

// WeatherAPI fetches current conditions from weatherapi.com, the fallback
// provider. A single call returns everything including UV.
type WeatherAPI struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherAPI(apiKey string) *WeatherAPI {
	return NewWeatherAPIWithBaseURL(apiKey, weatherAPIBaseURL)
}

func NewWeatherAPIWithBaseURL(apiKey, baseURL string) *WeatherAPI {
	return &WeatherAPI{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (w *WeatherAPI) Name() string {
	return "weatherapi"
}

type weatherAPIResponse struct {
	Location struct {
		Lat     *float64 `json:"lat"`
		Country string   `json:"country"`
	} `json:"location"`
	Current struct {
		TempC    *float64 `json:"temp_c"`
		Humidity *float64 `json:"humidity"`
		Cloud    *float64 `json:"cloud"`
		UV       *float64 `json:"uv"`
	} `json:"current"`
}

func (w *WeatherAPI) Fetch(city string) (*models.WeatherObservation, error) {
	fetchURL := fmt.Sprintf("%s/v1/current.json?key=%s&q=%s&aqi=no", w.baseURL, w.apiKey, url.QueryEscape(city))
	body, err := fetchWithRetry(w.client, w.Name(), fetchURL)
	if err != nil {
		return nil, fmt.Errorf("current conditions for %s: %w", city, err)
	}

	var resp weatherAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	zone := models.ClimateTemperate
	if resp.Location.Lat != nil {
		zone = climateZoneForLatitude(*resp.Location.Lat)
	}

	obs := &models.WeatherObservation{
		Temperature: resp.Current.TempC,
		Humidity:    resp.Current.Humidity,
		CloudCover:  resp.Current.Cloud,
		UVIndex:     resp.Current.UV,
		ClimateZone: zone,
		Country:     resp.Location.Country,
		Provider:    w.Name(),
	}
	if resp.Current.UV != nil {
		obs.LightIntensity = models.Float(*resp.Current.UV * luxPerUVIndex)
	}
	return obs, nil
}
