package weather

import "github.com/fruitvolt/fruitvolt/internal/models"

// mockObservations are canned readings for demo cities, served when no live
// provider is configured or when a request forces mock data.
var mockObservations = map[string]models.WeatherObservation{
	"london": {
		Temperature:    models.Float(15),
		Humidity:       models.Float(75),
		CloudCover:     models.Float(68),
		UVIndex:        models.Float(2),
		LightIntensity: models.Float(5000),
		ClimateZone:    models.ClimateTemperate,
		Country:        "UK",
		Provider:       "mock",
	},
	"miami": {
		Temperature:    models.Float(28),
		Humidity:       models.Float(80),
		CloudCover:     models.Float(25),
		UVIndex:        models.Float(8),
		LightIntensity: models.Float(85000),
		ClimateZone:    models.ClimateTropical,
		Country:        "USA",
		Provider:       "mock",
	},
	"tokyo": {
		Temperature:    models.Float(18),
		Humidity:       models.Float(70),
		CloudCover:     models.Float(45),
		UVIndex:        models.Float(5),
		LightIntensity: models.Float(65000),
		ClimateZone:    models.ClimateTemperate,
		Country:        "Japan",
		Provider:       "mock",
	},
	"jalgaon": {
		Temperature:    models.Float(32),
		Humidity:       models.Float(55),
		CloudCover:     models.Float(40),
		UVIndex:        models.Float(9),
		LightIntensity: models.Float(90000),
		ClimateZone:    models.ClimateTropical,
		Country:        "India",
		Provider:       "mock",
	},
	"mulshi": {
		Temperature:    models.Float(21),
		Humidity:       models.Float(65),
		CloudCover:     models.Float(50),
		UVIndex:        models.Float(4),
		LightIntensity: models.Float(50000),
		ClimateZone:    models.ClimateTemperate,
		Country:        "India",
		Provider:       "mock",
	},
}

// cloneObservation copies the pointer fields so callers can never reach
// back into the shared mock table.
func cloneObservation(o models.WeatherObservation) models.WeatherObservation {
	out := o
	if o.Temperature != nil {
		out.Temperature = models.Float(*o.Temperature)
	}
	if o.Humidity != nil {
		out.Humidity = models.Float(*o.Humidity)
	}
	if o.CloudCover != nil {
		out.CloudCover = models.Float(*o.CloudCover)
	}
	if o.UVIndex != nil {
		out.UVIndex = models.Float(*o.UVIndex)
	}
	if o.LightIntensity != nil {
		out.LightIntensity = models.Float(*o.LightIntensity)
	}
	return out
}

// defaultMockObservation covers cities without a canned entry.
func defaultMockObservation() models.WeatherObservation {
	return models.WeatherObservation{
		Temperature:    models.Float(20),
		Humidity:       models.Float(65),
		CloudCover:     models.Float(50),
		UVIndex:        models.Float(4),
		LightIntensity: models.Float(50000),
		ClimateZone:    models.ClimateTemperate,
		Country:        "Unknown",
		Provider:       "mock",
	}
}
