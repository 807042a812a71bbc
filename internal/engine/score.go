package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/fruitvolt/fruitvolt/internal/models"
	"github.com/fruitvolt/fruitvolt/internal/region"
)

// Scoring factor weights. The six factors are additive; only the final sum
// is clamped to [0,100].
const (
	climateBonus      = 30.0
	lightWeight       = 25.0
	uvWeight          = 20.0
	tempWeight        = 15.0
	costWeight        = 10.0
	regionBonusHigh   = 10.0
	regionBonusMedium = 5.0

	lowLightThreshold = 10000.0
	cloudyThreshold   = 60.0
	sunnyUVThreshold  = 5.0

	// DefaultTopN is the recommendation list length when the caller does
	// not ask for a specific one.
	DefaultTopN = 5
)

// Score computes the 0-100 suitability of a fruit for an observation.
// Temperature is mandatory; all other observation fields fall back to
// neutral defaults when absent.
func (e *Engine) Score(fruitID string, w models.WeatherObservation) (float64, error) {
	f, ok := e.catalog.Fruit(fruitID)
	if !ok {
		return 0, fmt.Errorf("fruit %q: %w", fruitID, ErrNotFound)
	}
	return scoreProfile(f, w)
}

func scoreProfile(f models.FruitProfile, w models.WeatherObservation) (float64, error) {
	if w.Temperature == nil {
		return 0, fmt.Errorf("weather observation missing temperature: %w", ErrInvalidInput)
	}

	var score float64

	// Climate specialization bonus. Each profile carries exactly one
	// specialization, so at most one branch can fire for a given fruit: a
	// cloudy specialist needs heavy cloud, a sunny one needs high UV, and
	// heavy cloud does not gate the sunny branch.
	if w.CloudCover != nil && *w.CloudCover > cloudyThreshold && f.ClimateSpecialization == models.ClimateCloudy {
		score += climateBonus
	} else if w.UVIndex != nil && *w.UVIndex > sunnyUVThreshold && f.ClimateSpecialization == models.ClimateSunny {
		score += climateBonus
	}

	// Light intensity: pick the efficiency for the regime, or average the
	// two when the reading is missing.
	switch {
	case w.LightIntensity == nil:
		score += (f.LowLightEfficiency + f.HighUVEfficiency) / 2 * lightWeight
	case *w.LightIntensity < lowLightThreshold:
		score += f.LowLightEfficiency * lightWeight
	default:
		score += f.HighUVEfficiency * lightWeight
	}

	// UV match against the activation threshold. Deliberately unclamped: a
	// severe mismatch contributes negatively and drags the total down.
	uvMatch := 1.0
	if w.UVIndex != nil {
		uvMatch = 1 - math.Abs(*w.UVIndex-f.ActivationThreshold.UVIndex)/10
	}
	score += uvMatch * uvWeight

	// Distance from the middle of the fruit's comfortable temperature band.
	tr := f.RegionalOptimization.TemperatureRange
	optimal := (tr.Min + tr.Max) / 2
	tempMatch := math.Max(0, 1-math.Abs(*w.Temperature-optimal)/20)
	score += tempMatch * tempWeight

	// Regional availability, falling back to the fruit's global level when
	// the resolved region has no entry.
	if reg := region.Resolve(w.Country); reg != "" {
		level, ok := f.AvailabilityByRegion[reg]
		if !ok {
			level = f.AvailabilityByRegion[region.Global]
		}
		switch level {
		case models.AvailabilityHigh:
			score += regionBonusHigh
		case models.AvailabilityMedium:
			score += regionBonusMedium
		}
	}

	// Cheaper feedstock scores higher, floored so even premium fruits keep
	// a token contribution.
	score += math.Max(0.1, 1-f.CostPerKg/10) * costWeight

	return math.Min(100, math.Max(0, score)), nil
}

// Recommend scores every fruit in the catalog and returns the topN best,
// sorted by descending score. Ties keep catalog order (stable sort), and the
// returned profiles are copies. Scores are rounded to one decimal.
func (e *Engine) Recommend(w models.WeatherObservation, topN int) ([]models.SuitabilityResult, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	fruits := e.catalog.Fruits()
	results := make([]models.SuitabilityResult, 0, len(fruits))
	for _, f := range fruits {
		s, err := scoreProfile(f, w)
		if err != nil {
			return nil, err
		}
		results = append(results, models.SuitabilityResult{
			FruitID: f.ID,
			Score:   s,
			Profile: f,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topN {
		results = results[:topN]
	}
	for i := range results {
		results[i].Score = round1(results[i].Score)
	}
	return results, nil
}
