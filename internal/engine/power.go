package engine

import (
	"fmt"
	"math"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

const (
	// generationHoursPerDay is the assumed productive window of a panel.
	generationHoursPerDay = 8
	daysPerMonth          = 30

	// underActivationFactor throttles output when UV sits below the
	// fruit's activation threshold.
	underActivationFactor = 0.3

	// lightSaturationLux is the light intensity at which panels reach
	// full output.
	lightSaturationLux = 100000.0

	// resinPricePerLiter is the fixed resin unit price in currency units.
	resinPricePerLiter = 5.0
)

// EstimatePower computes the current output of a panel of the given size
// under an observation, plus derived daily and monthly energy yields.
func (e *Engine) EstimatePower(fruitID string, panelSizeSqft float64, w models.WeatherObservation) (models.PowerEstimate, error) {
	f, ok := e.catalog.Fruit(fruitID)
	if !ok {
		return models.PowerEstimate{}, fmt.Errorf("fruit %q: %w", fruitID, ErrNotFound)
	}
	if panelSizeSqft <= 0 {
		return models.PowerEstimate{}, fmt.Errorf("panel size must be positive, got %v: %w", panelSizeSqft, ErrInvalidInput)
	}
	if w.Temperature == nil {
		return models.PowerEstimate{}, fmt.Errorf("weather observation missing temperature: %w", ErrInvalidInput)
	}

	basePower := f.PowerDensityPerSqft * panelSizeSqft

	// Overcast panels run on the low-light efficiency; sunny or unknown
	// cloud cover defaults to the high-UV efficiency.
	weatherFactor := f.HighUVEfficiency
	if w.CloudCover != nil && *w.CloudCover > cloudyThreshold {
		weatherFactor = f.LowLightEfficiency
	}

	activationFactor := 1.0
	if w.UVIndex != nil && *w.UVIndex < f.ActivationThreshold.UVIndex {
		activationFactor = underActivationFactor
	}

	lightFactor := 1.0
	if w.LightIntensity != nil {
		lightFactor = math.Min(1.0, *w.LightIntensity/lightSaturationLux)
	}

	power := basePower * weatherFactor * activationFactor * lightFactor

	status := models.ActivationLow
	if activationFactor > 0.5 {
		status = models.ActivationActive
	}

	return models.PowerEstimate{
		CurrentPower:     round2(power),
		DailyEnergy:      round2(power * generationHoursPerDay),
		MonthlyEnergy:    round2(power * generationHoursPerDay * daysPerMonth),
		WeatherFactor:    round2(weatherFactor),
		ActivationStatus: status,
		LightFactor:      round2(lightFactor),
	}, nil
}

// EstimateInstallation computes the material volumes, cost, and lifecycle
// figures for building a panel of the given size.
func (e *Engine) EstimateInstallation(fruitID string, panelSizeSqft float64) (models.InstallationEstimate, error) {
	f, ok := e.catalog.Fruit(fruitID)
	if !ok {
		return models.InstallationEstimate{}, fmt.Errorf("fruit %q: %w", fruitID, ErrNotFound)
	}
	if panelSizeSqft <= 0 {
		return models.InstallationEstimate{}, fmt.Errorf("panel size must be positive, got %v: %w", panelSizeSqft, ErrInvalidInput)
	}

	juiceML := f.JuiceRequiredPerSqft * panelSizeSqft
	resinML := juiceML * f.ResinRatio
	cost := (juiceML/1000)*f.CostPerKg + (resinML/1000)*resinPricePerLiter

	return models.InstallationEstimate{
		JuiceRequiredML:  math.Round(juiceML),
		ResinRequiredML:  math.Round(resinML),
		InstallationCost: round2(cost),
		CuringTimeHours:  f.ResinCuringTime,
		Complexity:       f.InstallationComplexity,
		LifespanMonths:   f.OperationalLifespan,
	}, nil
}
