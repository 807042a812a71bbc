package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

func TestEstimatePowerOvercast(t *testing.T) {
	e := testEngine(t)

	// 1.05 W/sqft * 2 sqft, low-light factor 0.95 (68% cloud), fully
	// activated (UV 2 meets the threshold of 2), light 5000/100000 = 0.05.
	got, err := e.EstimatePower("beetroot", 2, londonWeather())
	if err != nil {
		t.Fatalf("EstimatePower: %v", err)
	}

	if got.CurrentPower != 0.1 {
		t.Errorf("CurrentPower = %v, want 0.1", got.CurrentPower)
	}
	if got.DailyEnergy != 0.8 {
		t.Errorf("DailyEnergy = %v, want 0.8", got.DailyEnergy)
	}
	if got.MonthlyEnergy != 23.94 {
		t.Errorf("MonthlyEnergy = %v, want 23.94", got.MonthlyEnergy)
	}
	if got.WeatherFactor != 0.95 {
		t.Errorf("WeatherFactor = %v, want 0.95", got.WeatherFactor)
	}
	if got.LightFactor != 0.05 {
		t.Errorf("LightFactor = %v, want 0.05", got.LightFactor)
	}
	if got.ActivationStatus != models.ActivationActive {
		t.Errorf("ActivationStatus = %q, want %q", got.ActivationStatus, models.ActivationActive)
	}
}

func TestEstimatePowerBelowActivationThreshold(t *testing.T) {
	e := testEngine(t)

	// Orange needs UV 4; at UV 2 the panel runs throttled at 0.3.
	w := models.WeatherObservation{
		Temperature: models.Float(20),
		UVIndex:     models.Float(2),
	}
	got, err := e.EstimatePower("orange", 2, w)
	if err != nil {
		t.Fatalf("EstimatePower: %v", err)
	}

	if got.ActivationStatus != models.ActivationLow {
		t.Errorf("ActivationStatus = %q, want %q", got.ActivationStatus, models.ActivationLow)
	}
	// 1.25 * 2 * 0.95 * 0.3 * 1.0
	if got.CurrentPower != 0.71 {
		t.Errorf("CurrentPower = %v, want 0.71", got.CurrentPower)
	}
	if got.LightFactor != 1.0 {
		t.Errorf("LightFactor = %v, want 1.0 when no reading is available", got.LightFactor)
	}
}

func TestEstimatePowerNeutralFallbacks(t *testing.T) {
	e := testEngine(t)

	// Temperature only: clear-sky efficiency, full activation, full light.
	got, err := e.EstimatePower("beetroot", 1, models.WeatherObservation{Temperature: models.Float(15)})
	if err != nil {
		t.Fatalf("EstimatePower: %v", err)
	}

	if got.WeatherFactor != 0.65 {
		t.Errorf("WeatherFactor = %v, want high-UV efficiency 0.65", got.WeatherFactor)
	}
	if got.LightFactor != 1.0 {
		t.Errorf("LightFactor = %v, want 1.0", got.LightFactor)
	}
	if got.ActivationStatus != models.ActivationActive {
		t.Errorf("ActivationStatus = %q, want %q", got.ActivationStatus, models.ActivationActive)
	}
	// 1.05 * 1 * 0.65
	if math.Abs(got.CurrentPower-0.68) > 0.011 {
		t.Errorf("CurrentPower = %v, want ~0.68", got.CurrentPower)
	}
}

func TestEstimatePowerLightSaturates(t *testing.T) {
	e := testEngine(t)

	w := models.WeatherObservation{
		Temperature:    models.Float(30),
		LightIntensity: models.Float(250000),
	}
	got, err := e.EstimatePower("mango", 2, w)
	if err != nil {
		t.Fatalf("EstimatePower: %v", err)
	}
	if got.LightFactor != 1.0 {
		t.Errorf("LightFactor = %v, want capped at 1.0", got.LightFactor)
	}
}

func TestEstimatePowerErrors(t *testing.T) {
	e := testEngine(t)
	w := londonWeather()

	tests := []struct {
		name      string
		fruitID   string
		panelSize float64
		weather   models.WeatherObservation
		wantErr   error
	}{
		{"unknown fruit", "durian", 2, w, ErrNotFound},
		{"zero panel size", "beetroot", 0, w, ErrInvalidInput},
		{"negative panel size", "beetroot", -3, w, ErrInvalidInput},
		{"missing temperature", "beetroot", 2, models.WeatherObservation{}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.EstimatePower(tt.fruitID, tt.panelSize, tt.weather)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEstimateInstallation(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name      string
		fruitID   string
		panelSize float64
		wantJuice float64
		wantResin float64
		wantCost  float64
	}{
		// 175 mL/sqft, resin ratio 0.5, juice at 1.20/kg, resin at 5/L.
		{"beetroot two sqft", "beetroot", 2, 350, 175, 1.30},
		// 200 mL/sqft, ratio 0.6, juice at 1.80/kg.
		{"orange two sqft", "orange", 2, 400, 240, 1.92},
		{"grape half sqft", "grape", 0.5, 80, 40, 0.39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.EstimateInstallation(tt.fruitID, tt.panelSize)
			if err != nil {
				t.Fatalf("EstimateInstallation: %v", err)
			}
			if got.JuiceRequiredML != tt.wantJuice {
				t.Errorf("JuiceRequiredML = %v, want %v", got.JuiceRequiredML, tt.wantJuice)
			}
			if got.ResinRequiredML != tt.wantResin {
				t.Errorf("ResinRequiredML = %v, want %v", got.ResinRequiredML, tt.wantResin)
			}
			if math.Abs(got.InstallationCost-tt.wantCost) > 0.011 {
				t.Errorf("InstallationCost = %v, want ~%v", got.InstallationCost, tt.wantCost)
			}
		})
	}
}

func TestEstimateInstallationLifecycleFields(t *testing.T) {
	e := testEngine(t)

	got, err := e.EstimateInstallation("beetroot", 2)
	if err != nil {
		t.Fatalf("EstimateInstallation: %v", err)
	}
	if got.CuringTimeHours != 4 {
		t.Errorf("CuringTimeHours = %v, want 4", got.CuringTimeHours)
	}
	if got.Complexity != models.ComplexitySimple {
		t.Errorf("Complexity = %q, want %q", got.Complexity, models.ComplexitySimple)
	}
	if got.LifespanMonths != 18 {
		t.Errorf("LifespanMonths = %d, want 18", got.LifespanMonths)
	}
}

func TestEstimateInstallationErrors(t *testing.T) {
	e := testEngine(t)

	_, err := e.EstimateInstallation("durian", 2)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown fruit: err = %v, want ErrNotFound", err)
	}
	_, err = e.EstimateInstallation("beetroot", 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero panel: err = %v, want ErrInvalidInput", err)
	}
}
