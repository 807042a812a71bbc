package models

// Acidity buckets used in fruit profiles.
const (
	AcidityLow    = "low"
	AcidityMedium = "medium"
	AcidityHigh   = "high"
)

// Climate specializations. A fruit panel is tuned for one of these.
const (
	ClimateSunny         = "sunny"
	ClimateCloudy        = "cloudy"
	ClimateTropical      = "tropical"
	ClimateTemperate     = "temperate"
	ClimateMediterranean = "mediterranean"
)

// Installation complexity levels.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// Regional availability levels.
const (
	AvailabilityHigh   = "high"
	AvailabilityMedium = "medium"
	AvailabilityLow    = "low"
)

// ActivationThreshold is the minimum conditions below which a fruit panel
// runs under-activated.
type ActivationThreshold struct {
	UVIndex        float64 `json:"uv_index"`
	LightIntensity float64 `json:"light_intensity"`
	CloudCoverMax  float64 `json:"cloud_cover_max"`
}

type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RegionalOptimization describes where and when a fruit performs best.
// SeasonalPerformance may be nil for sparsely-specified fruits.
type RegionalOptimization struct {
	BestClimateZones    []string           `json:"best_climate_zones"`
	TemperatureRange    TemperatureRange   `json:"temperature_range"`
	SeasonalPerformance map[string]float64 `json:"seasonal_performance,omitempty"`
	HumidityTolerance   float64            `json:"humidity_tolerance,omitempty"`
}

// FruitProfile is one entry in the knowledge base. Profiles are loaded once
// at startup and never mutated afterwards; callers receive copies.
type FruitProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`

	PHLevel         float64 `json:"ph_level"`
	Acidity         string  `json:"acidity"`
	Conductivity    float64 `json:"conductivity"`
	RedoxPotential  float64 `json:"redox_potential"`
	IonConductivity float64 `json:"ion_conductivity,omitempty"`

	Efficiency          float64 `json:"efficiency"`
	LowLightEfficiency  float64 `json:"low_light_efficiency"`
	HighUVEfficiency    float64 `json:"high_uv_efficiency"`
	PowerDensityPerSqft float64 `json:"power_density_per_sqft"`

	CostPerKg            float64 `json:"cost_per_kg"`
	JuiceRequiredPerSqft float64 `json:"juice_required_per_sqft"`
	ResinRatio           float64 `json:"resin_ratio"`
	ResinCuringTime      float64 `json:"resin_curing_time"`

	ClimateSpecialization string               `json:"climate_specialization"`
	ActivationThreshold   ActivationThreshold  `json:"activation_threshold"`
	RegionalOptimization  RegionalOptimization `json:"regional_optimization"`

	PhotosyntheticPigments map[string]float64 `json:"photosynthetic_pigments,omitempty"`

	OperationalLifespan    int     `json:"operational_lifespan"`
	DegradationRateMonthly float64 `json:"degradation_rate_monthly,omitempty"`
	InstallationComplexity string  `json:"installation_complexity"`

	AvailabilityByRegion map[string]string `json:"availability_by_region"`
	SeasonalAvailability []string          `json:"seasonal_availability"`
}

// WeatherObservation is a normalized current-conditions reading produced by
// the weather collaborator. Temperature is the only field the engine
// requires; everything else degrades to a neutral default when nil.
type WeatherObservation struct {
	Temperature    *float64 `json:"temperature"`
	Humidity       *float64 `json:"humidity,omitempty"`
	CloudCover     *float64 `json:"cloud_cover,omitempty"`
	UVIndex        *float64 `json:"uv_index,omitempty"`
	LightIntensity *float64 `json:"light_intensity,omitempty"`
	ClimateZone    string   `json:"climate_zone,omitempty"`
	Country        string   `json:"country,omitempty"`
	Provider       string   `json:"provider,omitempty"`
}

// DeviceExample is a representative appliance within a device category.
type DeviceExample struct {
	Name        string  `json:"name"`
	Power       float64 `json:"power"`
	Description string  `json:"description"`
}

type PowerRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PanelSizeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DeviceCategory groups appliances by power draw. Static catalog data.
type DeviceCategory struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	PowerRange        PowerRange      `json:"power_range"`
	Examples          []DeviceExample `json:"examples"`
	PanelSizeRange    PanelSizeRange  `json:"panel_size_range"`
	DailyRuntimeHours float64         `json:"daily_runtime_hours"`
}

// SuitabilityResult pairs a fruit with its 0-100 score for an observation.
// Profile is a copy; mutating it does not touch the knowledge base.
type SuitabilityResult struct {
	FruitID string       `json:"fruit_id"`
	Score   float64      `json:"suitability_score"`
	Profile FruitProfile `json:"profile"`
}

// Activation statuses reported by the power estimator.
const (
	ActivationActive = "ACTIVE"
	ActivationLow    = "LOW"
)

type PowerEstimate struct {
	CurrentPower     float64 `json:"current_power"`
	DailyEnergy      float64 `json:"daily_energy"`
	MonthlyEnergy    float64 `json:"monthly_energy"`
	WeatherFactor    float64 `json:"weather_factor"`
	ActivationStatus string  `json:"activation_status"`
	LightFactor      float64 `json:"light_factor"`
}

type InstallationEstimate struct {
	JuiceRequiredML  float64 `json:"juice_required_ml"`
	ResinRequiredML  float64 `json:"resin_required_ml"`
	InstallationCost float64 `json:"installation_cost"`
	CuringTimeHours  float64 `json:"curing_time_hours"`
	Complexity       string  `json:"complexity"`
	LifespanMonths   int     `json:"lifespan_months"`
}

// DeviceMatch is a device the estimated output can run, with the proportional
// runtime it would get from one generation day.
type DeviceMatch struct {
	Name         string  `json:"name"`
	Power        float64 `json:"power"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	RuntimeHours float64 `json:"runtime_hours"`
}

// Float returns a pointer to v, for building observations with optional fields.
func Float(v float64) *float64 {
	return &v
}
