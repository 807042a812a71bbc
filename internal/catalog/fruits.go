package catalog

import "github.com/fruitvolt/fruitvolt/internal/models"

// defaultFruits is the built-in fruit panel knowledge base. Order matters:
// recommendation ties are broken by position in this slice.
var defaultFruits = []models.FruitProfile{
	{
		ID:                    "beetroot",
		Name:                  "Beetroot",
		ScientificName:        "Beta vulgaris",
		PHLevel:               5.3,
		Acidity:               models.AcidityMedium,
		Conductivity:          0.8,
		RedoxPotential:        0.75,
		IonConductivity:       0.45,
		Efficiency:            0.85,
		LowLightEfficiency:    0.95,
		HighUVEfficiency:      0.65,
		PowerDensityPerSqft:   1.05,
		CostPerKg:             1.20,
		JuiceRequiredPerSqft:  175,
		ResinRatio:            0.5,
		ResinCuringTime:       4,
		ClimateSpecialization: models.ClimateCloudy,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        2,
			LightIntensity: 2000,
			CloudCoverMax:  80,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"temperate", "continental"},
			TemperatureRange: models.TemperatureRange{Min: 5, Max: 25},
			SeasonalPerformance: map[string]float64{
				"spring": 0.9, "summer": 0.85, "autumn": 0.95, "winter": 0.7,
			},
			HumidityTolerance: 70,
		},
		PhotosyntheticPigments: map[string]float64{
			"chlorophyll": 12.5, "carotenoids": 8.2, "anthocyanins": 15.8,
			"betalains": 45.3, "flavonoids": 22.1,
		},
		OperationalLifespan:    18,
		DegradationRateMonthly: 2.0,
		InstallationComplexity: models.ComplexitySimple,
		AvailabilityByRegion: map[string]string{
			"europe": models.AvailabilityHigh, "north_america": models.AvailabilityMedium, "asia": models.AvailabilityMedium,
		},
		SeasonalAvailability: []string{"autumn", "winter"},
	},
	{
		ID:                    "orange",
		Name:                  "Orange",
		ScientificName:        "Citrus × sinensis",
		PHLevel:               3.5,
		Acidity:               models.AcidityHigh,
		Conductivity:          1.2,
		RedoxPotential:        0.92,
		IonConductivity:       0.68,
		Efficiency:            0.78,
		LowLightEfficiency:    0.45,
		HighUVEfficiency:      0.95,
		PowerDensityPerSqft:   1.25,
		CostPerKg:             1.80,
		JuiceRequiredPerSqft:  200,
		ResinRatio:            0.6,
		ResinCuringTime:       6,
		ClimateSpecialization: models.ClimateSunny,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        4,
			LightIntensity: 5000,
			CloudCoverMax:  40,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"tropical", "subtropical", "mediterranean"},
			TemperatureRange: models.TemperatureRange{Min: 15, Max: 35},
			SeasonalPerformance: map[string]float64{
				"spring": 0.8, "summer": 0.95, "autumn": 0.85, "winter": 0.6,
			},
			HumidityTolerance: 85,
		},
		PhotosyntheticPigments: map[string]float64{
			"chlorophyll": 8.3, "carotenoids": 35.2, "anthocyanins": 2.1,
			"betalains": 0.0, "flavonoids": 28.5,
		},
		OperationalLifespan:    15,
		DegradationRateMonthly: 2.5,
		InstallationComplexity: models.ComplexitySimple,
		AvailabilityByRegion: map[string]string{
			"global": models.AvailabilityHigh,
		},
		SeasonalAvailability: []string{"winter", "spring"},
	},
	{
		ID:                    "blueberry",
		Name:                  "Blueberry",
		ScientificName:        "Vaccinium corymbosum",
		PHLevel:               3.8,
		Acidity:               models.AcidityMedium,
		Conductivity:          0.95,
		RedoxPotential:        0.82,
		IonConductivity:       0.52,
		Efficiency:            0.72,
		LowLightEfficiency:    0.88,
		HighUVEfficiency:      0.58,
		PowerDensityPerSqft:   0.95,
		CostPerKg:             8.50,
		JuiceRequiredPerSqft:  190,
		ResinRatio:            0.55,
		ResinCuringTime:       5,
		ClimateSpecialization: models.ClimateCloudy,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        2,
			LightIntensity: 2500,
			CloudCoverMax:  75,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"temperate", "continental"},
			TemperatureRange: models.TemperatureRange{Min: 10, Max: 28},
			SeasonalPerformance: map[string]float64{
				"spring": 0.75, "summer": 0.9, "autumn": 0.85, "winter": 0.5,
			},
			HumidityTolerance: 75,
		},
		PhotosyntheticPigments: map[string]float64{
			"chlorophyll": 10.2, "carotenoids": 12.8, "anthocyanins": 52.4,
			"betalains": 0.0, "flavonoids": 45.3,
		},
		OperationalLifespan:    16,
		DegradationRateMonthly: 2.2,
		InstallationComplexity: models.ComplexityModerate,
		AvailabilityByRegion: map[string]string{
			"north_america": models.AvailabilityHigh, "europe": models.AvailabilityMedium, "asia": models.AvailabilityLow,
		},
		SeasonalAvailability: []string{"summer"},
	},
	{
		ID:                    "mango",
		Name:                  "Mango",
		ScientificName:        "Mangifera indica",
		PHLevel:               5.2,
		Acidity:               models.AcidityLow,
		Conductivity:          0.9,
		RedoxPotential:        0.8,
		Efficiency:            0.9,
		LowLightEfficiency:    0.5,
		HighUVEfficiency:      0.98,
		PowerDensityPerSqft:   1.5,
		CostPerKg:             2.0,
		JuiceRequiredPerSqft:  250,
		ResinRatio:            0.6,
		ResinCuringTime:       7,
		ClimateSpecialization: models.ClimateTropical,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        6,
			LightIntensity: 60000,
			CloudCoverMax:  30,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"tropical", "subtropical"},
			TemperatureRange: models.TemperatureRange{Min: 20, Max: 36},
		},
		OperationalLifespan:    12,
		InstallationComplexity: models.ComplexityModerate,
		AvailabilityByRegion: map[string]string{
			"asia": models.AvailabilityHigh, "south_america": models.AvailabilityHigh,
		},
		SeasonalAvailability: []string{"spring", "summer"},
	},
	{
		ID:                    "banana",
		Name:                  "Banana",
		ScientificName:        "Musa acuminata",
		PHLevel:               5.0,
		Acidity:               models.AcidityLow,
		Conductivity:          0.9,
		RedoxPotential:        0.79,
		Efficiency:            0.88,
		LowLightEfficiency:    0.6,
		HighUVEfficiency:      0.92,
		PowerDensityPerSqft:   1.35,
		CostPerKg:             1.5,
		JuiceRequiredPerSqft:  200,
		ResinRatio:            0.5,
		ResinCuringTime:       5,
		ClimateSpecialization: models.ClimateTropical,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        5,
			LightIntensity: 40000,
			CloudCoverMax:  40,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"tropical"},
			TemperatureRange: models.TemperatureRange{Min: 18, Max: 35},
		},
		OperationalLifespan:    12,
		InstallationComplexity: models.ComplexitySimple,
		AvailabilityByRegion: map[string]string{
			"asia": models.AvailabilityHigh, "africa": models.AvailabilityHigh,
		},
		SeasonalAvailability: []string{"all"},
	},
	{
		ID:                    "apple",
		Name:                  "Apple",
		ScientificName:        "Malus domestica",
		PHLevel:               3.7,
		Acidity:               models.AcidityHigh,
		Conductivity:          0.9,
		RedoxPotential:        0.85,
		Efficiency:            0.8,
		LowLightEfficiency:    0.9,
		HighUVEfficiency:      0.7,
		PowerDensityPerSqft:   1.0,
		CostPerKg:             2.2,
		JuiceRequiredPerSqft:  180,
		ResinRatio:            0.5,
		ResinCuringTime:       6,
		ClimateSpecialization: models.ClimateTemperate,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        2,
			LightIntensity: 3000,
			CloudCoverMax:  70,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"temperate", "continental"},
			TemperatureRange: models.TemperatureRange{Min: 4, Max: 24},
		},
		OperationalLifespan:    20,
		InstallationComplexity: models.ComplexityModerate,
		AvailabilityByRegion: map[string]string{
			"europe": models.AvailabilityHigh, "north_america": models.AvailabilityHigh,
		},
		SeasonalAvailability: []string{"autumn"},
	},
	{
		ID:                    "grape",
		Name:                  "Grape",
		ScientificName:        "Vitis vinifera",
		PHLevel:               3.4,
		Acidity:               models.AcidityMedium,
		Conductivity:          0.85,
		RedoxPotential:        0.8,
		Efficiency:            0.8,
		LowLightEfficiency:    0.6,
		HighUVEfficiency:      0.95,
		PowerDensityPerSqft:   1.1,
		CostPerKg:             2.4,
		JuiceRequiredPerSqft:  160,
		ResinRatio:            0.5,
		ResinCuringTime:       6,
		ClimateSpecialization: models.ClimateMediterranean,
		ActivationThreshold: models.ActivationThreshold{
			UVIndex:        4,
			LightIntensity: 45000,
			CloudCoverMax:  40,
		},
		RegionalOptimization: models.RegionalOptimization{
			BestClimateZones: []string{"mediterranean", "subtropical"},
			TemperatureRange: models.TemperatureRange{Min: 12, Max: 32},
		},
		OperationalLifespan:    18,
		InstallationComplexity: models.ComplexityComplex,
		AvailabilityByRegion: map[string]string{
			"europe": models.AvailabilityHigh, "north_america": models.AvailabilityHigh,
		},
		SeasonalAvailability: []string{"summer"},
	},
}
