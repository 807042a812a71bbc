// Package catalog holds the static knowledge base: fruit panel profiles and
// the device compatibility catalog. Both are immutable after construction;
// accessors hand out deep copies so callers can never mutate the tables.
package catalog

import (
	"fmt"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

type Catalog struct {
	fruits    []models.FruitProfile
	fruitIdx  map[string]int
	devices   []models.DeviceCategory
	deviceIdx map[string]int
}

// New validates the supplied tables and builds a catalog. Fruit iteration
// order follows the slice order given here; ranking ties are broken by it.
func New(fruits []models.FruitProfile, devices []models.DeviceCategory) (*Catalog, error) {
	c := &Catalog{
		fruitIdx:  make(map[string]int, len(fruits)),
		deviceIdx: make(map[string]int, len(devices)),
	}

	for _, f := range fruits {
		if err := validateFruit(f); err != nil {
			return nil, fmt.Errorf("fruit %q: %w", f.ID, err)
		}
		if _, dup := c.fruitIdx[f.ID]; dup {
			return nil, fmt.Errorf("fruit %q: duplicate id", f.ID)
		}
		c.fruitIdx[f.ID] = len(c.fruits)
		c.fruits = append(c.fruits, f)
	}

	for _, d := range devices {
		if err := validateDeviceCategory(d); err != nil {
			return nil, fmt.Errorf("device category %q: %w", d.ID, err)
		}
		if _, dup := c.deviceIdx[d.ID]; dup {
			return nil, fmt.Errorf("device category %q: duplicate id", d.ID)
		}
		c.deviceIdx[d.ID] = len(c.devices)
		c.devices = append(c.devices, d)
	}

	return c, nil
}

// Default builds the catalog from the built-in tables. Panics on invalid
// built-in data, which is a programming error caught by the package tests.
func Default() *Catalog {
	c, err := New(defaultFruits, defaultDeviceCategories)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid built-in data: %v", err))
	}
	return c
}

func validateFruit(f models.FruitProfile) error {
	if f.ID == "" {
		return fmt.Errorf("missing id")
	}
	if f.Name == "" {
		return fmt.Errorf("missing name")
	}
	// The scorer reads these two unconditionally; a profile without them is
	// rejected at load instead of failing mid-request.
	if f.ActivationThreshold.UVIndex <= 0 {
		return fmt.Errorf("missing activation_threshold.uv_index")
	}
	if f.RegionalOptimization.TemperatureRange.Min == 0 && f.RegionalOptimization.TemperatureRange.Max == 0 {
		return fmt.Errorf("missing regional_optimization.temperature_range")
	}
	if f.RegionalOptimization.TemperatureRange.Max <= f.RegionalOptimization.TemperatureRange.Min {
		return fmt.Errorf("temperature_range max must exceed min")
	}
	if f.PowerDensityPerSqft <= 0 {
		return fmt.Errorf("power_density_per_sqft must be positive")
	}
	if f.JuiceRequiredPerSqft <= 0 {
		return fmt.Errorf("juice_required_per_sqft must be positive")
	}
	return nil
}

func validateDeviceCategory(d models.DeviceCategory) error {
	if d.ID == "" {
		return fmt.Errorf("missing id")
	}
	if len(d.Examples) == 0 {
		return fmt.Errorf("no device examples")
	}
	if d.DailyRuntimeHours <= 0 {
		return fmt.Errorf("daily_runtime_hours must be positive")
	}
	for _, ex := range d.Examples {
		if ex.Power <= 0 {
			return fmt.Errorf("device %q: power must be positive", ex.Name)
		}
	}
	return nil
}

// Fruit returns a copy of the profile for id.
func (c *Catalog) Fruit(id string) (models.FruitProfile, bool) {
	i, ok := c.fruitIdx[id]
	if !ok {
		return models.FruitProfile{}, false
	}
	return cloneFruit(c.fruits[i]), true
}

// Fruits returns copies of all profiles in catalog order.
func (c *Catalog) Fruits() []models.FruitProfile {
	out := make([]models.FruitProfile, len(c.fruits))
	for i, f := range c.fruits {
		out[i] = cloneFruit(f)
	}
	return out
}

func (c *Catalog) NumFruits() int {
	return len(c.fruits)
}

// DeviceCategory returns a copy of the category for id.
func (c *Catalog) DeviceCategory(id string) (models.DeviceCategory, bool) {
	i, ok := c.deviceIdx[id]
	if !ok {
		return models.DeviceCategory{}, false
	}
	return cloneDeviceCategory(c.devices[i]), true
}

// DeviceCategories returns copies of all categories in catalog order.
func (c *Catalog) DeviceCategories() []models.DeviceCategory {
	out := make([]models.DeviceCategory, len(c.devices))
	for i, d := range c.devices {
		out[i] = cloneDeviceCategory(d)
	}
	return out
}

func cloneFruit(f models.FruitProfile) models.FruitProfile {
	out := f
	if f.PhotosyntheticPigments != nil {
		out.PhotosyntheticPigments = make(map[string]float64, len(f.PhotosyntheticPigments))
		for k, v := range f.PhotosyntheticPigments {
			out.PhotosyntheticPigments[k] = v
		}
	}
	if f.AvailabilityByRegion != nil {
		out.AvailabilityByRegion = make(map[string]string, len(f.AvailabilityByRegion))
		for k, v := range f.AvailabilityByRegion {
			out.AvailabilityByRegion[k] = v
		}
	}
	if f.SeasonalAvailability != nil {
		out.SeasonalAvailability = append([]string(nil), f.SeasonalAvailability...)
	}
	if f.RegionalOptimization.BestClimateZones != nil {
		out.RegionalOptimization.BestClimateZones = append([]string(nil), f.RegionalOptimization.BestClimateZones...)
	}
	if f.RegionalOptimization.SeasonalPerformance != nil {
		sp := make(map[string]float64, len(f.RegionalOptimization.SeasonalPerformance))
		for k, v := range f.RegionalOptimization.SeasonalPerformance {
			sp[k] = v
		}
		out.RegionalOptimization.SeasonalPerformance = sp
	}
	return out
}

func cloneDeviceCategory(d models.DeviceCategory) models.DeviceCategory {
	out := d
	out.Examples = append([]models.DeviceExample(nil), d.Examples...)
	return out
}
