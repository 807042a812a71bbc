package engine

import (
	"sort"

	"github.com/fruitvolt/fruitvolt/internal/models"
)

// CompatibleDevices lists every catalog device the given output can run,
// optionally restricted to one category. Runtime is a simple proportional
// model against the category's daily runtime, not a battery simulation.
// Matches come back sorted by ascending power draw; ties keep catalog order.
func (e *Engine) CompatibleDevices(powerWatts float64, category string) []models.DeviceMatch {
	var matches []models.DeviceMatch

	for _, cat := range e.catalog.DeviceCategories() {
		if category != "" && category != cat.ID {
			continue
		}
		for _, dev := range cat.Examples {
			if dev.Power > powerWatts {
				continue
			}
			matches = append(matches, models.DeviceMatch{
				Name:         dev.Name,
				Power:        dev.Power,
				Description:  dev.Description,
				Category:     cat.ID,
				RuntimeHours: round1(powerWatts / dev.Power * cat.DailyRuntimeHours),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Power < matches[j].Power
	})
	return matches
}
