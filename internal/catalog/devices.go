package catalog

import "github.com/fruitvolt/fruitvolt/internal/models"

// defaultDeviceCategories is the built-in device compatibility catalog.
var defaultDeviceCategories = []models.DeviceCategory{
	{
		ID:         "small",
		Name:       "Small Devices (<5W)",
		PowerRange: models.PowerRange{Min: 1, Max: 5},
		Examples: []models.DeviceExample{
			{Name: "LED Light Bulb", Power: 3, Description: "Energy-efficient lighting"},
			{Name: "Phone Charger", Power: 5, Description: "Smartphone charging"},
			{Name: "USB Fan", Power: 4, Description: "Personal cooling"},
			{Name: "Bluetooth Speaker", Power: 2, Description: "Portable audio"},
			{Name: "Digital Clock", Power: 1, Description: "Time display"},
		},
		PanelSizeRange:    models.PanelSizeRange{Min: 0.5, Max: 2},
		DailyRuntimeHours: 8,
	},
	{
		ID:         "medium",
		Name:       "Medium Devices (5-50W)",
		PowerRange: models.PowerRange{Min: 5, Max: 50},
		Examples: []models.DeviceExample{
			{Name: "Laptop Charger", Power: 45, Description: "Computer power supply"},
			{Name: "Tablet Charger", Power: 25, Description: "Tablet charging"},
			{Name: "Small Router", Power: 15, Description: "Internet connectivity"},
			{Name: "LED TV Strip", Power: 30, Description: "Ambient lighting"},
			{Name: "Webcam", Power: 8, Description: "Video conferencing"},
		},
		PanelSizeRange:    models.PanelSizeRange{Min: 2, Max: 10},
		DailyRuntimeHours: 6,
	},
	{
		ID:         "large",
		Name:       "Large Devices (50-500W)",
		PowerRange: models.PowerRange{Min: 50, Max: 500},
		Examples: []models.DeviceExample{
			{Name: "Desktop Computer", Power: 300, Description: "Workstation/gaming PC"},
			{Name: "Gaming Console", Power: 200, Description: "Entertainment system"},
			{Name: "Mini Fridge", Power: 150, Description: "Compact cooling"},
			{Name: "Large Monitor", Power: 60, Description: "Display screen"},
			{Name: "Kitchen Appliance", Power: 400, Description: "Small cooking device"},
		},
		PanelSizeRange:    models.PanelSizeRange{Min: 10, Max: 50},
		DailyRuntimeHours: 4,
	},
}
