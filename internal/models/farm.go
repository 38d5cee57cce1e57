// ABOUTME: Farm, plot, planting, and master-data models
// ABOUTME: Mirrors the backend's farm hierarchy: farm -> plot -> planting -> crop

package models

import (
	"fmt"
	"time"
)

// Farm is a farmer-owned farm in a Kerala district.
type Farm struct {
	FarmID     int64  `json:"farm_id"`
	FarmName   string `json:"farm_name"`
	DistrictID int    `json:"district_id"`
}

// FarmCreate is the payload for registering a farm.
type FarmCreate struct {
	FarmName   string `json:"farm_name"`
	DistrictID int    `json:"district_id"`
}

// Validate checks the payload before it goes on the wire.
func (c FarmCreate) Validate() error {
	if c.FarmName == "" {
		return fmt.Errorf("farm_name is required")
	}
	if c.DistrictID <= 0 {
		return fmt.Errorf("district_id must be positive, got %d", c.DistrictID)
	}
	return nil
}

// Plot is a subdivision of a farm with a single soil type.
type Plot struct {
	PlotID     int64   `json:"plot_id"`
	FarmID     int64   `json:"farm_id"`
	PlotName   string  `json:"plot_name"`
	AreaAcres  float64 `json:"area_acres"`
	SoilTypeID int     `json:"soil_type_id"`
}

// PlotCreate is the payload for adding a plot to a farm.
type PlotCreate struct {
	FarmID     int64   `json:"farm_id"`
	PlotName   string  `json:"plot_name"`
	AreaAcres  float64 `json:"area_acres"`
	SoilTypeID int     `json:"soil_type_id"`
}

// Validate checks the payload before it goes on the wire.
func (c PlotCreate) Validate() error {
	if c.FarmID <= 0 {
		return fmt.Errorf("farm_id must be positive, got %d", c.FarmID)
	}
	if c.PlotName == "" {
		return fmt.Errorf("plot_name is required")
	}
	if c.AreaAcres <= 0 {
		return fmt.Errorf("area_acres must be positive, got %v", c.AreaAcres)
	}
	if c.SoilTypeID <= 0 {
		return fmt.Errorf("soil_type_id must be positive, got %d", c.SoilTypeID)
	}
	return nil
}

// Crop is a master-data crop record.
type Crop struct {
	CropID              int    `json:"crop_id"`
	CropName            string `json:"crop_name"`
	IdealPlantingSeason string `json:"ideal_planting_season,omitempty"`
	TimeToHarvestDays   *int   `json:"time_to_harvest_days,omitempty"`
}

// Planting records a crop planted on a plot.
type Planting struct {
	PlantingID    int64      `json:"planting_id"`
	PlotID        int64      `json:"plot_id"`
	CropID        int        `json:"crop_id"`
	PlantingDate  string     `json:"planting_date"` // backend uses bare dates (2006-01-02)
	ExpectedYield *float64   `json:"expected_yield"`
	ActualYield   *float64   `json:"actual_yield"`
	HarvestDate   *string    `json:"harvest_date"`
	Crop          *Crop      `json:"crop,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// PlantingCreate is the payload for recording a planting.
type PlantingCreate struct {
	PlotID       int64  `json:"plot_id"`
	CropID       int    `json:"crop_id"`
	PlantingDate string `json:"planting_date"`
}

// Validate checks the payload before it goes on the wire.
func (c PlantingCreate) Validate() error {
	if c.PlotID <= 0 {
		return fmt.Errorf("plot_id must be positive, got %d", c.PlotID)
	}
	if c.CropID <= 0 {
		return fmt.Errorf("crop_id must be positive, got %d", c.CropID)
	}
	if _, err := time.Parse("2006-01-02", c.PlantingDate); err != nil {
		return fmt.Errorf("planting_date must be YYYY-MM-DD: %w", err)
	}
	return nil
}

// District is a master-data Kerala district.
type District struct {
	DistrictID   int    `json:"district_id"`
	DistrictName string `json:"district_name"`
}

// SoilType is a master-data soil classification.
type SoilType struct {
	SoilTypeID  int    `json:"soil_type_id"`
	SoilName    string `json:"soil_name"`
	Description string `json:"description,omitempty"`
}

// CalendarEntry is one crop's guidance for a month of the crop calendar.
type CalendarEntry struct {
	CropName string `json:"crop_name"`
	Season   string `json:"season,omitempty"`
	Guidance string `json:"guidance,omitempty"`
}

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	TotalFarms        int `json:"total_farms"`
	TotalPlots        int `json:"total_plots"`
	ActivePlantings   int `json:"active_plantings"`
	PendingActivities int `json:"pending_activities"`
	UpcomingHarvests  int `json:"upcoming_harvests"`
}
