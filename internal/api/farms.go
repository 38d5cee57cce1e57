// ABOUTME: Farm, plot, planting, and master-data endpoints of the backend API
// ABOUTME: Master data is cached client-side; it changes on the order of never

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// ListFarms returns the user's farms.
func (c *Client) ListFarms(ctx context.Context) ([]models.Farm, error) {
	var farms []models.Farm
	if err := c.do(ctx, http.MethodGet, "/farms", nil, &farms); err != nil {
		return nil, err
	}
	return farms, nil
}

// CreateFarm registers a farm; the backend also creates a default plot.
func (c *Client) CreateFarm(ctx context.Context, input models.FarmCreate) (*models.Farm, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var farm models.Farm
	if err := c.do(ctx, http.MethodPost, "/farms", input, &farm); err != nil {
		return nil, err
	}
	return &farm, nil
}

// ListPlots returns the plots of one farm.
func (c *Client) ListPlots(ctx context.Context, farmID int64) ([]models.Plot, error) {
	if farmID <= 0 {
		return nil, fmt.Errorf("farm id must be positive, got %d", farmID)
	}
	var plots []models.Plot
	path := fmt.Sprintf("/farms/%d/plots", farmID)
	if err := c.do(ctx, http.MethodGet, path, nil, &plots); err != nil {
		return nil, err
	}
	return plots, nil
}

// CreatePlot adds a plot to a farm.
func (c *Client) CreatePlot(ctx context.Context, input models.PlotCreate) (*models.Plot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var plot models.Plot
	if err := c.do(ctx, http.MethodPost, "/plots", input, &plot); err != nil {
		return nil, err
	}
	return &plot, nil
}

// ListPlantings returns the user's plantings with nested crop data.
func (c *Client) ListPlantings(ctx context.Context) ([]models.Planting, error) {
	var plantings []models.Planting
	if err := c.do(ctx, http.MethodGet, "/plantings", nil, &plantings); err != nil {
		return nil, err
	}
	return plantings, nil
}

// CreatePlanting records a crop planted on a plot.
func (c *Client) CreatePlanting(ctx context.Context, input models.PlantingCreate) (*models.Planting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var planting models.Planting
	if err := c.do(ctx, http.MethodPost, "/plantings", input, &planting); err != nil {
		return nil, err
	}
	return &planting, nil
}

// Districts returns the Kerala district list, cached.
func (c *Client) Districts(ctx context.Context) ([]models.District, error) {
	if cached, ok := c.districts.Get("all"); ok {
		return cached, nil
	}
	var districts []models.District
	if err := c.do(ctx, http.MethodGet, "/master-data/districts", nil, &districts); err != nil {
		return nil, err
	}
	c.districts.Set("all", districts)
	return districts, nil
}

// SoilTypes returns the soil-type list, cached.
func (c *Client) SoilTypes(ctx context.Context) ([]models.SoilType, error) {
	if cached, ok := c.soilTypes.Get("all"); ok {
		return cached, nil
	}
	var soilTypes []models.SoilType
	if err := c.do(ctx, http.MethodGet, "/master-data/soil-types", nil, &soilTypes); err != nil {
		return nil, err
	}
	c.soilTypes.Set("all", soilTypes)
	return soilTypes, nil
}

// Crops returns the crop list, cached.
func (c *Client) Crops(ctx context.Context) ([]models.Crop, error) {
	if cached, ok := c.crops.Get("all"); ok {
		return cached, nil
	}
	var crops []models.Crop
	if err := c.do(ctx, http.MethodGet, "/master-data/crops", nil, &crops); err != nil {
		return nil, err
	}
	c.crops.Set("all", crops)
	return crops, nil
}
