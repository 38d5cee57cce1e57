// ABOUTME: Farm activity scheduling models
// ABOUTME: Mirrors the backend's activities_log records and creation payloads

package models

import (
	"fmt"
	"time"
)

// Activity types accepted by the backend.
const (
	ActivityPlanting    = "planting"
	ActivityWatering    = "watering"
	ActivityFertilizing = "fertilizing"
	ActivityHarvesting  = "harvesting"
)

// Activity statuses.
const (
	ActivityStatusPending   = "pending"
	ActivityStatusScheduled = "scheduled"
	ActivityStatusDone      = "done"
)

// Activity is a scheduled or completed piece of farm work tied to a planting.
type Activity struct {
	ActivityID   int64      `json:"activity_id"`
	PlantingID   int64      `json:"planting_id"`
	ActivityType string     `json:"activity_type"`
	Status       string     `json:"status"`
	Notes        *string    `json:"notes"`
	Cost         *float64   `json:"cost"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// Done reports whether the activity has been completed.
func (a *Activity) Done() bool {
	return a.Status == ActivityStatusDone
}

// ActivityCreate is the payload for scheduling a new activity.
type ActivityCreate struct {
	PlantingID   int64     `json:"planting_id"`
	ActivityType string    `json:"activity_type"`
	Notes        *string   `json:"notes,omitempty"`
	Cost         *float64  `json:"cost,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

// Validate checks the payload before it goes on the wire.
func (c ActivityCreate) Validate() error {
	if c.PlantingID <= 0 {
		return fmt.Errorf("planting_id must be positive, got %d", c.PlantingID)
	}
	switch c.ActivityType {
	case ActivityPlanting, ActivityWatering, ActivityFertilizing, ActivityHarvesting:
	default:
		return fmt.Errorf("invalid activity type: %q", c.ActivityType)
	}
	if c.ScheduledFor.IsZero() {
		return fmt.Errorf("scheduled_for is required")
	}
	if c.Cost != nil && *c.Cost < 0 {
		return fmt.Errorf("cost cannot be negative, got %v", *c.Cost)
	}
	return nil
}
