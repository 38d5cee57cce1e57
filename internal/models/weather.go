// ABOUTME: Weather display models with farming-oriented alert strings
// ABOUTME: Condition is collapsed to the three states the assistant cares about

package models

// Weather conditions, collapsed from the provider's many states.
const (
	ConditionSunny  = "sunny"
	ConditionCloudy = "cloudy"
	ConditionRainy  = "rainy"
)

// WeatherData is the assistant's view of current weather plus derived
// farming alerts in the user's language.
type WeatherData struct {
	Temperature  int      `json:"temperature"` // °C
	Humidity     int      `json:"humidity"`    // percent
	Condition    string   `json:"condition"`
	WindSpeedKPH int      `json:"wind_speed_kph"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Alerts       []string `json:"alerts"`
}
