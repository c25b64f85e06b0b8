package models

// WeatherCondition is the coarse sky state the UI renders an icon for.
type WeatherCondition string

const (
	WeatherSunny        WeatherCondition = "sunny"
	WeatherCloudy       WeatherCondition = "cloudy"
	WeatherRainy        WeatherCondition = "rainy"
	WeatherPartlyCloudy WeatherCondition = "partly-cloudy"
)

// ForecastDay is one day of the short-range forecast.
type ForecastDay struct {
	Day       string           `json:"day"`
	Temp      int              `json:"temp"`
	Condition WeatherCondition `json:"condition"`
}

// WeatherSnapshot is the current conditions plus a five-day outlook, with
// display strings already resolved to one language.
type WeatherSnapshot struct {
	Location    string           `json:"location"`
	Temperature int              `json:"temperature"`
	Condition   WeatherCondition `json:"condition"`
	Humidity    int              `json:"humidity"`
	WindSpeed   int              `json:"windSpeed"`
	Forecast    []ForecastDay    `json:"forecast"`
	Labels      WeatherLabels    `json:"labels"`
}

// WeatherLabels carries the localized captions the weather card renders.
type WeatherLabels struct {
	Weather  string `json:"weather"`
	Today    string `json:"today"`
	Humidity string `json:"humidity"`
	Wind     string `json:"wind"`
}
