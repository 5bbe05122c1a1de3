package entity

// WeatherSnapshot is the normalized current conditions for one location.
// UVIndex and DewPoint are always 0: the current-weather endpoint does not report them.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    int     `json:"pressure"`
	UVIndex     float64 `json:"uvIndex"`
	Visibility  int     `json:"visibility"`
	Clouds      int     `json:"clouds"`
	DewPoint    float64 `json:"dewPoint"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
	Timezone    string  `json:"timezone"`
}
