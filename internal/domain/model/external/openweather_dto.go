package external

// CurrentWeatherResponse represents the response from the current weather API.
// Blocks the provider may omit are pointers so absence can be told from zero.
type CurrentWeatherResponse struct {
	Name       string             `json:"name"`
	Main       MainConditionsDTO  `json:"main"`
	Weather    []WeatherDetailDTO `json:"weather"`
	Wind       *WindDTO           `json:"wind,omitempty"`
	Clouds     *CloudsDTO         `json:"clouds,omitempty"`
	Visibility *float64           `json:"visibility,omitempty"`
	Sys        SysDTO             `json:"sys"`
	Timezone   *int               `json:"timezone,omitempty"`
}

type MainConditionsDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type WeatherDetailDTO struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WindDTO struct {
	Speed float64 `json:"speed"`
}

type CloudsDTO struct {
	All int `json:"all"`
}

type SysDTO struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// GeocodeResponse is one entry of the direct and reverse geocoding APIs
type GeocodeResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// APIErrorResponse represents an error body of the weather provider.
// Cod is a number on some endpoints and a string on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
