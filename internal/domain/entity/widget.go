package entity

import "time"

// Placement is the corner or edge of the page a widget is anchored to.
type Placement string

const (
	PlacementTopLeft      Placement = "top-left"
	PlacementTopCenter    Placement = "top-center"
	PlacementTopRight     Placement = "top-right"
	PlacementMiddleLeft   Placement = "middle-left"
	PlacementCenter       Placement = "center"
	PlacementMiddleRight  Placement = "middle-right"
	PlacementBottomLeft   Placement = "bottom-left"
	PlacementBottomCenter Placement = "bottom-center"
	PlacementBottomRight  Placement = "bottom-right"
)

var placements = map[Placement]struct{}{
	PlacementTopLeft: {}, PlacementTopCenter: {}, PlacementTopRight: {},
	PlacementMiddleLeft: {}, PlacementCenter: {}, PlacementMiddleRight: {},
	PlacementBottomLeft: {}, PlacementBottomCenter: {}, PlacementBottomRight: {},
}

// Valid reports whether p is one of the nine known placements.
func (p Placement) Valid() bool {
	_, ok := placements[p]
	return ok
}

const (
	DefaultCityNames   = "London"
	DefaultAutoRefresh = 300000 * time.Millisecond
	DefaultPlacement   = PlacementBottomRight
)

// WidgetConfig holds the attributes a widget instance is configured with.
// APIKey is never serialized.
type WidgetConfig struct {
	APIKey      string        `json:"-"`
	Cities      []string      `json:"cities"`
	AutoRefresh time.Duration `json:"-"`
	Position    Placement     `json:"position"`
}

// AutoRefreshMillis is the refresh interval as exposed to clients.
func (c WidgetConfig) AutoRefreshMillis() int64 {
	return c.AutoRefresh.Milliseconds()
}
