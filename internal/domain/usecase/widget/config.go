package widget

import (
	"fmt"
	"strings"
	"time"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
	"weather-widget/pkg/util/numberutils"
)

// Widget attribute names
const (
	AttrAPIKey      = "api-key"
	AttrCities      = "cities"
	AttrAutoRefresh = "auto-refresh"
	AttrPosition    = "position"
)

// ParseWidgetConfig reads widget attributes. Absent attributes take their
// defaults; an unusable auto-refresh falls back to the default interval.
func ParseWidgetConfig(attrs map[string]string) (entity.WidgetConfig, error) {
	apiKey := strings.TrimSpace(attrs[AttrAPIKey])
	if apiKey == "" {
		return entity.WidgetConfig{}, fmt.Errorf("%w: %s is required", model.ErrInvalidWidgetConfig, AttrAPIKey)
	}

	names, ok := attrs[AttrCities]
	if !ok {
		names = entity.DefaultCityNames
	}

	refreshMillis := numberutils.ToPositiveIntWithDefault(attrs[AttrAutoRefresh], int(entity.DefaultAutoRefresh.Milliseconds()))

	placement := entity.DefaultPlacement
	if raw := strings.TrimSpace(attrs[AttrPosition]); raw != "" {
		placement = entity.Placement(raw)
		if !placement.Valid() {
			return entity.WidgetConfig{}, fmt.Errorf("%w: unknown %s %q", model.ErrInvalidWidgetConfig, AttrPosition, raw)
		}
	}

	return entity.WidgetConfig{
		APIKey:      apiKey,
		Cities:      SplitCityNames(names),
		AutoRefresh: time.Duration(refreshMillis) * time.Millisecond,
		Position:    placement,
	}, nil
}

// SplitCityNames splits a comma separated list, trimming names and dropping empty ones
func SplitCityNames(list string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
