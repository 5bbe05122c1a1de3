package api

import (
	"context"
	"errors"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/http"
)

const (
	ipLocationPath   = "/json"
	ipLocationFields = "status,message,lat,lon,city,countryCode"
	ipStatusSuccess  = "success"
)

// ipLocator resolves the position of the caller's public IP address
type ipLocator struct {
	httpClient *http.Client
}

// NewIPLocator creates a Locator backed by an ip-api compatible service
func NewIPLocator(baseURL string, clientOptions http.ClientOptions) Locator {
	return &ipLocator{httpClient: http.NewHttpClient(baseURL, clientOptions)}
}

func (l *ipLocator) CurrentPosition(ctx context.Context) (entity.Position, error) {
	successResp, _, _, err := l.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(ipLocationPath).
		WithQueryParams(map[string]string{"fields": ipLocationFields}).
		WithSuccessResp(&external.IPLocationResponse{}).
		Execute()

	if err != nil {
		return entity.Position{}, &model.PositionUnavailableError{Reason: "ip lookup failed", Err: err}
	}

	location := successResp.(*external.IPLocationResponse)
	if location.Status != ipStatusSuccess {
		reason := location.Message
		if reason == "" {
			reason = "ip lookup returned status " + location.Status
		}
		return entity.Position{}, &model.PositionUnavailableError{Reason: reason}
	}

	return entity.Position{Lat: location.Lat, Lon: location.Lon}, nil
}

type staticLocator struct {
	position entity.Position
}

// NewStaticLocator creates a Locator that always answers with position
func NewStaticLocator(position entity.Position) Locator {
	return &staticLocator{position: position}
}

func (l *staticLocator) CurrentPosition(ctx context.Context) (entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return entity.Position{}, &model.PositionUnavailableError{Reason: "lookup cancelled", Err: err}
	}
	return l.position, nil
}

type unsupportedLocator struct{}

// NewUnsupportedLocator creates a Locator for environments without geolocation
func NewUnsupportedLocator() Locator {
	return unsupportedLocator{}
}

func (unsupportedLocator) CurrentPosition(context.Context) (entity.Position, error) {
	return entity.Position{}, &model.PositionUnavailableError{Reason: "geolocation is not supported", Err: errUnsupported}
}

var errUnsupported = errors.New("no locator configured")
