package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-widget/internal/domain/model"
	"weather-widget/pkg/http"
)

func newProvider(t *testing.T, handler nethttp.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewWeatherGateway_RequiresAPIKey(t *testing.T) {
	if _, err := NewWeatherGateway("", "http://localhost", "http://localhost", http.ClientOptions{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestCurrentWeather_SendsExpectedQuery(t *testing.T) {
	srv := newProvider(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != currentWeatherPath {
			t.Errorf("path = %s, want %s", r.URL.Path, currentWeatherPath)
		}
		q := r.URL.Query()
		if q.Get("lat") != "51.5074" || q.Get("lon") != "-0.1278" || q.Get("appid") != "k" || q.Get("units") != "metric" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"London","main":{"temp":15.5},"sys":{"country":"GB"}}`))
	})

	gateway, err := NewWeatherGateway("k", srv.URL, srv.URL, http.ClientOptions{})
	if err != nil {
		t.Fatalf("NewWeatherGateway: %v", err)
	}

	resp, err := gateway.CurrentWeather(context.Background(), 51.5074, -0.1278)
	if err != nil {
		t.Fatalf("CurrentWeather: %v", err)
	}
	if resp.Name != "London" || resp.Sys.Country != "GB" || resp.Wind != nil {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestGeocode_StatusErrorBecomesNetworkError(t *testing.T) {
	srv := newProvider(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	gateway, _ := NewWeatherGateway("secret", srv.URL, srv.URL, http.ClientOptions{})
	_, err := gateway.DirectGeocode(context.Background(), "London", 5)

	var netErr *model.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("err = %v, want *model.NetworkError", err)
	}
	if netErr.StatusCode != nethttp.StatusUnauthorized || !strings.Contains(netErr.Error(), "Invalid API key") {
		t.Errorf("unexpected error %v", netErr)
	}
}

func TestGeocode_TransportFailureHidesAPIKey(t *testing.T) {
	srv := httptest.NewServer(nethttp.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gateway, _ := NewWeatherGateway("secret", url, url, http.ClientOptions{})
	_, err := gateway.ReverseGeocode(context.Background(), 1, 2, 1)

	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("error leaks the api key: %v", err)
	}
}
