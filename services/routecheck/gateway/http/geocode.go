package gateway_http

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	httppkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/http"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/retry"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

// HTTPGateway calls the external geocoding and directions providers
type HTTPGateway struct {
	geocodeClient *httppkg.Client
	routeClient   *httppkg.Client
	geocodeCfg    models.GeocodingConfig
	routeCfg      models.RoutingConfig
	retrier       *retry.Retrier
}

// NewHTTPGateway creates a new HTTP gateway for the geocoding and routing
// providers. Provider faults (5xx, transport errors) are retried with
// backoff; a definitive empty result is not.
func NewHTTPGateway(geocodeCfg models.GeocodingConfig, routeCfg models.RoutingConfig) *HTTPGateway {
	cfg := retry.DefaultConfig()
	cfg.RetryableFunc = isRetryableProviderError

	return &HTTPGateway{
		geocodeClient: httppkg.NewClient(geocodeCfg.BaseURL, time.Duration(geocodeCfg.TimeoutSeconds)*time.Second),
		routeClient:   httppkg.NewClient(routeCfg.BaseURL, time.Duration(routeCfg.TimeoutSeconds)*time.Second),
		geocodeCfg:    geocodeCfg,
		routeCfg:      routeCfg,
		retrier:       retry.New(cfg),
	}
}

func isRetryableProviderError(err error) bool {
	var se *httppkg.StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	// transport errors and timeouts
	return !errors.Is(err, context.Canceled)
}

type geocodeResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"` // [lng, lat]
	} `json:"features"`
}

// Geocode resolves a free-text address to its highest-confidence match,
// biased to the configured country.
func (g *HTTPGateway) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	endpoint := fmt.Sprintf("/%s.json?access_token=%s&country=%s&limit=1",
		url.PathEscape(address),
		url.QueryEscape(g.geocodeCfg.APIKey),
		url.QueryEscape(g.geocodeCfg.Country))

	var resp geocodeResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.geocodeClient.GetJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		return nil, &routecheck.GeocodeError{
			Kind:    routecheck.GeocodeUnavailable,
			Address: address,
			Err:     err,
		}
	}

	if len(resp.Features) == 0 {
		return nil, &routecheck.GeocodeError{
			Kind:    routecheck.GeocodeNotFound,
			Address: address,
		}
	}

	f := resp.Features[0]
	if len(f.Center) < 2 {
		return nil, &routecheck.GeocodeError{
			Kind:    routecheck.GeocodeUnavailable,
			Address: address,
			Err:     fmt.Errorf("malformed feature center for %q", address),
		}
	}

	return &models.GeoPoint{
		Lng:       f.Center[0],
		Lat:       f.Center[1],
		PlaceName: f.PlaceName,
	}, nil
}
