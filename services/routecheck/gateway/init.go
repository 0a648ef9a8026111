package gateway

import (
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
	natspkg "github.com/phantomdigital/truckcheck-sub001/internal/pkg/nats"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
	gateway_http "github.com/phantomdigital/truckcheck-sub001/services/routecheck/gateway/http"
	gateway_nats "github.com/phantomdigital/truckcheck-sub001/services/routecheck/gateway/nats"
)

// RouteCheckGW composes the HTTP provider gateway and the NATS event
// gateway behind the single gateway interface the usecase depends on
type RouteCheckGW struct {
	httpGateway *gateway_http.HTTPGateway
	natsGateway *gateway_nats.NATSGateway
}

// NewRouteCheckGW creates a new gateway instance wired to the geocoding
// and routing providers and the NATS event stream
func NewRouteCheckGW(natsClient *natspkg.Client, geocodeCfg models.GeocodingConfig, routeCfg models.RoutingConfig) routecheck.RouteCheckGW {
	return &RouteCheckGW{
		httpGateway: gateway_http.NewHTTPGateway(geocodeCfg, routeCfg),
		natsGateway: gateway_nats.NewNATSGateway(natsClient),
	}
}
