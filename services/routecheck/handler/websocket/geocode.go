package websocket

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/logger"
	"github.com/phantomdigital/truckcheck-sub001/services/routecheck"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GeocodeWSHandler streams address lookups for the autocomplete field.
// Each query carries a client sequence number; only the reply for the
// newest sequence is sent, so a slow lookup never overwrites the result
// of a later keystroke.
type GeocodeWSHandler struct {
	uc routecheck.RouteCheckUC
}

// NewGeocodeWSHandler creates a new geocode websocket handler
func NewGeocodeWSHandler(uc routecheck.RouteCheckUC) *GeocodeWSHandler {
	return &GeocodeWSHandler{uc: uc}
}

type geocodeQuery struct {
	Seq   uint64 `json:"seq"`
	Query string `json:"query"`
}

type geocodeReply struct {
	Seq       uint64  `json:"seq"`
	PlaceName string  `json:"place_name,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// HandleGeocode upgrades the connection and serves lookup queries until
// the client disconnects
func (h *GeocodeWSHandler) HandleGeocode(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	var (
		mu        sync.Mutex
		latestSeq uint64
	)

	writeReply := func(reply geocodeReply) {
		mu.Lock()
		defer mu.Unlock()
		if reply.Seq != latestSeq {
			// A newer query arrived while this lookup ran; drop the reply.
			return
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("Failed to write geocode reply", logger.Err(err))
		}
	}

	ctx := c.Request().Context()

	for {
		var query geocodeQuery
		if err := conn.ReadJSON(&query); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Geocode websocket closed unexpectedly", logger.Err(err))
			}
			return nil
		}

		mu.Lock()
		if query.Seq <= latestSeq {
			mu.Unlock()
			continue
		}
		latestSeq = query.Seq
		mu.Unlock()

		go func(q geocodeQuery) {
			point, err := h.uc.GeocodeAddress(ctx, q.Query)
			if err != nil {
				writeReply(geocodeReply{Seq: q.Seq, Error: err.Error()})
				return
			}
			writeReply(geocodeReply{
				Seq:       q.Seq,
				PlaceName: point.PlaceName,
				Lat:       point.Lat,
				Lng:       point.Lng,
			})
		}(query)
	}
}
