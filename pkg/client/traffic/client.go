package traffic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/geo"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://opensky-network.org/api/states/all"
	fetchTimeout   = 15 * time.Second

	// authenticated accounts get 4000 credits/day, keep the pull rate modest
	requestsPerSecond = 1
	requestBurst      = 2
)

// Client opensky state-vectors collaborator. the snapshot is stored on the node
// as-is, the core only reads presence and the state count.
type Client struct {
	clientId     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

func NewClient(clientId, clientSecret string) *Client {
	return &Client{
		clientId:     clientId,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{Timeout: fetchTimeout},
		limiter:      rate.NewLimiter(requestsPerSecond, requestBurst),
	}
}

// SetBaseURL override the provider endpoint (tests).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// states come back as heterogeneous arrays:
// [icao24, callsign, origin_country, time_position, last_contact, lon, lat,
//
//	baro_altitude, on_ground, velocity, true_track, ...]
type openskyResponse struct {
	Time   int64           `json:"time"`
	States [][]interface{} `json:"states"`
}

// Fetch all aircraft state vectors inside the bounding box with radiusKm
// around (lat, lon).
func (c *Client) Fetch(ctx context.Context, lat, lon, radiusKm float64) (*datastructure.TrafficSnapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	lamin, lomin := geo.GetDestinationPoint(lat, lon, 225, radiusKm)
	lamax, lomax := geo.GetDestinationPoint(lat, lon, 45, radiusKm)

	q := url.Values{}
	q.Set("lamin", strconv.FormatFloat(lamin, 'f', -1, 64))
	q.Set("lomin", strconv.FormatFloat(lomin, 'f', -1, 64))
	q.Set("lamax", strconv.FormatFloat(lamax, 'f', -1, 64))
	q.Set("lomax", strconv.FormatFloat(lomax, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.clientId != "" {
		req.SetBasicAuth(c.clientId, c.clientSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.WrapErrorf(nil, util.ErrInternalServerError,
			fmt.Sprintf("opensky returned status %d", resp.StatusCode))
	}

	var payload openskyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	states := make([]datastructure.AircraftState, 0, len(payload.States))
	for _, raw := range payload.States {
		if len(raw) < 11 {
			continue
		}
		states = append(states, datastructure.NewAircraftState(datastructure.AircraftStateInput{
			Icao24:       asString(raw[0]),
			Callsign:     asString(raw[1]),
			Longitude:    asFloat(raw[5]),
			Latitude:     asFloat(raw[6]),
			BaroAltitude: asFloat(raw[7]),
			Velocity:     asFloat(raw[9]),
			Heading:      asFloat(raw[10]),
		}))
	}

	return datastructure.NewTrafficSnapshot(states), nil
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// nullable provider field
func asFloat(v interface{}) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
