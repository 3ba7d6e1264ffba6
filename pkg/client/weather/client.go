package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	fetchTimeout   = 10 * time.Second

	// free tier allows 60 calls/minute
	requestsPerSecond = 1
	requestBurst      = 5
)

// Client openweathermap current-conditions collaborator. any transport, parse
// or non-200 failure surfaces as an error which the grid builder treats as an
// absent observation.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: fetchTimeout},
		limiter:    rate.NewLimiter(requestsPerSecond, requestBurst),
	}
}

// SetBaseURL override the provider endpoint (tests).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// provider payload, units: temp Kelvin, pressure hPa, humidity %, wind m/s &
// degree, clouds %, visibility meter
type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Visibility float64 `json:"visibility"`
}

func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*datastructure.SurfaceWeather, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.WrapErrorf(nil, util.ErrInternalServerError,
			fmt.Sprintf("openweathermap returned status %d", resp.StatusCode))
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	// provider reports pressure in hPa, the surface record carries Pa
	surface := datastructure.NewSurfaceWeather(
		payload.Main.Temp,
		payload.Main.Pressure*100.0,
		payload.Main.Humidity,
		payload.Wind.Speed,
		payload.Wind.Deg,
		payload.Clouds.All,
		payload.Visibility,
	)
	return &surface, nil
}
