package controllers

import (
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

type computeRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"min=-180,max=180"`
	OriginAlt      float64 `json:"origin_alt" validate:"gte=0"`
	DestinationLat float64 `json:"destination_lat" validate:"min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"min=-180,max=180"`
	DestinationAlt float64 `json:"destination_alt" validate:"gte=0"`
}

type weatherResponse struct {
	Temperature   float64 `json:"temperature_k"`
	Pressure      float64 `json:"pressure_hpa"`
	Humidity      float64 `json:"humidity_pct"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction_deg"`
	CloudCover    float64 `json:"cloud_cover_pct"`
	Visibility    float64 `json:"visibility_m"`
}

type waypointResponse struct {
	Lat          float64          `json:"lat"`
	Lon          float64          `json:"lon"`
	Alt          float64          `json:"alt"`
	Weather      *weatherResponse `json:"weather,omitempty"`
	TrafficCount *int             `json:"traffic_count,omitempty"`
}

type computeRouteResponse struct {
	Cost      float64            `json:"cost"`
	Path      string             `json:"path"`
	Waypoints []waypointResponse `json:"waypoints"`
}

// NewComputeRouteResponse absent weather/traffic stays absent in the payload,
// downstream consumers handle it explicitly.
func NewComputeRouteResponse(path *datastructure.Path, pathPolyline string) computeRouteResponse {
	waypoints := make([]waypointResponse, 0, path.Len())
	for _, node := range path.GetNodes() {
		wp := waypointResponse{
			Lat: node.GetLat(),
			Lon: node.GetLon(),
			Alt: node.GetAlt(),
		}
		if weather := node.GetWeather(); weather != nil {
			wp.Weather = &weatherResponse{
				Temperature:   weather.GetTemperature(),
				Pressure:      weather.GetPressure(),
				Humidity:      weather.GetHumidity(),
				WindSpeed:     weather.GetWindSpeed(),
				WindDirection: weather.GetWindDirection(),
				CloudCover:    weather.GetCloudCover(),
				Visibility:    weather.GetVisibility(),
			}
		}
		if traffic := node.GetTraffic(); traffic != nil {
			count := traffic.Count()
			wp.TrafficCount = &count
		}
		waypoints = append(waypoints, wp)
	}

	return computeRouteResponse{
		Cost:      path.GetCost(),
		Path:      pathPolyline,
		Waypoints: waypoints,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
