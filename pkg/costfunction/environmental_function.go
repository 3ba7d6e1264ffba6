package costfunction

import (
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/geo"
)

const (
	// per-% penalty of cloud cover at the edge head
	cloudPenalty = 0.01
	// per-(m/s) penalty of wind speed at the edge head
	windPenalty = 0.02
	// per-aircraft penalty of the occupancy snapshot at the edge head
	trafficPenalty = 0.1
)

// EnvironmentalFunction. edge weight is the 3D leg distance scaled by the
// destination node conditions: cloudier, windier and busier cells cost more.
// nodes with absent weather/traffic pay no penalty, they still route normally.
type EnvironmentalFunction struct {
}

func NewEnvironmentalCostFunction() *EnvironmentalFunction {
	return &EnvironmentalFunction{}
}

func (ef *EnvironmentalFunction) GetWeight(from, to *datastructure.Node) float64 {
	dist := geo.Calculate3DDistance(from.GetLat(), from.GetLon(), from.GetAlt(),
		to.GetLat(), to.GetLon(), to.GetAlt())

	factor := 1.0
	if weather := to.GetWeather(); weather != nil {
		factor += cloudPenalty * weather.GetCloudCover()
		factor += windPenalty * weather.GetWindSpeed()
	}
	factor += trafficPenalty * float64(to.GetTraffic().Count())

	return dist * factor
}
