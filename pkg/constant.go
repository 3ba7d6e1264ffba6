package pkg

const (
	INF_WEIGHT     float64 = 1e15
	INF_WEIGHT_INT         = 1e15

	// grid altitude is stored in grid units, 1 unit = 1000 meter.
	ALTITUDE_UNIT_METERS = 1000.0

	DEFAULT_TRAFFIC_RADIUS_KM = 50.0
	DEFAULT_FETCH_WORKERS     = 8
)

const (
	DEBUG = false
)

// enum of edge cost derivation mode
type CostMode uint8

const (
	COST_ENVIRONMENTAL CostMode = iota
	COST_RANDOM
)

func GetCostMode(mode string) CostMode {
	switch mode {
	case "random":
		return COST_RANDOM
	default:
		return COST_ENVIRONMENTAL
	}
}
