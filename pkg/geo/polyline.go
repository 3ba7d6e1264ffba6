package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encode path coordinates into a google polyline string.
func PolylineFromCoords(coords []Coordinate) string {
	flat := make([][]float64, len(coords))
	for i, c := range coords {
		flat[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(flat))
}
