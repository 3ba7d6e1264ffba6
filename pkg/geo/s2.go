package geo

import (
	"github.com/golang/geo/s2"
)

// CalculateS2Distance. angle-based distance on the unit sphere, scaled back to km.
// used where the query point may sit exactly on a lattice node and the haversine
// formulation loses precision near zero.
func CalculateS2Distance(latOne, longOne, latTwo, longTwo float64) float64 {
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(latOne, longOne))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(latTwo, longTwo))
	return p1.Distance(p2).Radians() * earthRadiusKM
}
