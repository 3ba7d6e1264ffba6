package usecases

import (
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

type SpatialIndex interface {
	SnapToNearestNode(qLat, qLon, qAlt, radius float64) (datastructure.Index, error)
}
