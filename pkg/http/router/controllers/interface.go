package controllers

import (
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, origAlt, dstLat, dstLon, dstAlt float64) (*datastructure.Path, string, error)
}
