package usecases

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/engine/routing"
	"github.com/lintang-b-s/Airwayx/pkg/geo"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"go.uber.org/zap"
)

var ERRPATHNOTFOUND = errors.New("path not found")

type RoutingService struct {
	log          *zap.Logger
	grid         *datastructure.Grid
	spatialIndex SpatialIndex
	searchRadius float64
}

func NewRoutingService(log *zap.Logger, grid *datastructure.Grid, spatialindex SpatialIndex,
	searchRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		grid:         grid,
		spatialIndex: spatialindex,
		searchRadius: searchRadius,
	}
}

// ShortestPath snap both endpoints to lattice nodes and run dijkstra between
// them. altitudes in grid unit (km). returns the path and its encoded polyline.
func (rs *RoutingService) ShortestPath(origLat, origLon, origAlt, dstLat, dstLon, dstAlt float64) (*datastructure.Path, string, error) {
	s, err := rs.spatialIndex.SnapToNearestNode(origLat, origLon, origAlt, rs.searchRadius)
	if err != nil {
		return nil, "", err
	}
	t, err := rs.spatialIndex.SnapToNearestNode(dstLat, dstLon, dstAlt, rs.searchRadius)
	if err != nil {
		return nil, "", err
	}

	// search state is query-scoped, a fresh instance per request keeps
	// concurrent requests over one grid safe
	query := routing.NewDijkstra(rs.grid)
	path, found := query.ShortestPath(s, t)
	if !found {
		return nil, "", util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound,
			fmt.Sprintf("no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon))
	}

	rs.log.Debug("shortest path query settled",
		zap.Int("settled_nodes", query.GetNumSettledNodes()),
		zap.Float64("cost", path.GetCost()))

	coords := make([]geo.Coordinate, 0, path.Len())
	for _, node := range path.GetNodes() {
		coords = append(coords, geo.NewCoordinate(node.GetLat(), node.GetLon()))
	}
	pathPolyline := geo.PolylineFromCoords(coords)

	return path, pathPolyline, nil
}
