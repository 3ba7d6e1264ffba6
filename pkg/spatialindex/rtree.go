package spatialindex

import (
	"math"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/geo"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr   *rtree.RTreeG[datastructure.Index]
	grid *datastructure.Grid
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every lattice node, with each leaf having bounding box with
// radius boundingBoxRadius (in km) so nearby queries hit without expansion.
func (rt *Rtree) Build(grid *datastructure.Grid, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	rt.grid = grid

	grid.ForNodes(func(n *datastructure.Node) {
		lowerLat, lowerLon := geo.GetDestinationPoint(n.GetLat(), n.GetLon(), 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(n.GetLat(), n.GetLon(), 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat}, n.GetID())
	})

	log.Info("R-tree spatial index built.", zap.Int("nodes", grid.NumberOfNodes()))
}

// SearchWithinRadius search for all node ids within radius (in km) from the query point (qLat, qLon)
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []datastructure.Index {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]datastructure.Index, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data datastructure.Index) bool {
			results = append(results, data)
			return true
		})
	return results
}

// SnapToNearestNode nearest lattice node to (qLat, qLon, qAlt), qAlt in grid
// unit (km). candidates come from the index, the winner minimizes great-circle
// distance plus the vertical leg. s2 chord angle distance instead of haversine
// because the query point may sit exactly on a node.
func (rt *Rtree) SnapToNearestNode(qLat, qLon, qAlt, radius float64) (datastructure.Index, error) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(candidates) == 0 {
		return datastructure.INVALID_NODE_ID, util.WrapErrorf(nil, util.ErrNotFound,
			"no grid node within %.1f km of (%f, %f)", radius, qLat, qLon)
	}

	best := datastructure.INVALID_NODE_ID
	bestDist := math.Inf(1)
	for _, id := range candidates {
		n := rt.grid.GetNode(id)
		horizontal := geo.CalculateS2Distance(qLat, qLon, n.GetLat(), n.GetLon())
		vertical := qAlt - n.GetAlt()
		dist := math.Sqrt(horizontal*horizontal + vertical*vertical)
		if dist < bestDist {
			bestDist = dist
			best = id
		}
	}
	return best, nil
}
