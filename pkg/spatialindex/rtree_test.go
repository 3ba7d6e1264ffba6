package spatialindex

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func buildTestIndex(t *testing.T) (*Rtree, *datastructure.Grid) {
	t.Helper()
	grid := datastructure.NewGrid(0, 2, 0, 2, 0, 1, 1)

	rt := NewRtree()
	rt.Build(grid, 60, zap.NewNop())
	return rt, grid
}

func TestSnapToNearestNode(t *testing.T) {
	rt, grid := buildTestIndex(t)

	id, err := rt.SnapToNearestNode(1.1, 0.9, 0.2, 120)
	assert.NoError(t, err)

	node := grid.GetNode(id)
	assert.Equal(t, 1.0, node.GetLat())
	assert.Equal(t, 1.0, node.GetLon())
	assert.Equal(t, 0.0, node.GetAlt())
}

func TestSnapPrefersCloserAltitude(t *testing.T) {
	rt, grid := buildTestIndex(t)

	// horizontally on a lattice column, the vertical leg decides
	id, err := rt.SnapToNearestNode(1.0, 1.0, 0.9, 120)
	assert.NoError(t, err)

	node := grid.GetNode(id)
	assert.Equal(t, 1.0, node.GetLat())
	assert.Equal(t, 1.0, node.GetLon())
	assert.Equal(t, 1.0, node.GetAlt())
}

func TestSnapOutsideRadius(t *testing.T) {
	rt, _ := buildTestIndex(t)

	_, err := rt.SnapToNearestNode(45, 90, 0, 50)
	assert.Error(t, err)

	var ierr *util.Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, util.ErrNotFound, ierr.Code())
}

func TestSearchWithinRadius(t *testing.T) {
	rt, _ := buildTestIndex(t)

	results := rt.SearchWithinRadius(1, 1, 120)
	assert.NotEmpty(t, results)
}
