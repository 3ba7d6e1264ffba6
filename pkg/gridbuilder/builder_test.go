package gridbuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWeatherFetcher struct {
	failAt func(lat, lon float64) bool
}

func (s *stubWeatherFetcher) Fetch(ctx context.Context, lat, lon float64) (*datastructure.SurfaceWeather, error) {
	if s.failAt != nil && s.failAt(lat, lon) {
		return nil, errors.New("simulated transport failure")
	}
	sw := datastructure.NewSurfaceWeather(288.15, 101325, 60, 5, 180, 40, 10000)
	return &sw, nil
}

type stubTrafficFetcher struct {
	failAt func(lat, lon float64) bool
	states int
}

func (s *stubTrafficFetcher) Fetch(ctx context.Context, lat, lon, radiusKm float64) (*datastructure.TrafficSnapshot, error) {
	if s.failAt != nil && s.failAt(lat, lon) {
		return nil, errors.New("simulated timeout")
	}
	return datastructure.NewTrafficSnapshot(make([]datastructure.AircraftState, s.states)), nil
}

type constCostFunction struct {
	weight float64
}

func (c *constCostFunction) GetWeight(from, to *datastructure.Node) float64 {
	return c.weight
}

func newTestBuilder(t *testing.T, weather WeatherFetcher, traffic TrafficFetcher) *Builder {
	t.Helper()
	log, err := logger.New()
	require.NoError(t, err)
	return NewBuilder(log, weather, traffic, &constCostFunction{weight: 1.0}, 4, 50)
}

func TestBuildGridTopology(t *testing.T) {
	b := newTestBuilder(t, &stubWeatherFetcher{}, &stubTrafficFetcher{states: 2})

	grid, err := b.Build(context.Background(), 0, 2, 0, 2, 0, 1, 1)
	require.NoError(t, err)

	// [0,2]x[0,2]x[0,1] with cell size 1 -> 3*3*2 nodes
	require.Equal(t, 18, grid.NumberOfNodes())

	nLat, nLon, nAlt := grid.GetDims()
	require.Equal(t, 3, nLat)
	require.Equal(t, 3, nLon)
	require.Equal(t, 2, nAlt)

	grid.ForNodes(func(n *datastructure.Node) {
		i, j, k := grid.StepsOf(n.GetID())

		wantEdges := 0
		if i > 0 {
			wantEdges++
		}
		if i < nLat-1 {
			wantEdges++
		}
		if j > 0 {
			wantEdges++
		}
		if j < nLon-1 {
			wantEdges++
		}
		if k > 0 {
			wantEdges++
		}
		if k < nAlt-1 {
			wantEdges++
		}
		assert.Len(t, n.GetEdges(), wantEdges, "node (%d,%d,%d)", i, j, k)

		for _, e := range n.GetEdges() {
			assert.GreaterOrEqual(t, e.GetWeight(), 0.0)
		}
	})
}

func TestBuildGridAppliesAltitudeWeather(t *testing.T) {
	b := newTestBuilder(t, &stubWeatherFetcher{}, &stubTrafficFetcher{states: 1})

	grid, err := b.Build(context.Background(), 0, 1, 0, 1, 0, 2, 1)
	require.NoError(t, err)

	grid.ForNodes(func(n *datastructure.Node) {
		require.NotNil(t, n.GetWeather())
		require.NotNil(t, n.GetTraffic())

		// lapse rate: grid alt unit = 1000m, 6.5C colder per unit
		wantTemp := 288.15 - 6.5*n.GetAlt()
		assert.InDelta(t, wantTemp, n.GetWeather().GetTemperature(), 1e-9)
	})
}

func TestBuildGridDegradesOnFetchFailure(t *testing.T) {
	failOrigin := func(lat, lon float64) bool {
		return lat == 0 && lon == 0
	}
	b := newTestBuilder(t,
		&stubWeatherFetcher{failAt: failOrigin},
		&stubTrafficFetcher{failAt: failOrigin, states: 1})

	grid, err := b.Build(context.Background(), 0, 1, 0, 1, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 4, grid.NumberOfNodes())

	failedID, ok := grid.AtSteps(0, 0, 0)
	require.True(t, ok)
	failed := grid.GetNode(failedID)

	// node with failed fetches is still in the graph, weather/traffic absent
	assert.Nil(t, failed.GetWeather())
	assert.Nil(t, failed.GetTraffic())
	assert.Len(t, failed.GetEdges(), 2)

	// and edges into it are still wired
	inbound := 0
	grid.ForNodes(func(n *datastructure.Node) {
		for _, e := range n.GetEdges() {
			if e.GetHead() == failedID {
				inbound++
			}
		}
	})
	assert.Equal(t, 2, inbound)

	// untouched nodes keep their data
	okID, ok := grid.AtSteps(1, 1, 0)
	require.True(t, ok)
	assert.NotNil(t, grid.GetNode(okID).GetWeather())
	assert.NotNil(t, grid.GetNode(okID).GetTraffic())
}

func TestBuildGridInvalidBounds(t *testing.T) {
	b := newTestBuilder(t, &stubWeatherFetcher{}, &stubTrafficFetcher{})

	_, err := b.Build(context.Background(), 2, 0, 0, 2, 0, 1, 1)
	assert.Error(t, err)

	_, err = b.Build(context.Background(), 0, 2, 0, 2, 0, 1, 0)
	assert.Error(t, err)
}
