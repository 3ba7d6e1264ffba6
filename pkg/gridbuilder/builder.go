package gridbuilder

import (
	"context"

	"github.com/lintang-b-s/Airwayx/pkg"
	"github.com/lintang-b-s/Airwayx/pkg/atmosphere"
	"github.com/lintang-b-s/Airwayx/pkg/concurrent"
	"github.com/lintang-b-s/Airwayx/pkg/costfunction"
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WeatherFetcher external surface-weather collaborator. absent observation is
// signalled as (nil, err); the builder never distinguishes failure causes.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*datastructure.SurfaceWeather, error)
}

// TrafficFetcher external air-traffic collaborator, radius in km.
type TrafficFetcher interface {
	Fetch(ctx context.Context, lat, lon, radiusKm float64) (*datastructure.TrafficSnapshot, error)
}

type Builder struct {
	log             *zap.Logger
	weather         WeatherFetcher
	traffic         TrafficFetcher
	costFunction    costfunction.CostFunction
	fetchWorkers    int
	trafficRadiusKm float64
}

func NewBuilder(log *zap.Logger, weather WeatherFetcher, traffic TrafficFetcher,
	costFunction costfunction.CostFunction, fetchWorkers int, trafficRadiusKm float64) *Builder {
	if fetchWorkers <= 0 {
		fetchWorkers = pkg.DEFAULT_FETCH_WORKERS
	}
	if trafficRadiusKm <= 0 {
		trafficRadiusKm = pkg.DEFAULT_TRAFFIC_RADIUS_KM
	}
	return &Builder{
		log:             log,
		weather:         weather,
		traffic:         traffic,
		costFunction:    costFunction,
		fetchWorkers:    fetchWorkers,
		trafficRadiusKm: trafficRadiusKm,
	}
}

type fetchResult struct {
	weatherOk bool
	trafficOk bool
}

// Build construct the lattice over inclusive [min,max] per-axis ranges stepped
// by cellSize, run the bounded-concurrency fetch phase, then wire the
// 6-neighbor edges. a failed fetch leaves the node's weather/traffic unset and
// never aborts the rest of the build.
func (b *Builder) Build(ctx context.Context, latMin, latMax, lonMin, lonMax,
	altMin, altMax, cellSize float64) (*datastructure.Grid, error) {

	if cellSize <= 0 || latMax < latMin || lonMax < lonMin || altMax < altMin {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"invalid grid bounds lat=[%f,%f] lon=[%f,%f] alt=[%f,%f] cellSize=%f",
			latMin, latMax, lonMin, lonMax, altMin, altMax, cellSize)
	}

	grid := datastructure.NewGrid(latMin, latMax, lonMin, lonMax, altMin, altMax, cellSize)
	b.log.Info("building airspace grid",
		zap.Int("nodes", grid.NumberOfNodes()),
		zap.Float64("cell_size", cellSize),
		zap.Int("fetch_workers", b.fetchWorkers))

	if err := b.fetchPhase(ctx, grid); err != nil {
		return nil, err
	}

	// fetch phase fully drained above, safe to wire edges now
	b.wireEdges(grid)

	b.log.Info("airspace grid built", zap.Int("nodes", grid.NumberOfNodes()))
	return grid, nil
}

// fetchPhase fan out one job per node through the worker pool. each job owns
// its node's weather/traffic fields exclusively, so no locking beyond the
// pool barrier is needed.
func (b *Builder) fetchPhase(ctx context.Context, grid *datastructure.Grid) error {
	pool := concurrent.NewWorkerPool[*datastructure.Node, fetchResult](
		b.fetchWorkers, grid.NumberOfNodes())

	pool.Start(func(node *datastructure.Node) fetchResult {
		return b.fetchNode(ctx, node)
	})

	grid.ForNodes(func(node *datastructure.Node) {
		pool.AddJob(node)
	})
	pool.Close()
	pool.Wait()

	weatherFailed, trafficFailed := 0, 0
	for res := range pool.CollectResults() {
		if !res.weatherOk {
			weatherFailed++
		}
		if !res.trafficOk {
			trafficFailed++
		}
	}
	if weatherFailed > 0 || trafficFailed > 0 {
		b.log.Warn("some node fetches degraded to absent",
			zap.Int("weather_failed", weatherFailed),
			zap.Int("traffic_failed", trafficFailed))
	}

	if util.StopConcurrentOperation(ctx) {
		return ctx.Err()
	}
	return nil
}

// fetchNode weather & traffic for one node are independent, run them concurrently.
func (b *Builder) fetchNode(ctx context.Context, node *datastructure.Node) fetchResult {
	var res fetchResult

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		surface, err := b.weather.Fetch(gctx, node.GetLat(), node.GetLon())
		if err != nil || surface == nil {
			return nil // degrade to absent, never abort the batch
		}
		state := atmosphere.Extrapolate(*surface, node.GetAlt()*pkg.ALTITUDE_UNIT_METERS)
		node.SetWeather(&state)
		res.weatherOk = true
		return nil
	})

	g.Go(func() error {
		snapshot, err := b.traffic.Fetch(gctx, node.GetLat(), node.GetLon(), b.trafficRadiusKm)
		if err != nil || snapshot == nil {
			return nil
		}
		node.SetTraffic(snapshot)
		res.trafficOk = true
		return nil
	})

	_ = g.Wait()
	return res
}

// wireEdges connect every node to its in-bound axis neighbors in the 6
// directions. weights come from the configured cost function and the two
// directions of a pair are assigned independently.
func (b *Builder) wireEdges(grid *datastructure.Grid) {
	grid.ForNodes(func(node *datastructure.Node) {
		i, j, k := grid.StepsOf(node.GetID())
		grid.ForNeighborSteps(i, j, k, func(neighbor datastructure.Index) {
			weight := b.costFunction.GetWeight(node, grid.GetNode(neighbor))
			util.AssertPanic(weight >= 0, "edge weight must be non-negative")
			node.AddEdge(datastructure.NewEdge(neighbor, weight))
		})
	})
}
