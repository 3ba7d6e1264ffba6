package main

import (
	"context"
	"flag"
	"time"

	"github.com/lintang-b-s/Airwayx/pkg"
	"github.com/lintang-b-s/Airwayx/pkg/client/traffic"
	"github.com/lintang-b-s/Airwayx/pkg/client/weather"
	"github.com/lintang-b-s/Airwayx/pkg/costfunction"
	"github.com/lintang-b-s/Airwayx/pkg/gridbuilder"
	"github.com/lintang-b-s/Airwayx/pkg/http"
	"github.com/lintang-b-s/Airwayx/pkg/http/usecases"
	"github.com/lintang-b-s/Airwayx/pkg/logger"
	"github.com/lintang-b-s/Airwayx/pkg/spatialindex"
	"github.com/lintang-b-s/Airwayx/pkg/util"
	"go.uber.org/zap"
)

var (
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 60.0, "leaf node (r-tree) bounding box radius in km")
	snapRadius            = flag.Float64("snap_radius", 120.0, "max distance (km) for snapping query coordinates to a lattice node")
	useRateLimit          = flag.Bool("rate_limit", false, "enable per-client api rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	// invalid configuration is fatal here, before any grid construction
	cfg, err := util.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	weatherClient := weather.NewClient(cfg.OWMApiKey)
	trafficClient := traffic.NewClient(cfg.OpenskyClientId, cfg.OpenskyClientSecret)

	var costFunction costfunction.CostFunction
	switch pkg.GetCostMode(cfg.CostFunction) {
	case pkg.COST_RANDOM:
		costFunction = costfunction.NewRandomCostFunction(time.Now().UnixNano())
	default:
		costFunction = costfunction.NewEnvironmentalCostFunction()
	}

	builder := gridbuilder.NewBuilder(logger, weatherClient, trafficClient, costFunction,
		cfg.FetchWorkers, cfg.TrafficRadiusKm)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	grid, err := builder.Build(ctx,
		cfg.LatRange.Min, cfg.LatRange.Max,
		cfg.LonRange.Min, cfg.LonRange.Max,
		cfg.AltRange.Min, cfg.AltRange.Max,
		cfg.CellSize)
	if err != nil {
		logger.Fatal("grid build failed", zap.Error(err))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(grid, *leafBoundingBoxRadius, logger)

	routingService := usecases.NewRoutingService(logger, grid, rtree, *snapRadius)

	api := http.NewServer(logger)
	api.Use(ctx, logger, *useRateLimit, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Airwayx Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
