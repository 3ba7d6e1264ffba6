package costfunction

import (
	"testing"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

func nodeWithWeather(lat, lon, alt, cloud, wind float64, id datastructure.Index) *datastructure.Node {
	n := datastructure.NewNode(lat, lon, alt, id)
	state := datastructure.NewEnvironmentalState(280, 900, 50, wind, 0, cloud, 10000)
	n.SetWeather(&state)
	return n
}

func TestEnvironmentalWeightNonNegative(t *testing.T) {
	cf := NewEnvironmentalCostFunction()

	from := nodeWithWeather(0, 0, 0, 0, 0, 0)
	to := nodeWithWeather(1, 0, 0, 100, 40, 1)
	to.SetTraffic(datastructure.NewTrafficSnapshot(make([]datastructure.AircraftState, 5)))

	if w := cf.GetWeight(from, to); w < 0 {
		t.Errorf("weight = %v, want >= 0", w)
	}
}

func TestEnvironmentalWeightPenalizesConditions(t *testing.T) {
	cf := NewEnvironmentalCostFunction()
	from := nodeWithWeather(0, 0, 0, 0, 0, 0)

	clear := nodeWithWeather(1, 0, 0, 0, 0, 1)
	cloudy := nodeWithWeather(1, 0, 0, 100, 0, 2)
	windy := nodeWithWeather(1, 0, 0, 0, 30, 3)

	clearW := cf.GetWeight(from, clear)
	if cloudyW := cf.GetWeight(from, cloudy); cloudyW <= clearW {
		t.Errorf("cloudy weight %v should exceed clear weight %v", cloudyW, clearW)
	}
	if windyW := cf.GetWeight(from, windy); windyW <= clearW {
		t.Errorf("windy weight %v should exceed clear weight %v", windyW, clearW)
	}

	busy := nodeWithWeather(1, 0, 0, 0, 0, 4)
	busy.SetTraffic(datastructure.NewTrafficSnapshot(make([]datastructure.AircraftState, 10)))
	if busyW := cf.GetWeight(from, busy); busyW <= clearW {
		t.Errorf("busy weight %v should exceed clear weight %v", busyW, clearW)
	}
}

func TestEnvironmentalWeightAbsentDataNoPenalty(t *testing.T) {
	cf := NewEnvironmentalCostFunction()

	from := datastructure.NewNode(0, 0, 0, 0)
	bare := datastructure.NewNode(1, 0, 0, 1)
	clear := nodeWithWeather(1, 0, 0, 0, 0, 2)

	// absent weather/traffic pays exactly the distance, same as all-clear
	if bareW, clearW := cf.GetWeight(from, bare), cf.GetWeight(from, clear); bareW != clearW {
		t.Errorf("bare weight %v != clear weight %v", bareW, clearW)
	}
}

func TestRandomWeightRange(t *testing.T) {
	cf := NewRandomCostFunction(7)
	from := datastructure.NewNode(0, 0, 0, 0)
	to := datastructure.NewNode(1, 0, 0, 1)

	for i := 0; i < 1000; i++ {
		w := cf.GetWeight(from, to)
		if w < 0 || w >= 1 {
			t.Fatalf("weight %v out of [0,1)", w)
		}
	}
}

func TestRandomWeightDeterministicSeed(t *testing.T) {
	from := datastructure.NewNode(0, 0, 0, 0)
	to := datastructure.NewNode(1, 0, 0, 1)

	a := NewRandomCostFunction(99)
	b := NewRandomCostFunction(99)
	for i := 0; i < 10; i++ {
		if a.GetWeight(from, to) != b.GetWeight(from, to) {
			t.Fatal("same seed should yield same weight sequence")
		}
	}
}
