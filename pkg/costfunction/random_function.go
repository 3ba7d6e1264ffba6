package costfunction

import (
	"math/rand"

	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

// RandomFunction. reference-fidelity mode: every directed edge gets an
// independent uniform [0,1) weight, unrelated to the node conditions.
// only safe to call from the single-threaded wiring pass.
type RandomFunction struct {
	rng *rand.Rand
}

func NewRandomCostFunction(seed int64) *RandomFunction {
	return &RandomFunction{rng: rand.New(rand.NewSource(seed))}
}

func (rf *RandomFunction) GetWeight(from, to *datastructure.Node) float64 {
	return rf.rng.Float64()
}
