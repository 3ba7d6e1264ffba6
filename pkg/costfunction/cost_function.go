package costfunction

import (
	"github.com/lintang-b-s/Airwayx/pkg/datastructure"
)

// CostFunction derives the non-negative weight of the directed edge (from, to).
// the two directions of an axis pair are independent weights.
type CostFunction interface {
	GetWeight(from, to *datastructure.Node) float64
}
