package routing

import (
	"github.com/lintang-b-s/Airwayx/pkg"
	da "github.com/lintang-b-s/Airwayx/pkg/datastructure"
	"github.com/lintang-b-s/Airwayx/pkg/util"
)

// nodeInfo search-scoped label of one lattice node. dist is monotonically
// non-increasing during a single query (standard relaxation invariant).
type nodeInfo struct {
	dist     float64
	parent   da.Index
	heapNode *da.PriorityQueueNode[da.Index]
}

// Dijkstra single-source shortest path over an airspace grid. all search state
// lives here, preallocated fresh per query, never on the grid nodes, so the
// same grid supports repeated and concurrent queries without resets.
type Dijkstra struct {
	grid *da.Grid

	info []nodeInfo
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(grid *da.Grid) *Dijkstra {
	return &Dijkstra{
		grid: grid,
		pq:   da.NewFourAryHeap[da.Index](),
	}
}

// ShortestPath from s to t, both grid node ids. returns (path, true) with the
// node sequence from s to t inclusive, or (nil, false) when t is unreachable.
// s == t yields a single-node path with cost 0.
func (us *Dijkstra) ShortestPath(s, t da.Index) (*da.Path, bool) {
	n := us.grid.NumberOfNodes()
	if int(s) >= n || int(t) >= n {
		return nil, false
	}

	us.preallocate()

	sNode := da.NewPriorityQueueNode(0, s)
	us.info[s] = nodeInfo{dist: 0, parent: da.INVALID_NODE_ID, heapNode: sNode}
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		queryKey, _ := us.pq.ExtractMin()
		uId := queryKey.GetItem()

		if uId == t {
			// all weights non-negative, t is settled, stop relaxing
			break
		}
		us.numSettledNodes++

		us.relax(uId)
	}

	if da.Ge(us.info[t].dist, pkg.INF_WEIGHT) {
		return nil, false
	}

	return us.reconstruct(s, t), true
}

func (us *Dijkstra) relax(uId da.Index) {
	uDist := us.info[uId].dist

	for _, outEdge := range us.grid.GetNode(uId).GetEdges() {
		vId := outEdge.GetHead()

		newDist := uDist + outEdge.GetWeight()
		if da.Ge(newDist, pkg.INF_WEIGHT) {
			continue
		}

		vAlreadyLabelled := da.Lt(us.info[vId].dist, pkg.INF_WEIGHT)
		if vAlreadyLabelled && da.Ge(newDist, us.info[vId].dist) {
			// newDist is not better, do nothing
			continue
		}

		if vAlreadyLabelled {
			us.info[vId].dist = newDist
			us.info[vId].parent = uId
			// key already in the priority queue, decrease its key
			us.pq.DecreaseKey(us.info[vId].heapNode, newDist)
		} else {
			vhNode := da.NewPriorityQueueNode(newDist, vId)
			us.info[vId] = nodeInfo{dist: newDist, parent: uId, heapNode: vhNode}
			us.pq.Insert(vhNode)
		}
	}
}

// reconstruct walk parent labels from t back to s, then reverse.
func (us *Dijkstra) reconstruct(s, t da.Index) *da.Path {
	nodes := make([]*da.Node, 0)
	for at := t; ; at = us.info[at].parent {
		nodes = append(nodes, us.grid.GetNode(at))
		if at == s {
			break
		}
	}
	return da.NewPath(util.ReverseG(nodes), us.info[t].dist)
}

func (us *Dijkstra) preallocate() {
	n := us.grid.NumberOfNodes()
	us.info = make([]nodeInfo, n)
	for i := range us.info {
		us.info[i] = nodeInfo{dist: pkg.INF_WEIGHT, parent: da.INVALID_NODE_ID}
	}
	us.pq.Clear()
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}
