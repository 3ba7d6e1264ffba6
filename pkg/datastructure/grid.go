package datastructure

import (
	"math"
)

type Index uint32

const (
	INVALID_NODE_ID = Index(math.MaxUint32)
)

// Node one lattice point of the airspace grid. lat/lon in degree, alt in grid
// unit (1 unit = 1 km). weather & traffic are populated at most once during the
// build fetch phase and stay nil when the fetch failed; the node still
// participates in the graph either way. search state (distance, parent) does
// NOT live here, it is owned by the query, so one grid instance supports
// repeated and concurrent searches.
type Node struct {
	lat     float64
	lon     float64
	alt     float64
	weather *EnvironmentalState
	traffic *TrafficSnapshot
	edges   []Edge
	id      Index
}

func NewNode(lat, lon, alt float64, id Index) *Node {
	return &Node{
		lat: lat,
		lon: lon,
		alt: alt,
		id:  id,
	}
}

func (n *Node) GetID() Index {
	return n.id
}

func (n *Node) GetLat() float64 {
	return n.lat
}

func (n *Node) GetLon() float64 {
	return n.lon
}

func (n *Node) GetAlt() float64 {
	return n.alt
}

func (n *Node) GetWeather() *EnvironmentalState {
	return n.weather
}

func (n *Node) GetTraffic() *TrafficSnapshot {
	return n.traffic
}

func (n *Node) SetWeather(weather *EnvironmentalState) {
	n.weather = weather
}

func (n *Node) SetTraffic(traffic *TrafficSnapshot) {
	n.traffic = traffic
}

func (n *Node) GetEdges() []Edge {
	return n.edges
}

func (n *Node) AddEdge(e Edge) {
	n.edges = append(n.edges, e)
}

// Edge directed connection to an axis-adjacent node. head is an index into the
// owning grid, not a pointer, the grid exclusively owns all nodes.
type Edge struct {
	head   Index
	weight float64
}

func NewEdge(head Index, weight float64) Edge {
	return Edge{head: head, weight: weight}
}

func (e Edge) GetHead() Index {
	return e.head
}

func (e Edge) GetWeight() float64 {
	return e.weight
}

// Grid owning container of the 3D lattice, indexed by (latStep, lonStep, altStep).
// flat node id = (latStep*nLon + lonStep)*nAlt + altStep.
type Grid struct {
	nodes []*Node

	nLat, nLon, nAlt int

	latMin, lonMin, altMin float64
	cellSize               float64
}

// NewGrid allocate the node lattice over inclusive [min,max] ranges stepped by
// cellSize per axis. edges are wired separately, after the fetch phase barrier.
func NewGrid(latMin, latMax, lonMin, lonMax, altMin, altMax, cellSize float64) *Grid {
	nLat := axisSteps(latMin, latMax, cellSize)
	nLon := axisSteps(lonMin, lonMax, cellSize)
	nAlt := axisSteps(altMin, altMax, cellSize)

	g := &Grid{
		nodes:    make([]*Node, 0, nLat*nLon*nAlt),
		nLat:     nLat,
		nLon:     nLon,
		nAlt:     nAlt,
		latMin:   latMin,
		lonMin:   lonMin,
		altMin:   altMin,
		cellSize: cellSize,
	}

	for i := 0; i < nLat; i++ {
		for j := 0; j < nLon; j++ {
			for k := 0; k < nAlt; k++ {
				id := Index(len(g.nodes))
				g.nodes = append(g.nodes, NewNode(
					latMin+float64(i)*cellSize,
					lonMin+float64(j)*cellSize,
					altMin+float64(k)*cellSize,
					id,
				))
			}
		}
	}
	return g
}

// axisSteps number of lattice points from min to max inclusive.
func axisSteps(min, max, cellSize float64) int {
	if Lt(max, min) {
		return 0
	}
	return int(math.Floor((max-min)/cellSize+EPS)) + 1
}

func (g *Grid) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Grid) GetNode(id Index) *Node {
	return g.nodes[id]
}

func (g *Grid) GetDims() (int, int, int) {
	return g.nLat, g.nLon, g.nAlt
}

// AtSteps node id at integer lattice coordinates, false when out of bounds.
func (g *Grid) AtSteps(i, j, k int) (Index, bool) {
	if i < 0 || i >= g.nLat || j < 0 || j >= g.nLon || k < 0 || k >= g.nAlt {
		return INVALID_NODE_ID, false
	}
	return Index((i*g.nLon+j)*g.nAlt + k), true
}

// StepsOf inverse of AtSteps.
func (g *Grid) StepsOf(id Index) (int, int, int) {
	k := int(id) % g.nAlt
	j := (int(id) / g.nAlt) % g.nLon
	i := int(id) / (g.nAlt * g.nLon)
	return i, j, k
}

func (g *Grid) ForNodes(fn func(n *Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// ForNeighborSteps visit the integer coordinates of the 6 axis-aligned
// neighbors of (i,j,k) that lie within grid bounds.
func (g *Grid) ForNeighborSteps(i, j, k int, fn func(id Index)) {
	dirs := [6][3]int{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, d := range dirs {
		if id, ok := g.AtSteps(i+d[0], j+d[1], k+d[2]); ok {
			fn(id)
		}
	}
}

// Path ordered node sequence from source to destination inclusive, with the
// total edge cost of the walk.
type Path struct {
	nodes []*Node
	cost  float64
}

func NewPath(nodes []*Node, cost float64) *Path {
	return &Path{nodes: nodes, cost: cost}
}

func (p *Path) GetNodes() []*Node {
	return p.nodes
}

func (p *Path) GetCost() float64 {
	return p.cost
}

func (p *Path) Len() int {
	return len(p.nodes)
}
