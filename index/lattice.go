package index

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"rectq/common"
)

// Entry is a stained point stored in a unit leaf of the lattice index.
type Entry struct {
	Point common.Point
	Tag   Tag
}

// bound is the (possibly fractional) area a node is responsible for. Fractions only appear as midpoints of integer
// coordinates, i.e. they are dyadic and therefore exact in float64 for the coordinate ranges we handle.
type bound struct {
	minX, minY float64
	maxX, maxY float64
}

func (b bound) contains(p common.Point) bool {
	x := float64(p.X())
	y := float64(p.Y())
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

func (b bound) isUnit() bool {
	return b.maxX-b.minX <= 1 && b.maxY-b.minY <= 1
}

func (b bound) mid() (float64, float64) {
	return (b.minX + b.maxX) / 2, (b.minY + b.maxY) / 2
}

type quadrant int

const (
	topLeft quadrant = iota
	topRight
	bottomLeft
	bottomRight
)

// node is either an inner node with up to four lazily created children or a unit leaf holding at most one entry.
type node struct {
	bound    bound
	entry    *Entry
	children [4]*node
}

// quadrant returns the child slot responsible for the given point. The midpoint belongs to the top/left quadrants.
// Insert and search both route through this function so that a point always ends up in the same leaf.
func (n *node) quadrant(p common.Point) quadrant {
	midX, midY := n.bound.mid()
	q := topLeft
	if float64(p.X()) > midX {
		q = topRight
	}
	if float64(p.Y()) > midY {
		q += bottomLeft
	}
	return q
}

func (n *node) childBound(q quadrant) bound {
	midX, midY := n.bound.mid()
	b := n.bound
	switch q {
	case topLeft:
		return bound{b.minX, b.minY, midX, midY}
	case topRight:
		return bound{midX, b.minY, b.maxX, midY}
	case bottomLeft:
		return bound{b.minX, midY, midX, b.maxY}
	default:
		return bound{midX, midY, b.maxX, b.maxY}
	}
}

// LatticeIndex is a region quadtree over integer coordinates storing at most one tagged point per unit leaf. Its
// depth only depends on the size of the bound, not on the number of stored points.
//
// A unit leaf keeps the first point ever inserted into it. A later, different point falling into the same leaf is
// dropped and a search for it returns the first point. For coordinates below 2^52 in magnitude this only happens when
// a leaf bound is exactly one unit wide with integer borders (e.g. bounds whose span is a power of two). Node bounds
// are float64, so from 2^53 on distinct integers collapse onto the same value and alias regardless of the bound.
type LatticeIndex struct {
	Bound common.Bound
	root  *node
	count int
}

func NewLatticeIndex(b common.Bound) *LatticeIndex {
	return &LatticeIndex{
		Bound: b,
		root: &node{
			bound: bound{
				minX: float64(b.TopLeft().X()),
				minY: float64(b.TopLeft().Y()),
				maxX: float64(b.BottomRight().X()),
				maxY: float64(b.BottomRight().Y()),
			},
		},
	}
}

// Insert stores the point with the given tag. Points outside the index bound are ignored. Inserting a point that is
// already stored overwrites its tag.
func (i *LatticeIndex) Insert(p common.Point, tag Tag) {
	n := i.root
	if !n.bound.contains(p) {
		sigolo.Tracef("Point %s is outside of index bound %s, ignore it", p, i.Bound)
		return
	}

	for !n.bound.isUnit() {
		q := n.quadrant(p)
		if n.children[q] == nil {
			n.children[q] = &node{bound: n.childBound(q)}
		}
		n = n.children[q]
	}

	if n.entry == nil {
		n.entry = &Entry{Point: p, Tag: tag}
		i.count++
	} else if n.entry.Point == p {
		n.entry.Tag = tag
	} else {
		sigolo.Tracef("Unit leaf of %s already holds %s, drop %s", p, n.entry.Point, p)
	}
}

// Search returns the entry of the unit leaf the point maps to. The entry's position is not compared with the given
// point, see LatticeIndex for the aliasing this implies.
func (i *LatticeIndex) Search(p common.Point) (Entry, bool) {
	n := i.root
	if !n.bound.contains(p) {
		return Entry{}, false
	}

	for n.entry == nil {
		if n.bound.isUnit() {
			return Entry{}, false
		}
		n = n.children[n.quadrant(p)]
		if n == nil {
			return Entry{}, false
		}
	}

	return *n.entry, true
}

// Has returns true when the point is part of the index, regardless of its tag.
func (i *LatticeIndex) Has(p common.Point) bool {
	_, found := i.Search(p)
	return found
}

// Count returns the number of stored entries.
func (i *LatticeIndex) Count() int {
	return i.count
}

// Each calls fn for every stored entry in depth-first order (top-left, top-right, bottom-left, bottom-right).
func (i *LatticeIndex) Each(fn func(entry Entry)) {
	var visit func(n *node)
	visit = func(n *node) {
		if n.entry != nil {
			fn(*n.entry)
		}
		for _, child := range n.children {
			if child != nil {
				visit(child)
			}
		}
	}
	visit(i.root)
}

// Depth returns the number of levels below the root on the deepest path.
func (i *LatticeIndex) Depth() int {
	var depth func(n *node) int
	depth = func(n *node) int {
		d := 0
		for _, child := range n.children {
			if child != nil {
				d = max(d, depth(child)+1)
			}
		}
		return d
	}
	return depth(i.root)
}

func (i *LatticeIndex) String() string {
	return fmt.Sprintf("LatticeIndex(bound=%s, count=%d)", i.Bound, i.count)
}
