package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// State is a node of the augmented search graph: where the vehicle is, which
// way it last moved and how many cells it has moved straight. It is a value
// key; the synthetic start state has Dir == gridgraph.None and Run == 0.
type State struct {
	Pos gridgraph.Point
	Dir gridgraph.Direction
	Run int
}

// String formats the state as "x,y/dir×run".
func (s State) String() string {
	return fmt.Sprintf("%v/%s×%d", s.Pos, s.Dir, s.Run)
}

// successor is a legal move out of a state and the cost of the cell it enters.
type successor struct {
	state State
	cost  int64
}

// expand appends to buf every legal successor of s and returns the extended slice.
// Candidates off the grid or forbidden by the policy are dropped.
func expand(s State, g *gridgraph.GridGraph, p movement.Policy, buf []successor) []successor {
	for _, d := range gridgraph.Directions {
		next := d.Step(s.Pos)
		c, ok := g.Cost(next)
		if !ok {
			continue
		}
		run, ok := p.NextRun(s.Dir, s.Run, d)
		if !ok {
			continue
		}
		buf = append(buf, successor{
			state: State{Pos: next, Dir: d, Run: run},
			cost:  int64(c),
		})
	}
	return buf
}
