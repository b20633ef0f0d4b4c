// Package crucible computes the minimum heat loss of a crucible pushed across
// a grid of city blocks, where the vehicle's recent straight run decides which
// way it may move next.
//
// The work is organized in small packages, leaves first:
//
//	gridgraph/   immutable digit grid, bounds-checked cost lookup, parsing
//	movement/    Regular and Ultra movement policies behind one interface
//	dijkstra/    lazy-deletion Dijkstra over (cell, heading, run) states
//	metrics/     Prometheus collectors fed by search hooks
//	config/      TOML run configuration
//	solve/       concurrent per-vehicle queries against one shared grid
//	cmd/crucible command-line front end
//
// Quick ASCII example (Regular, corner to corner):
//
//	2>>34^>>>1323
//	32v>>>35v5623
//	32552456v>>54
//
// A Regular crucible turns at least every three blocks; an Ultra crucible
// moves four to ten blocks between turns.
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
