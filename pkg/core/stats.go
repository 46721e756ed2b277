package core

import "maps"

// Stats counts engine work since the tree was created or ResetStats ran.
type Stats struct {
	// Builds counts Build calls.
	Builds int
	// BuildsByView counts Build calls per view debug name.
	BuildsByView map[string]int
	// Layouts counts nodes visited by layout passes.
	Layouts int
	// Paints counts pictures recorded.
	Paints int
	// Removed counts nodes removed by reconciliation.
	Removed int
	// SizeCacheHits and SizeCacheMisses count size queries.
	SizeCacheHits   int
	SizeCacheMisses int
}

func newStats() Stats {
	return Stats{BuildsByView: make(map[string]int)}
}

func (s *Stats) countBuild(name string) {
	s.Builds++
	s.BuildsByView[name]++
}

func (s Stats) clone() Stats {
	s.BuildsByView = maps.Clone(s.BuildsByView)
	return s
}
