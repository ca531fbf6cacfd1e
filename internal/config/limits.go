// Package config bundles the process-wide defaults used across the
// engine: ingestion caps, coordinate/width bounds, and broadphase
// selection. There is no global state — callers hold a Defaults value
// and pass it explicitly, matching spec.md §9's "no package-level state"
// rule. UseRTreeBroadphase is not read by pkg/planarize, which takes its
// broadphase choice from planarize.Options.UseRTree.
package config

// Defaults carries the ingestion caps and coordinate bounds enforced by
// pkg/vnapi and pkg/svgio. Values are grounded on
// original_source/contour/src/geometry/limits.rs.
type Defaults struct {
	MaxNodes                int
	MaxEdges                int
	MaxPolylinePointsPerEdge int
	MaxPolylinePointsTotal   int

	MaxSVGTokens   int
	MaxSVGCommands int
	MaxSVGSubpaths int
	MaxSVGSegments int

	CoordMin float64
	CoordMax float64
	WidthMax float64

	UseRTreeBroadphase bool
}

// Standard returns the engine's shipped defaults.
func Standard() Defaults {
	return Defaults{
		MaxNodes:                 200_000,
		MaxEdges:                 300_000,
		MaxPolylinePointsPerEdge: 8_000,
		MaxPolylinePointsTotal:   2_000_000,

		MaxSVGTokens:   8 * 1024 * 1024,
		MaxSVGCommands: 200_000,
		MaxSVGSubpaths: 10_000,
		MaxSVGSegments: 500_000,

		CoordMin: -10_000_000.0,
		CoordMax: 10_000_000.0,
		WidthMax: 10_000.0,

		UseRTreeBroadphase: false,
	}
}

func (d Defaults) InCoordBounds(v float64) bool {
	return v >= d.CoordMin && v <= d.CoordMax
}

func (d Defaults) InWidthBounds(v float64) bool {
	return v > 0 && v <= d.WidthMax
}
