// Command vnctl is a small fixture runner for the vector-network engine:
// it loads a persisted JSON document, recomputes its regions, and prints
// a one-line report per region. Intended for smoke-testing a fixture
// file during development, the way the teacher's example runner drove a
// board through validation without needing the GUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/vecnet/pkg/planarize"
	"github.com/chazu/vecnet/pkg/vnapi"
	"github.com/chazu/vecnet/pkg/vnlog"
	"github.com/chazu/vecnet/pkg/vnregion"
	"github.com/chazu/vecnet/pkg/vnstore"
)

func main() {
	fixture := flag.String("fixture", "", "path to a persisted JSON document")
	useRTree := flag.Bool("rtree", false, "use the R-tree broadphase instead of the uniform grid")
	flag.Parse()

	if *fixture == "" {
		fmt.Fprintln(os.Stderr, "usage: vnctl -fixture path/to/network.json")
		os.Exit(2)
	}

	data, err := os.ReadFile(*fixture)
	if err != nil {
		vnlog.Errorf("reading fixture: %v", err)
		os.Exit(1)
	}

	s := vnstore.New()
	s.SetWarningHook(vnlog.Hook())

	if !vnapi.FromJSON(s, data) {
		vnlog.Errorf("failed to load fixture %s", *fixture)
		os.Exit(1)
	}

	fmt.Printf("loaded %d nodes, %d edges\n", s.NodeCount(), s.EdgeCount())

	regions := vnregion.Recompute(s, planarize.Options{UseRTree: *useRTree}, nil)
	fmt.Printf("found %d region(s)\n", len(regions))
	for _, r := range regions {
		fmt.Printf("  key=%d area=%.2f filled=%v centroid=(%.1f,%.1f)\n",
			r.Key, r.Face.Area, r.Filled, r.Centroid.X, r.Centroid.Y)
	}
}
