package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/dispatch"
	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/sea/port"
)

var (
	outputDir          = flag.String("output-dir", "sealaneDB", "directory the built sea graph and sidecar files are written to")
	landMaskPath       = flag.String("land-mask-path", "land_mask.geojson", "GeoJSON FeatureCollection of land polygons")
	gridStepDegrees    = flag.Float64("grid-step-degrees", 5.0, "primary waypoint grid step in degrees")
	strictConnectivity = flag.Bool("strict-connectivity", true, "fail the build if the graph is not a single connected component")

	maxSnapDistanceKm     = flag.Float64("max-snap-distance-km", port.DefaultMaxSnapDistanceKm, "maximum distance a query coordinate may be from the nearest seaport before snapping fails, recorded into build_summary.json for cmd/auto to read back")
	maxGraphSnapDistanceM = flag.Float64("max-graph-snap-distance-m", dispatch.DefaultMaxSnapDistanceMeters, "maximum distance a snapped seaport may be from the nearest sea-graph node before snapping fails, recorded into build_summary.json for cmd/auto to read back")
)

func stageBar(total int, label string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("creating output dir %s: %v", *outputDir, err)
	}

	fmt.Println("building sea-lane graph...")
	bar := stageBar(1, "[cyan][1/3][reset] loading land mask, grid, k-NN, connectivity...")

	cfg := graph.Config{
		OutputDir:          *outputDir,
		LandMaskPath:       *landMaskPath,
		GridStepDegrees:    *gridStepDegrees,
		StrictConnectivity: *strictConnectivity,
		Catalog:            chokepoint.MandatoryCatalog,
	}

	start := time.Now()
	result, err := graph.Build(cfg)
	if err != nil {
		log.Fatalf("sea-lane graph build failed: %v", err)
	}
	bar.Add(1)
	fmt.Println("")

	bar = stageBar(1, "[cyan][2/3][reset] persisting graph to pebble...")
	if err := graph.Store(*outputDir+"/graph.db", result.Graph); err != nil {
		log.Fatalf("sea-lane graph persistence failed: %v", err)
	}
	bar.Add(1)
	fmt.Println("")

	bar = stageBar(1, "[cyan][3/3][reset] writing chokepoint metadata and build summary...")
	if err := result.Chokepoints.SaveTo(*outputDir + "/chokepoint_metadata.json"); err != nil {
		log.Fatalf("chokepoint metadata save failed: %v", err)
	}
	result.Summary.MaxSnapDistanceKm = *maxSnapDistanceKm
	result.Summary.MaxGraphSnapDistanceM = *maxGraphSnapDistanceM
	if err := graph.SaveSummary(*outputDir, result.Summary); err != nil {
		log.Fatalf("build summary save failed: %v", err)
	}
	bar.Add(1)
	fmt.Println("")

	log.Printf("sea-lane graph built in %s: nodes=%d edges=%d components=%d largest_component=%d version=%s",
		time.Since(start), result.Graph.NodeCount(), result.Graph.EdgeCount(),
		result.Summary.ConnectedComponentCount, result.Summary.LargestComponentSize, result.Summary.SeaGraphVersion)
}
