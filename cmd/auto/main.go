package main

import (
	"flag"
	"fmt"
	_ "github.com/dynop/routing-service/docs"
	"github.com/dynop/routing-service/pkg/contractor"
	"github.com/dynop/routing-service/pkg/engine/heuristics"
	"github.com/dynop/routing-service/pkg/engine/matching"
	"github.com/dynop/routing-service/pkg/engine/riderdrivermatching"
	"github.com/dynop/routing-service/pkg/engine/routingalgorithm"
	"github.com/dynop/routing-service/pkg/kv"
	"github.com/dynop/routing-service/pkg/osmparser"
	"github.com/dynop/routing-service/pkg/sea/chokepoint"
	"github.com/dynop/routing-service/pkg/sea/dispatch"
	"github.com/dynop/routing-service/pkg/sea/graph"
	"github.com/dynop/routing-service/pkg/sea/landmask"
	"github.com/dynop/routing-service/pkg/sea/port"
	"github.com/dynop/routing-service/pkg/server/rest"
	"github.com/dynop/routing-service/pkg/server/rest/service"
	"log"
	"net/http"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "solo_jogja.osm.pbf", "openstreeetmap file buat road network graphnya")

	seaGraphDir        = flag.String("sea-graph-dir", "", "directory of a sea-lane graph built by cmd/sealane; empty disables sea routing")
	seaportCSVPaths    = flag.String("seaport-csv", "", "comma-separated UN/LOCODE CSV paths for the port registry")
	chokepointMetaPath = flag.String("chokepoint-metadata", "", "chokepoint_metadata.json path, defaults to <sea-graph-dir>/chokepoint_metadata.json")
	seaLandMaskPath    = flag.String("sea-land-mask", "", "GeoJSON land mask used only for validate_coordinates, defaults to none")
)

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// loadSeaEngine wires up the optional sea-routing stack: a sea graph
// loaded from seaGraphDir, its rebuilt-on-load rtree index, a port
// registry snapper, and a chokepoint registry. Returns nil when
// seaGraphDir is empty so road-only deployments keep working
// unmodified.
func loadSeaEngine() *dispatch.SeaEngine {
	if *seaGraphDir == "" {
		return nil
	}

	g, err := graph.Load(*seaGraphDir + "/graph.db")
	if err != nil {
		log.Fatalf("loading sea graph: %v", err)
	}
	index := graph.NewIndexFromNodes(g.Nodes)

	ports, err := port.LoadSeaports(splitNonEmpty(*seaportCSVPaths)...)
	if err != nil {
		log.Fatalf("loading seaport registry: %v", err)
	}

	maxSnapDistanceKm := port.DefaultMaxSnapDistanceKm
	maxGraphSnapDistanceM := dispatch.DefaultMaxSnapDistanceMeters
	if summary, err := graph.LoadSummary(*seaGraphDir); err != nil {
		log.Printf("no build summary at %s, using default snap thresholds: %v", *seaGraphDir, err)
	} else {
		if summary.MaxSnapDistanceKm > 0 {
			maxSnapDistanceKm = summary.MaxSnapDistanceKm
		}
		if summary.MaxGraphSnapDistanceM > 0 {
			maxGraphSnapDistanceM = summary.MaxGraphSnapDistanceM
		}
	}
	portSnapper := port.NewSnapperWithThreshold(ports, maxSnapDistanceKm)

	metaPath := *chokepointMetaPath
	if metaPath == "" {
		metaPath = *seaGraphDir + "/chokepoint_metadata.json"
	}
	chokepoints, err := chokepoint.LoadFrom(metaPath)
	if err != nil {
		log.Fatalf("loading chokepoint metadata: %v", err)
	}

	return dispatch.NewSeaEngineWithMaxSnapDistance(g, index, portSnapper, chokepoints, maxGraphSnapDistanceM)
}

func loadSeaLandMask() *landmask.Mask {
	if *seaLandMaskPath == "" {
		return nil
	}
	mask, err := landmask.Load(*seaLandMaskPath)
	if err != nil {
		log.Fatalf("loading sea land mask: %v", err)
	}
	return mask
}

//	@title			navigatorx lintangbs API
//	@version		1.0
//	@description	simple openstreetmap routing engine in go

//	@contact.name	lintang birda saputra
//	@description 	simple openstreetmap routing engine in go. Using Contraction Hierarchies for preprocessing and Bidirectioanl Dijkstra for shortest path query

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	ch := contractor.NewContractedGraph()
	osmParser := osmparser.NewOSMParser(ch)
	_, nodeIdxMap, graphEdges := osmParser.BikinGraphFromOpenstreetmap(*mapFile)

	db, err := pebble.Open("navigatorxDB", &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	go func() {
		kvDB.CreateStreetKV(graphEdges, nodeIdxMap, *listenAddr, false)
	}()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)
	// alg.BikinRtreeStreetNetwork(graphEdges, ch, nodeIdxMap)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	routingAlgorithm := routingalgorithm.NewRouteAlgorithm(osmParser.CH)
	hungarian := riderdrivermatching.NewHungarian(routingAlgorithm)

	heuristic := heuristics.NewHeuristics(routingAlgorithm, osmParser.CH)
	mapMatching := matching.NewHMMMapMatching(osmParser.CH, kvDB, routingAlgorithm)

	navigatorSvc := service.NewNavigationService(osmParser.CH, kvDB, hungarian, routingAlgorithm, mapMatching, heuristic)

	seaEngine := loadSeaEngine()
	seaRegistry := dispatch.NewRoutingEngineRegistry(routingAlgorithm, seaEngine)
	seaLandMask := loadSeaLandMask()

	rest.NavigatorRouter(r, navigatorSvc, m, seaRegistry, seaLandMask)

	go func() {
		osmParser.CH.Contraction()
		osmParser.CH.RemoveAstarGraph()
		osmParser.CH.SetCHReady()
		runtime.GC()
		runtime.GC() // run garbage collection biar heap size nya ngurang wkwkwk
		fmt.Printf("\n Contraction Hieararchies + Bidirectional Dijkstra Ready!!")
		fmt.Printf("\nserver started at %s\n", *listenAddr)
	}()

	log.Fatal(http.ListenAndServe(*listenAddr, r))
}



// use log middleware below if u want to use elk for logging
// logFile, err := os.OpenFile("./logs/navigatorx.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0777)
// if err != nil {
// 	log.Fatal(err)
// }
// logger := httplog.NewLogger("navigatorx", httplog.Options{
// 	Writer:   io.MultiWriter(os.Stdout, logFile),
// 	LogLevel: slog.LevelDebug,
// 	JSON:     true,
// 	Concise:  true,
// 	// RequestHeaders:   true,
// 	// ResponseHeaders:  true,
// 	MessageFieldName: "message",
// 	LevelFieldName:   "severity",
// 	TimeFieldFormat:  time.RFC3339,
// 	Tags: map[string]string{
// 		"version": "v1.0",
// 		"env":     "dev",
// 	},
// 	QuietDownRoutes: []string{
// 		"/metrics",
// 	},
// 	QuietDownPeriod: 10 * time.Second,
// })
// r.Use(httplog.RequestLogger(logger, []string{}))
