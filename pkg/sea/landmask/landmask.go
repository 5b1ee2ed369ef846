// Package landmask loads a land-polygon dataset and exposes the two
// predicates the sea-lane graph builder needs: point containment and
// segment intersection, both in lon/lat (EPSG:4326) coordinates.
package landmask

import (
	"os"

	"github.com/dynop/routing-service/pkg/server"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Mask is the union of every land polygon in the input dataset,
// backed by an s2.Polygon so containment and edge-crossing tests are
// native spherical operations rather than planar approximations
// (important near the poles and across the antimeridian, which a
// polygon spanning wrap-around longitude ranges would otherwise
// distort under a flat lon/lat projection).
type Mask struct {
	polygon *s2.Polygon
	source  string
}

// Source returns the path the mask was loaded from, for
// build_summary.json's land_mask_source field.
func (m *Mask) Source() string { return m.source }

// Load reads a GeoJSON FeatureCollection (or bare Polygon/
// MultiPolygon) of land polygons and unions them into a single Mask.
// Fails with server.ErrLandMaskLoadFailed if the file is missing,
// unparseable, or contains no polygons.
func Load(path string) (*Mask, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrLandMaskLoadFailed, "reading land mask %s", path)
	}

	rings, err := extractRings(data)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrLandMaskLoadFailed, "parsing land mask %s", path)
	}
	if len(rings) == 0 {
		return nil, server.WrapErrorf(nil, server.ErrLandMaskLoadFailed, "land mask %s contains no polygons", path)
	}

	loops := make([]*s2.Loop, 0, len(rings))
	for _, ring := range rings {
		loop := loopFromRing(ring)
		if loop != nil {
			loops = append(loops, loop)
		}
	}
	if len(loops) == 0 {
		return nil, server.WrapErrorf(nil, server.ErrLandMaskLoadFailed, "land mask %s yielded no valid loops", path)
	}

	return &Mask{polygon: s2.PolygonFromLoops(loops), source: path}, nil
}

func extractRings(data []byte) ([]orb.Ring, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err == nil && fc != nil {
		var rings []orb.Ring
		for _, f := range fc.Features {
			rings = append(rings, ringsFromGeometry(f.Geometry)...)
		}
		return rings, nil
	}

	g, gerr := geojson.UnmarshalGeometry(data)
	if gerr != nil {
		return nil, gerr
	}
	return ringsFromGeometry(g.Geometry()), nil
}

func ringsFromGeometry(geom orb.Geometry) []orb.Ring {
	switch g := geom.(type) {
	case orb.Polygon:
		return []orb.Ring(g)
	case orb.MultiPolygon:
		var rings []orb.Ring
		for _, poly := range g {
			rings = append(rings, []orb.Ring(poly)...)
		}
		return rings
	default:
		return nil
	}
}

func loopFromRing(ring orb.Ring) *s2.Loop {
	pts := ring
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	s2Points := make([]s2.Point, len(pts))
	for i, p := range pts {
		// orb.Point is (lon, lat); s2 wants LatLng in (lat, lon) order.
		s2Points[i] = s2.PointFromLatLng(s2.LatLngFromDegrees(p[1], p[0]))
	}
	return s2.LoopFromPoints(s2Points)
}

// Contains reports whether (lat, lon) lies strictly inside the land
// mask.
func (m *Mask) Contains(lat, lon float64) bool {
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	return m.polygon.ContainsPoint(p)
}

// IntersectsSegment reports whether the great-circle segment from
// (lat1,lon1) to (lat2,lon2) crosses the land mask boundary. Callers
// are responsible for antimeridian splitting before calling this —
// Mask operates on a single, non-wrapping segment.
func (m *Mask) IntersectsSegment(lat1, lon1, lat2, lon2 float64) bool {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lon1))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lon2))

	if m.polygon.ContainsPoint(a) || m.polygon.ContainsPoint(b) {
		return true
	}

	for _, loop := range m.polygon.Loops() {
		n := loop.NumVertices()
		for i := 0; i < n; i++ {
			c := loop.Vertex(i)
			d := loop.Vertex((i + 1) % n)
			if s2.CrossingSign(a, b, c, d) != s2.DoNotCross {
				return true
			}
		}
	}
	return false
}
