// Package geo implements the planar proximity math behind route
// scoring: a local flat-plane projection and clamped point-to-segment
// distances, in kilometers.
package geo

import (
	"math"

	"github.com/andreisalomia/TravelSafe/internal/domain"
)

const kmPerDegLat = 111.0

type Coord struct {
	Lat float64
	Lng float64
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// ProjectPlanar maps a coordinate onto a local planar frame measured in
// kilometers. refLat sets the longitude compression; callers should use
// the mean latitude of the points under comparison to bound distortion.
// The approximation only holds over short spans, which is all hazard
// proximity needs.
func ProjectPlanar(lat, lng, refLat float64) (x, y float64) {
	kmPerDegLng := kmPerDegLat * math.Cos(rad(refLat))
	return lng * kmPerDegLng, lat * kmPerDegLat
}

// DistanceToSegmentKm returns the distance from p to the closest point
// of segment ab. The three points share a reference latitude (their
// mean), the parametric projection onto the segment line is clamped to
// [0,1] so the closest point never leaves the segment, and a zero
// length segment falls back to the plain point distance.
func DistanceToSegmentKm(p, a, b Coord) float64 {
	refLat := (p.Lat + a.Lat + b.Lat) / 3.0

	px, py := ProjectPlanar(p.Lat, p.Lng, refLat)
	ax, ay := ProjectPlanar(a.Lat, a.Lng, refLat)
	bx, by := ProjectPlanar(b.Lat, b.Lng, refLat)

	dx, dy := bx-ax, by-ay
	if dx == 0 && dy == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	t = math.Max(0.0, math.Min(1.0, t))

	cx, cy := ax+t*dx, ay+t*dy
	return math.Hypot(px-cx, py-cy)
}

// MinDistanceToPathKm returns the minimum distance from (lat, lng) to
// any segment of path. ok is false when the path has fewer than 2
// waypoints or no consecutive pair formed a usable segment. A waypoint
// missing a coordinate skips the pair, it does not fail the path.
func MinDistanceToPathKm(path domain.Path, lat, lng float64) (km float64, ok bool) {
	if len(path) < 2 {
		return 0, false
	}

	p := Coord{Lat: lat, Lng: lng}
	for i := 0; i < len(path)-1; i++ {
		start, end := path[i], path[i+1]
		if len(start) < 2 || len(end) < 2 {
			continue
		}
		d := DistanceToSegmentKm(p,
			Coord{Lat: start[1], Lng: start[0]},
			Coord{Lat: end[1], Lng: end[0]},
		)
		if !ok || d < km {
			km = d
			ok = true
		}
	}
	return km, ok
}
