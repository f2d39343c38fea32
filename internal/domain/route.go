package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TravelMode string

const (
	ModeCar        TravelMode = "car"
	ModeBicycle    TravelMode = "bicycle"
	ModePedestrian TravelMode = "pedestrian"
)

func TravelModes() []TravelMode {
	return []TravelMode{ModeBicycle, ModeCar, ModePedestrian}
}

func (m TravelMode) Valid() bool {
	switch m {
	case ModeCar, ModeBicycle, ModePedestrian:
		return true
	}
	return false
}

// Path is an ordered sequence of [longitude, latitude] waypoints as
// supplied on the wire. Waypoints keep their raw slice shape so a
// malformed entry (fewer than 2 coordinates) can be skipped during
// distance evaluation instead of failing the whole request.
type Path [][]float64

// RoutePlan records who asked for a score and under which constraints.
type RoutePlan struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID *uuid.UUID `json:"requester_id,omitempty"`
	StartLat    float64    `json:"start_lat"`
	StartLng    float64    `json:"start_lng"`
	EndLat      float64    `json:"end_lat"`
	EndLng      float64    `json:"end_lng"`
	Mode        TravelMode `json:"mode"`
	AvoidKinds  []string   `json:"avoid_kinds"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ScoredRoute belongs to exactly one RoutePlan. Impact links are written
// once, during scoring, and never mutated afterwards.
type ScoredRoute struct {
	ID        uuid.UUID    `json:"id"`
	RequestID uuid.UUID    `json:"request_id"`
	Paths     []Path       `json:"paths"`
	Score     int          `json:"score"`
	Impacts   []ImpactLink `json:"impacts"`
}

type ImpactLink struct {
	ID          uuid.UUID `json:"id"`
	HazardID    uuid.UUID `json:"hazard_id"`
	RouteID     uuid.UUID `json:"route_id"`
	ImpactScore int       `json:"impact_score"`
}

// NormalizeAvoidKinds trims, lowercases, deduplicates and sorts the
// traveler's avoid list. Empty entries are dropped.
func NormalizeAvoidKinds(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, k := range raw {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultAvoidKinds suggests kinds most travelers want routed around.
func DefaultAvoidKinds() []string {
	return []string{string(KindAccident), string(KindRoadClosure), string(KindConstruction)}
}
