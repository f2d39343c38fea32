package scoring

import (
	"sort"
	"strings"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/internal/geo"
)

// Impact is one hazard's contribution to a route's deduction.
type Impact struct {
	Hazard      domain.Hazard
	ImpactScore int
	DistanceKm  float64
}

type Result struct {
	Score   int
	Impacts []Impact
}

// Scorer evaluates paths against a hazard snapshot under one policy.
// It is pure and safe for concurrent use.
type Scorer struct {
	policy ImpactPolicy
}

func NewScorer(policy ImpactPolicy) *Scorer {
	if policy == nil {
		policy = TieredPolicy{}
	}
	return &Scorer{policy: policy}
}

func (s *Scorer) Policy() ImpactPolicy {
	return s.policy
}

// ScoreRoute computes the safety score for a set of alternative paths.
// Hazards beyond the policy cutoff and hazards with no computable
// distance are skipped, zero penalties are discarded, and the surviving
// impacts come back sorted by ascending distance. Empty paths or an
// empty hazard snapshot score 100.
func (s *Scorer) ScoreRoute(paths []domain.Path, hazards []domain.Hazard, avoidKinds []string) Result {
	avoid := make(map[string]struct{}, len(avoidKinds))
	for _, k := range avoidKinds {
		avoid[strings.ToLower(k)] = struct{}{}
	}

	cutoff := s.policy.MaxDistanceKm()

	impacts := make([]Impact, 0)
	total := 0

	for _, h := range hazards {
		dist, ok := s.hazardDistance(paths, h, cutoff)
		if !ok || dist > cutoff {
			continue
		}

		_, avoided := avoid[strings.ToLower(string(h.Kind))]
		impact := s.policy.Impact(dist, h.Severity, avoided)
		if impact <= 0 {
			continue
		}

		impacts = append(impacts, Impact{Hazard: h, ImpactScore: impact, DistanceKm: dist})
		total += impact
	}

	score := 100 - total
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		return impacts[i].DistanceKm < impacts[j].DistanceKm
	})

	return Result{Score: score, Impacts: impacts}
}

func (s *Scorer) hazardDistance(paths []domain.Path, h domain.Hazard, cutoff float64) (float64, bool) {
	if s.policy.FirstMatchOnly() {
		for _, p := range paths {
			if d, ok := geo.MinDistanceToPathKm(p, h.Lat, h.Lng); ok && d <= cutoff {
				return d, true
			}
		}
		return 0, false
	}

	var min float64
	found := false
	for _, p := range paths {
		d, ok := geo.MinDistanceToPathKm(p, h.Lat, h.Lng)
		if !ok {
			continue
		}
		if !found || d < min {
			min = d
			found = true
		}
	}
	return min, found
}
