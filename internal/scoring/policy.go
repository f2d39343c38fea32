// Package scoring turns hazard proximity into route safety penalties
// and aggregates them into a bounded 0-100 score.
package scoring

import (
	"fmt"
	"math"
)

// Distance bands for the tiered policy, in kilometers.
const (
	CriticalDistanceKm  = 0.05
	DangerDistanceKm    = 0.2
	WarningDistanceKm   = 0.5
	MaxReportDistanceKm = 1.0
)

// LinearCutoffKm is the single cutoff used by the linear policy.
const LinearCutoffKm = 1.5

// ImpactPolicy maps one hazard's distance, severity and avoid-list
// membership to a penalty. Implementations are pure.
type ImpactPolicy interface {
	Name() string
	// MaxDistanceKm is the cutoff beyond which a hazard never
	// contributes; the scorer filters before calling Impact.
	MaxDistanceKm() float64
	// FirstMatchOnly makes the scorer use the first path within the
	// cutoff instead of the minimum across all paths.
	FirstMatchOnly() bool
	// Impact returns the rounded penalty, floored at 0.
	Impact(distanceKm float64, severity int, avoided bool) int
}

// PolicyFromName resolves a configured policy name. The tiered policy
// is the default when name is empty.
func PolicyFromName(name string) (ImpactPolicy, error) {
	switch name {
	case "", "tiered":
		return TieredPolicy{}, nil
	case "linear":
		return LinearPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown scoring policy %q", name)
}

// TieredPolicy is the policy of record: four distance bands with a
// flat penalty inside the critical band and linear decay across the
// outer bands.
type TieredPolicy struct{}

func (TieredPolicy) Name() string           { return "tiered" }
func (TieredPolicy) MaxDistanceKm() float64 { return MaxReportDistanceKm }
func (TieredPolicy) FirstMatchOnly() bool   { return false }

func (TieredPolicy) Impact(distanceKm float64, severity int, avoided bool) int {
	// Severity 1-5 maps to 0.6-1.4.
	severityMult := 0.4 + float64(severity)*0.2

	var base float64
	switch {
	case distanceKm <= CriticalDistanceKm:
		base = 20
	case distanceKm <= DangerDistanceKm:
		ratio := (distanceKm - CriticalDistanceKm) / (DangerDistanceKm - CriticalDistanceKm)
		base = 15 - ratio*10
	case distanceKm <= WarningDistanceKm:
		ratio := (distanceKm - DangerDistanceKm) / (WarningDistanceKm - DangerDistanceKm)
		base = 5 - ratio*4
	default:
		ratio := math.Min(1.0, (distanceKm-WarningDistanceKm)/(MaxReportDistanceKm-WarningDistanceKm))
		base = 1 - ratio*1
	}

	impact := base * severityMult
	if avoided {
		impact *= 1.5
	}

	return roundFloor(impact)
}

// LinearPolicy is the alternate strategy: a single proximity ratio over
// a 1.5 km cutoff, with one contribution taken from the first matching
// path.
type LinearPolicy struct{}

func (LinearPolicy) Name() string           { return "linear" }
func (LinearPolicy) MaxDistanceKm() float64 { return LinearCutoffKm }
func (LinearPolicy) FirstMatchOnly() bool   { return true }

func (LinearPolicy) Impact(distanceKm float64, severity int, avoided bool) int {
	if distanceKm > LinearCutoffKm {
		return 0
	}

	proximity := 1.0 - distanceKm/LinearCutoffKm
	weight := 1.0 + float64(severity-1)*0.4

	impact := proximity * 20.0 * weight
	if avoided {
		impact *= 1.5
	}

	return roundFloor(impact)
}

func roundFloor(impact float64) int {
	if n := int(math.Round(impact)); n > 0 {
		return n
	}
	return 0
}
