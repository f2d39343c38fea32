package domain

import (
	"time"

	"github.com/google/uuid"
)

type HazardKind string

const (
	KindAccident     HazardKind = "accident"
	KindConstruction HazardKind = "construction"
	KindTrafficJam   HazardKind = "traffic_jam"
	KindRoadClosure  HazardKind = "road_closure"
	KindHazard       HazardKind = "hazard"
	KindPolice       HazardKind = "police"
	KindOther        HazardKind = "other"
)

// KnownKinds returns the kind enumeration in a stable order.
func KnownKinds() []HazardKind {
	return []HazardKind{
		KindAccident,
		KindConstruction,
		KindTrafficJam,
		KindRoadClosure,
		KindHazard,
		KindPolice,
		KindOther,
	}
}

func (k HazardKind) Valid() bool {
	switch k {
	case KindAccident, KindConstruction, KindTrafficJam, KindRoadClosure,
		KindHazard, KindPolice, KindOther:
		return true
	}
	return false
}

type HazardStatus string

const (
	HazardActive   HazardStatus = "active"
	HazardResolved HazardStatus = "resolved"
	HazardExpired  HazardStatus = "expired"
)

// CanTransition reports whether a status change is allowed. Hazards only
// move forward: active -> resolved or active -> expired. Re-stating the
// current status is a no-op, not a violation.
func (s HazardStatus) CanTransition(to HazardStatus) bool {
	if s == to {
		return true
	}
	return s == HazardActive && (to == HazardResolved || to == HazardExpired)
}

// DuplicateToleranceDeg is the coordinate box half-width used for
// duplicate-report matching: ~111m of latitude at the equator.
const DuplicateToleranceDeg = 0.001

type Hazard struct {
	ID           uuid.UUID    `json:"id"`
	Kind         HazardKind   `json:"kind"`
	Severity     int          `json:"severity"`
	Lat          float64      `json:"latitude"`
	Lng          float64      `json:"longitude"`
	Status       HazardStatus `json:"status"`
	ReportsCount int          `json:"reports_count"`
	ReporterID   *uuid.UUID   `json:"reporter_id,omitempty"`
	ExpiresAt    *time.Time   `json:"expires_at"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (h *Hazard) Active() bool {
	return h.Status == HazardActive
}
