package domain

// HazardStats aggregates hazard counts; the per-kind and per-severity
// breakdowns cover active hazards only.
type HazardStats struct {
	Total      int64                `json:"total_hazards"`
	Active     int64                `json:"active_hazards"`
	Resolved   int64                `json:"resolved_hazards"`
	ByKind     map[HazardKind]int64 `json:"by_kind"`
	BySeverity map[string]int64     `json:"by_severity"`
}
