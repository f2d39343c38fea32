package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportHazardRequest struct {
	Kind       HazardKind `json:"kind" validate:"required,oneof=accident construction traffic_jam road_closure hazard police other"`
	Severity   int        `json:"severity" validate:"required,min=1,max=5"`
	Lat        *float64   `json:"latitude" validate:"required,lat"`
	Lng        *float64   `json:"longitude" validate:"required,lng"`
	ReporterID *uuid.UUID `json:"reporter_id,omitempty"`
}

type ReportHazardResponse struct {
	Hazard    *Hazard `json:"hazard"`
	Duplicate bool    `json:"duplicate"`
}

type UpdateHazardRequest struct {
	Kind     *HazardKind   `json:"kind" validate:"omitempty,oneof=accident construction traffic_jam road_closure hazard police other"`
	Severity *int          `json:"severity" validate:"omitempty,min=1,max=5"`
	Lat      *float64      `json:"latitude" validate:"omitempty,lat"`
	Lng      *float64      `json:"longitude" validate:"omitempty,lng"`
	Status   *HazardStatus `json:"status" validate:"omitempty,oneof=active resolved expired"`
}

type ListHazardsRequest struct {
	Kind     HazardKind   `query:"kind" validate:"omitempty,oneof=accident construction traffic_jam road_closure hazard police other"`
	Severity int          `query:"severity" validate:"omitempty,min=1,max=5"`
	Status   HazardStatus `query:"status" validate:"omitempty,oneof=active resolved expired"`
	Limit    int          `query:"limit" validate:"omitempty,min=1,max=500"`
}

type ListHazardsResponse struct {
	Hazards []Hazard `json:"hazards"`
	Count   int      `json:"count"`
}

type GeoPoint struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

type NearbyRequest struct {
	Lat      float64 `query:"latitude" validate:"lat"`
	Lng      float64 `query:"longitude" validate:"lng"`
	RadiusKM float64 `query:"radius" validate:"omitempty,radius_km"`
}

type NearbyResponse struct {
	Hazards  []Hazard `json:"hazards"`
	Count    int      `json:"count"`
	Center   GeoPoint `json:"center"`
	RadiusKM float64  `json:"radius_km"`
}

type ReconfirmResponse struct {
	HazardID     uuid.UUID `json:"hazard_id"`
	ReportsCount int       `json:"reports_count"`
}

// Map payload: markers carry enough for a pin popup, heatmap rows carry
// severity as the weight.
type MapMarker struct {
	ID          uuid.UUID  `json:"id"`
	Kind        HazardKind `json:"kind"`
	Severity    int        `json:"severity"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	CreatedAt   time.Time  `json:"created_at"`
	Description string     `json:"description"`
}

type HeatPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight int     `json:"weight"`
}

type MapDataResponse struct {
	Markers []MapMarker `json:"markers"`
	Heatmap []HeatPoint `json:"heatmap"`
}
