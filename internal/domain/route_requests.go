package domain

import "github.com/google/uuid"

type RoutePoint struct {
	Lat *float64 `json:"latitude" validate:"required,lat"`
	Lng *float64 `json:"longitude" validate:"required,lng"`
}

// PlanRouteRequest is the scoring payload. Paths carry raw [lon,lat]
// waypoint lists; EncodedPolylines optionally carry the same geometry as
// Google encoded polyline strings, decoded before scoring.
type PlanRouteRequest struct {
	RequesterID      *uuid.UUID `json:"requester_id,omitempty"`
	Start            RoutePoint `json:"start"`
	End              RoutePoint `json:"end"`
	Mode             TravelMode `json:"mode" validate:"omitempty,oneof=car bicycle pedestrian"`
	AvoidKinds       []string   `json:"avoid_kinds"`
	Paths            []Path     `json:"paths"`
	EncodedPolylines []string   `json:"encoded_polylines" validate:"omitempty,dive,required"`
}

type RouteImpact struct {
	HazardID    uuid.UUID  `json:"hazard_id"`
	Kind        HazardKind `json:"kind"`
	Severity    int        `json:"severity"`
	DistanceKM  float64    `json:"distance_km"`
	ImpactScore int        `json:"impact_score"`
}

type PlanRouteResponse struct {
	RequestID uuid.UUID     `json:"request_id"`
	RouteID   uuid.UUID     `json:"route_id"`
	Score     int           `json:"score"`
	Impacts   []RouteImpact `json:"impacts"`
}

type RouteOptionsResponse struct {
	TravelModes       []TravelMode `json:"travel_modes"`
	HazardKinds       []HazardKind `json:"hazard_kinds"`
	DefaultAvoidKinds []string     `json:"default_avoid_kinds"`
}
