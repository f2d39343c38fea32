package routing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/andreisalomia/TravelSafe/internal/api/handlers/http/routing"
	mock_routing "github.com/andreisalomia/TravelSafe/internal/api/handlers/http/routing/mocks"
	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"
)

func newTestLogger() *slog.Logger {

	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func f64ptr(f float64) *float64 { return &f }

// --- POST /routes ---

func TestRoutePlan_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	reqBody := `{
		"start": {"latitude": 44.4260, "longitude": 26.1020},
		"end": {"latitude": 44.4276, "longitude": 26.1030},
		"mode": "car",
		"avoid_kinds": ["accident"],
		"paths": [[[26.1020, 44.4260], [26.1030, 44.4276]]]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	requestID := uuid.New()
	routeID := uuid.New()
	hazardID := uuid.New()
	want := &domain.PlanRouteResponse{
		RequestID: requestID,
		RouteID:   routeID,
		Score:     72,
		Impacts: []domain.RouteImpact{
			{HazardID: hazardID, Kind: domain.KindAccident, Severity: 5, DistanceKM: 0.022, ImpactScore: 28},
		},
	}

	planner.EXPECT().
		PlanRoute(gomock.Any(), domain.PlanRouteRequest{
			Start:      domain.RoutePoint{Lat: f64ptr(44.4260), Lng: f64ptr(26.1020)},
			End:        domain.RoutePoint{Lat: f64ptr(44.4276), Lng: f64ptr(26.1030)},
			Mode:       domain.ModeCar,
			AvoidKinds: []string{"accident"},
			Paths:      []domain.Path{{{26.1020, 44.4260}, {26.1030, 44.4276}}},
		}).
		Return(want, nil).
		Times(1)

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.PlanRouteResponse](t, rr)
	if got.RequestID != requestID || got.RouteID != routeID {
		t.Fatalf("unexpected ids: %+v", got)
	}
	if got.Score != 72 {
		t.Fatalf("expected score=72 got=%d", got.Score)
	}
	if len(got.Impacts) != 1 || got.Impacts[0].ImpactScore != 28 {
		t.Fatalf("unexpected impacts: %+v", got.Impacts)
	}
}

func TestRoutePlan_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := routing.NewHandler(newTestLogger(), mock_routing.NewMockRoutePlanner(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRoutePlan_UnknownField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := routing.NewHandler(newTestLogger(), mock_routing.NewMockRoutePlanner(ctrl))

	reqBody := `{
		"start": {"latitude": 44.4260, "longitude": 26.1020},
		"end": {"latitude": 44.4276, "longitude": 26.1030},
		"waypoints": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRoutePlan_MissingStart_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := routing.NewHandler(newTestLogger(), mock_routing.NewMockRoutePlanner(ctrl))

	reqBody := `{"end": {"latitude": 44.4276, "longitude": 26.1030}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRoutePlan_UnknownMode_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := routing.NewHandler(newTestLogger(), mock_routing.NewMockRoutePlanner(ctrl))

	reqBody := `{
		"start": {"latitude": 44.4260, "longitude": 26.1020},
		"end": {"latitude": 44.4276, "longitude": 26.1030},
		"mode": "rocket"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRoutePlan_BadPolyline_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	reqBody := `{
		"start": {"latitude": 44.4260, "longitude": 26.1020},
		"end": {"latitude": 44.4276, "longitude": 26.1030},
		"encoded_polylines": ["_p~iF~ps|U_"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	planner.EXPECT().
		PlanRoute(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service.Routing.PlanRoute: %w", e.ErrInvalidInput)).
		Times(1)

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRoutePlan_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	reqBody := `{
		"start": {"latitude": 44.4260, "longitude": 26.1020},
		"end": {"latitude": 44.4276, "longitude": 26.1030}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	planner.EXPECT().
		PlanRoute(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	h.RoutePlan(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

// --- GET /routes/{id} ---

func TestRouteGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	id := uuid.New()
	want := &domain.ScoredRoute{
		ID:        id,
		RequestID: uuid.New(),
		Paths:     []domain.Path{{{26.1020, 44.4260}, {26.1030, 44.4276}}},
		Score:     88,
		Impacts:   []domain.ImpactLink{{ID: uuid.New(), HazardID: uuid.New(), RouteID: id, ImpactScore: 12}},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	planner.EXPECT().
		GetRoute(gomock.Any(), id).
		Return(want, nil).
		Times(1)

	h.RouteGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ScoredRoute](t, rr)
	if got.ID != id || got.Score != 88 {
		t.Fatalf("unexpected route: %+v", got)
	}
	if len(got.Impacts) != 1 {
		t.Fatalf("expected 1 impact link, got %d", len(got.Impacts))
	}
}

func TestRouteGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := routing.NewHandler(newTestLogger(), mock_routing.NewMockRoutePlanner(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/bad/", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.RouteGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRouteGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	planner.EXPECT().
		GetRoute(gomock.Any(), id).
		Return(nil, fmt.Errorf("service.Routing.GetRoute: %w", e.ErrNotFound)).
		Times(1)

	h.RouteGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

// --- GET /routes/options ---

func TestRouteOptions_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planner := mock_routing.NewMockRoutePlanner(ctrl)
	h := routing.NewHandler(newTestLogger(), planner)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/routes/options", nil)
	rr := httptest.NewRecorder()

	want := &domain.RouteOptionsResponse{
		TravelModes:       domain.TravelModes(),
		HazardKinds:       []domain.HazardKind{domain.KindAccident, domain.KindRoadClosure},
		DefaultAvoidKinds: []string{"accident", "road_closure"},
	}

	planner.EXPECT().
		Options(gomock.Any()).
		Return(want, nil).
		Times(1)

	h.RouteOptions(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.RouteOptionsResponse](t, rr)
	if len(got.TravelModes) != 3 {
		t.Fatalf("expected 3 travel modes, got %v", got.TravelModes)
	}
	if len(got.DefaultAvoidKinds) != 2 {
		t.Fatalf("unexpected default avoid kinds: %v", got.DefaultAvoidKinds)
	}
}
