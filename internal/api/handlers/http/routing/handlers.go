package routing

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RoutePlanner interface {
	PlanRoute(ctx context.Context, req domain.PlanRouteRequest) (*domain.PlanRouteResponse, error)
	GetRoute(ctx context.Context, id uuid.UUID) (*domain.ScoredRoute, error)
	Options(ctx context.Context) (*domain.RouteOptionsResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Routes RoutePlanner
}

func NewHandler(logger *slog.Logger, routes RoutePlanner) *Handler {
	return &Handler{
		logger: logger,
		Routes: routes,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) RoutePlan(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("RoutePlan", slog.String("remote", r.RemoteAddr))

	var req domain.PlanRouteRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		l.Warn("trailing data after JSON body")
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		reason := validator.Reason(err)
		l.Warn("validation failed", slog.String("reason", reason))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
		return
	}

	l.Info("planning route",
		slog.String("mode", string(req.Mode)),
		slog.Int("paths", len(req.Paths)),
		slog.Int("encoded_polylines", len(req.EncodedPolylines)),
	)

	resp, err := h.Routes.PlanRoute(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("route planned",
		slog.String("request_id", resp.RequestID.String()),
		slog.String("route_id", resp.RouteID.String()),
		slog.Int("score", resp.Score),
		slog.Int("impacts", len(resp.Impacts)),
	)
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) RouteGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("RouteGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	route, err := h.Routes.GetRoute(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, route)
}

func (h *Handler) RouteOptions(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("RouteOptions", slog.String("remote", r.RemoteAddr))

	resp, err := h.Routes.Options(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
