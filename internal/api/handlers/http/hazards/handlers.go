package hazards

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type HazardService interface {
	Report(ctx context.Context, req domain.ReportHazardRequest) (*domain.ReportHazardResponse, error)
	List(ctx context.Context, req domain.ListHazardsRequest) (*domain.ListHazardsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateHazardRequest) (*domain.Hazard, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reconfirm(ctx context.Context, id uuid.UUID) (*domain.ReconfirmResponse, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) (*domain.NearbyResponse, error)
	MapData(ctx context.Context) (*domain.MapDataResponse, error)
}

type StatsGetter interface {
	HazardStats(ctx context.Context) (*domain.HazardStats, error)
}

type Handler struct {
	logger  *slog.Logger
	Hazards HazardService
	Stats   StatsGetter
}

func NewHandler(logger *slog.Logger, hazards HazardService, stats StatsGetter) *Handler {
	return &Handler{
		logger:  logger,
		Hazards: hazards,
		Stats:   stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) HazardReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardReport", slog.String("remote", r.RemoteAddr))

	var req domain.ReportHazardRequest

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

	l.Info("reporting hazard",
		slog.String("kind", string(req.Kind)),
		slog.Int("severity", req.Severity),
		slog.Float64("lat", *req.Lat),
		slog.Float64("lng", *req.Lng),
	)

	resp, err := h.Hazards.Report(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusCreated
	if resp.Duplicate {
		status = http.StatusOK
	}

	l.Info("hazard reported",
		slog.String("id", resp.Hazard.ID.String()),
		slog.Bool("duplicate", resp.Duplicate),
		slog.Int("reports_count", resp.Hazard.ReportsCount),
	)
	h.writeJSON(w, status, resp)
}

func (h *Handler) HazardList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	req := domain.ListHazardsRequest{
		Kind:     domain.HazardKind(q.Get("kind")),
		Severity: parseInt(q.Get("severity"), 0),
		Status:   domain.HazardStatus(q.Get("status")),
		Limit:    parseInt(q.Get("limit"), 0),
	}

	if req.Limit > 500 {
		req.Limit = 500
		l.Warn("limit capped", slog.Int("limit", req.Limit))
	}

	if err := validator.ValidateStruct(req); err != nil {
		reason := validator.Reason(err)
		l.Warn("validation failed", slog.String("reason", reason))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
		return
	}

	resp, err := h.Hazards.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazards listed", slog.Int("count", resp.Count))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HazardStatistics(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardStatistics", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.HazardStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"statistics": stats})
}

func (h *Handler) HazardNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardNearby", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("longitude"), 64)
	if errLat != nil || errLng != nil {
		l.Warn("nearby without coordinates", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude and longitude are required"})
		return
	}

	req := domain.NearbyRequest{
		Lat:      lat,
		Lng:      lng,
		RadiusKM: parseFloat(q.Get("radius"), 0),
	}

	if err := validator.ValidateStruct(req); err != nil {
		reason := validator.Reason(err)
		l.Warn("validation failed", slog.String("reason", reason))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
		return
	}

	resp, err := h.Hazards.Nearby(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("nearby hazards listed", slog.Int("count", resp.Count), slog.Float64("radius_km", resp.RadiusKM))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HazardGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardGet", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	hazard, err := h.Hazards.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) HazardUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardUpdate", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateHazardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		reason := validator.Reason(err)
		l.Warn("validation failed", slog.String("reason", reason))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": reason})
		return
	}

	hazard, err := h.Hazards.Update(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard updated", slog.String("id", id.String()), slog.String("status", string(hazard.Status)))
	h.writeJSON(w, http.StatusOK, hazard)
}

func (h *Handler) HazardDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardDelete", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Hazards.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HazardReconfirm(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardReconfirm", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	resp, err := h.Hazards.Reconfirm(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard reconfirmed", slog.String("id", id.String()), slog.Int("reports_count", resp.ReportsCount))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HazardMap(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("HazardMap", slog.String("remote", r.RemoteAddr))

	resp, err := h.Hazards.MapData(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("map data served", slog.Int("markers", len(resp.Markers)))
	h.writeJSON(w, http.StatusOK, resp)
}
