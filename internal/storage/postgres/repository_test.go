//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/andreisalomia/TravelSafe/internal/domain"
	"github.com/andreisalomia/TravelSafe/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := EnsureSchema(ctx, testPool); err != nil {
		fmt.Println("EnsureSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE hazards, hazard_reports, route_requests, routes, route_hazard_links`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func TestHazardRepo_Insert_SetsDefaults(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	h := &domain.Hazard{
		Kind:     domain.KindAccident,
		Severity: 3,
		Lat:      44.4268,
		Lng:      26.1025,
	}

	err := repo.Insert(context.Background(), h)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if h.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if h.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}
	if h.Status != domain.HazardActive {
		t.Fatalf("expected status=%s got=%s", domain.HazardActive, h.Status)
	}

	got, err := repo.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if got.Lat != h.Lat || got.Lng != h.Lng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Lat, got.Lng, h.Lat, h.Lng)
	}
	if got.Kind != domain.KindAccident || got.Severity != 3 {
		t.Fatalf("kind/severity mismatch got=(%s,%d)", got.Kind, got.Severity)
	}
	if got.ReportsCount != 1 {
		t.Fatalf("expected reports_count=1 got=%d", got.ReportsCount)
	}
}

func TestHazardRepo_List_FiltersAndOrder(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	seed := []struct {
		kind     domain.HazardKind
		severity int
		status   domain.HazardStatus
		offset   time.Duration
	}{
		{domain.KindAccident, 3, domain.HazardActive, 0},
		{domain.KindAccident, 5, domain.HazardActive, time.Second},
		{domain.KindPolice, 2, domain.HazardActive, 2 * time.Second},
		{domain.KindAccident, 3, domain.HazardResolved, 3 * time.Second},
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range seed {
		h := &domain.Hazard{
			Kind:      s.kind,
			Severity:  s.severity,
			Lat:       44.4,
			Lng:       26.1,
			Status:    s.status,
			CreatedAt: base.Add(s.offset),
		}
		if err := repo.Insert(context.Background(), h); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	all, err := repo.List(context.Background(), domain.ListHazardsRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 hazards got=%d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].CreatedAt.Before(all[i].CreatedAt) {
			t.Fatalf("expected DESC order by created_at")
		}
	}

	accidents, err := repo.List(context.Background(), domain.ListHazardsRequest{Kind: domain.KindAccident})
	if err != nil {
		t.Fatalf("List kind: %v", err)
	}
	if len(accidents) != 3 {
		t.Fatalf("expected 3 accidents got=%d", len(accidents))
	}

	activeSev3, err := repo.List(context.Background(), domain.ListHazardsRequest{Severity: 3, Status: domain.HazardActive})
	if err != nil {
		t.Fatalf("List severity+status: %v", err)
	}
	if len(activeSev3) != 1 {
		t.Fatalf("expected 1 active severity-3 hazard got=%d", len(activeSev3))
	}

	limited, err := repo.List(context.Background(), domain.ListHazardsRequest{Limit: 2})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 hazards got=%d", len(limited))
	}
}

func TestHazardRepo_Update_OK(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	h := &domain.Hazard{
		Kind:     domain.KindConstruction,
		Severity: 2,
		Lat:      44.4,
		Lng:      26.1,
	}
	if err := repo.Insert(context.Background(), h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	h.Severity = 4
	h.Status = domain.HazardResolved

	if err := repo.Update(context.Background(), h); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Severity != 4 || got.Status != domain.HazardResolved {
		t.Fatalf("unexpected updated row: %+v", got)
	}
}

func TestHazardRepo_Update_NotFound(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	h := &domain.Hazard{
		ID:       uuid.New(),
		Kind:     domain.KindAccident,
		Severity: 1,
		Status:   domain.HazardActive,
	}

	err := repo.Update(context.Background(), h)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestHazardRepo_Delete_CascadesReports(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	h := &domain.Hazard{
		Kind:     domain.KindHazard,
		Severity: 3,
		Lat:      44.4,
		Lng:      26.1,
	}
	if err := repo.Insert(context.Background(), h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete(context.Background(), h.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var reports int
	err := testPool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM hazard_reports WHERE hazard_id = $1`, h.ID).Scan(&reports)
	if err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if reports != 0 {
		t.Fatalf("expected aggregate row removed, got %d", reports)
	}

	err = repo.Delete(context.Background(), h.ID)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestHazardRepo_FindActiveNear_BoxTolerance(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	h := &domain.Hazard{
		Kind:     domain.KindAccident,
		Severity: 3,
		Lat:      44.4268,
		Lng:      26.1025,
	}
	if err := repo.Insert(context.Background(), h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.FindActiveNear(context.Background(), 44.4270, 26.1027, domain.KindAccident, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("FindActiveNear: %v", err)
	}
	if got == nil || got.ID != h.ID {
		t.Fatalf("expected in-box match")
	}

	got, err = repo.FindActiveNear(context.Background(), 44.4268, 26.1040, domain.KindAccident, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("FindActiveNear out of box: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no match beyond longitude tolerance")
	}

	got, err = repo.FindActiveNear(context.Background(), 44.4268, 26.1025, domain.KindPolice, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("FindActiveNear other kind: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no match for different kind")
	}

	h.Status = domain.HazardResolved
	if err := repo.Update(context.Background(), h); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err = repo.FindActiveNear(context.Background(), 44.4268, 26.1025, domain.KindAccident, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("FindActiveNear resolved: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no match once resolved")
	}
}

func TestHazardRepo_ResolveOrCreate_MergesDuplicate(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	first := &domain.Hazard{
		Kind:     domain.KindRoadClosure,
		Severity: 4,
		Lat:      44.4268,
		Lng:      26.1025,
	}
	created, dup, err := repo.ResolveOrCreate(context.Background(), first, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if dup {
		t.Fatalf("expected fresh hazard")
	}

	second := &domain.Hazard{
		Kind:     domain.KindRoadClosure,
		Severity: 2,
		Lat:      44.4269,
		Lng:      26.1026,
	}
	merged, dup, err := repo.ResolveOrCreate(context.Background(), second, domain.DuplicateToleranceDeg)
	if err != nil {
		t.Fatalf("ResolveOrCreate duplicate: %v", err)
	}
	if !dup {
		t.Fatalf("expected duplicate merge")
	}
	if merged.ID != created.ID {
		t.Fatalf("expected same hazard, got %s want %s", merged.ID, created.ID)
	}
	if merged.ReportsCount != 2 {
		t.Fatalf("expected reports_count=2 got=%d", merged.ReportsCount)
	}

	var total int
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM hazards`).Scan(&total); err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected single hazard row, got %d", total)
	}
}

func TestHazardRepo_ResolveOrCreate_ConcurrentReportsConverge(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	const reporters = 8

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		creates int
		errs    []error
	)
	for i := 0; i < reporters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := &domain.Hazard{
				Kind:     domain.KindTrafficJam,
				Severity: 3,
				Lat:      44.4268,
				Lng:      26.1025,
			}
			_, dup, err := repo.ResolveOrCreate(context.Background(), h, domain.DuplicateToleranceDeg)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if !dup {
				creates++
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if creates != 1 {
		t.Fatalf("expected exactly one create, got %d", creates)
	}

	var total int
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM hazards`).Scan(&total); err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected single hazard row, got %d", total)
	}

	hazards, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(hazards) != 1 {
		t.Fatalf("expected one active hazard, got %d", len(hazards))
	}
	if hazards[0].ReportsCount != reporters {
		t.Fatalf("expected reports_count=%d got=%d", reporters, hazards[0].ReportsCount)
	}
}

func TestHazardRepo_IncrementReportCount_MissingAggregate(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	// Raw insert without the aggregate row: counts as one implicit report.
	id := uuid.New()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO hazards (id, kind, severity, lat, lng) VALUES ($1, 'accident', 3, 44.4, 26.1)`, id)
	if err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	count, err := repo.IncrementReportCount(context.Background(), id)
	if err != nil {
		t.Fatalf("IncrementReportCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count=2 got=%d", count)
	}

	count, err = repo.IncrementReportCount(context.Background(), id)
	if err != nil {
		t.Fatalf("IncrementReportCount second: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count=3 got=%d", count)
	}
}

func TestHazardRepo_ExpireDue(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	stale := &domain.Hazard{
		Kind:      domain.KindConstruction,
		Severity:  2,
		Lat:       44.4,
		Lng:       26.1,
		ExpiresAt: &past,
	}
	fresh := &domain.Hazard{
		Kind:      domain.KindConstruction,
		Severity:  2,
		Lat:       45.4,
		Lng:       27.1,
		ExpiresAt: &future,
	}
	if err := repo.Insert(context.Background(), stale); err != nil {
		t.Fatalf("Insert stale: %v", err)
	}
	if err := repo.Insert(context.Background(), fresh); err != nil {
		t.Fatalf("Insert fresh: %v", err)
	}

	expired, err := repo.ExpireDue(context.Background(), time.Now().UTC())
	if err != nil {
		t.Fatalf("ExpireDue: %v", err)
	}
	if expired != 1 {
		t.Fatalf("expected 1 expired, got %d", expired)
	}

	got, err := repo.Get(context.Background(), stale.ID)
	if err != nil {
		t.Fatalf("Get stale: %v", err)
	}
	if got.Status != domain.HazardExpired {
		t.Fatalf("expected status=expired got=%s", got.Status)
	}

	got, err = repo.Get(context.Background(), fresh.ID)
	if err != nil {
		t.Fatalf("Get fresh: %v", err)
	}
	if got.Status != domain.HazardActive {
		t.Fatalf("expected status=active got=%s", got.Status)
	}
}

func TestHazardRepo_Kinds_Distinct(t *testing.T) {

	truncateAll(t)

	repo := NewHazardRepo(testPool, testLogger())

	for _, k := range []domain.HazardKind{domain.KindPolice, domain.KindAccident, domain.KindAccident} {
		h := &domain.Hazard{Kind: k, Severity: 1, Lat: 44.4, Lng: 26.1}
		if err := repo.Insert(context.Background(), h); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	kinds, err := repo.Kinds(context.Background())
	if err != nil {
		t.Fatalf("Kinds: %v", err)
	}
	if len(kinds) != 2 {
		t.Fatalf("expected 2 distinct kinds, got %d", len(kinds))
	}
	if kinds[0] != domain.KindAccident || kinds[1] != domain.KindPolice {
		t.Fatalf("expected sorted kinds, got %v", kinds)
	}
}

func TestRouteRepo_SaveRoutePlan_RoundTrip(t *testing.T) {

	truncateAll(t)

	hazards := NewHazardRepo(testPool, testLogger())
	routes := NewRouteRepo(testPool, testLogger())

	h1 := &domain.Hazard{Kind: domain.KindAccident, Severity: 5, Lat: 44.4268, Lng: 26.1025}
	h2 := &domain.Hazard{Kind: domain.KindPolice, Severity: 2, Lat: 44.4300, Lng: 26.1100}
	if err := hazards.Insert(context.Background(), h1); err != nil {
		t.Fatalf("Insert h1: %v", err)
	}
	if err := hazards.Insert(context.Background(), h2); err != nil {
		t.Fatalf("Insert h2: %v", err)
	}

	plan := &domain.RoutePlan{
		StartLat:   44.4260,
		StartLng:   26.1020,
		EndLat:     44.4276,
		EndLng:     26.1030,
		Mode:       domain.ModeCar,
		AvoidKinds: []string{"accident", "road_closure"},
	}
	route := &domain.ScoredRoute{
		Paths: []domain.Path{{{26.1020, 44.4260}, {26.1030, 44.4276}}},
		Score: 64,
		Impacts: []domain.ImpactLink{
			{HazardID: h2.ID, ImpactScore: 8},
			{HazardID: h1.ID, ImpactScore: 28},
		},
	}

	if err := routes.SaveRoutePlan(context.Background(), plan, route); err != nil {
		t.Fatalf("SaveRoutePlan: %v", err)
	}
	if plan.ID == uuid.Nil || route.ID == uuid.Nil {
		t.Fatalf("expected IDs set")
	}
	if route.RequestID != plan.ID {
		t.Fatalf("expected route bound to request")
	}

	got, err := routes.GetRoute(context.Background(), route.ID)
	if err != nil {
		t.Fatalf("GetRoute: %v", err)
	}
	if got.Score != 64 {
		t.Fatalf("score mismatch got=%d", got.Score)
	}
	if len(got.Paths) != 1 || len(got.Paths[0]) != 2 {
		t.Fatalf("paths mismatch: %+v", got.Paths)
	}
	if got.Paths[0][0][0] != 26.1020 || got.Paths[0][0][1] != 44.4260 {
		t.Fatalf("waypoint mismatch: %+v", got.Paths[0][0])
	}
	if len(got.Impacts) != 2 {
		t.Fatalf("expected 2 links, got %d", len(got.Impacts))
	}
	if got.Impacts[0].ImpactScore < got.Impacts[1].ImpactScore {
		t.Fatalf("expected links ordered by impact DESC")
	}
	if got.Impacts[0].HazardID != h1.ID {
		t.Fatalf("expected heaviest link first")
	}
}

func TestRouteRepo_SaveRoutePlan_RollsBackOnBadLink(t *testing.T) {

	truncateAll(t)

	routes := NewRouteRepo(testPool, testLogger())

	plan := &domain.RoutePlan{
		StartLat: 44.0,
		StartLng: 26.0,
		EndLat:   44.1,
		EndLng:   26.1,
		Mode:     domain.ModeCar,
	}
	route := &domain.ScoredRoute{
		Paths: []domain.Path{{{26.0, 44.0}, {26.1, 44.1}}},
		Score: 90,
		Impacts: []domain.ImpactLink{
			{HazardID: uuid.New(), ImpactScore: 10},
		},
	}

	err := routes.SaveRoutePlan(context.Background(), plan, route)
	if err == nil {
		t.Fatalf("expected foreign key failure")
	}

	var requests int
	if err := testPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM route_requests`).Scan(&requests); err != nil {
		t.Fatalf("count requests: %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected rollback, found %d request rows", requests)
	}

	_, err = routes.GetRoute(context.Background(), route.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after rollback, got: %v", err)
	}
}

func TestStatsRepo_HazardStats(t *testing.T) {

	truncateAll(t)

	hazards := NewHazardRepo(testPool, testLogger())
	stats := NewStats(testPool, testLogger())

	empty, err := stats.HazardStats(context.Background())
	if err != nil {
		t.Fatalf("HazardStats: %v", err)
	}
	if empty.Total != 0 {
		t.Fatalf("expected empty totals, got %d", empty.Total)
	}
	if len(empty.ByKind) != len(domain.KnownKinds()) {
		t.Fatalf("expected all kinds zero-filled, got %d", len(empty.ByKind))
	}
	if len(empty.BySeverity) != 5 {
		t.Fatalf("expected severities 1..5 zero-filled, got %d", len(empty.BySeverity))
	}

	seed := []struct {
		kind     domain.HazardKind
		severity int
		status   domain.HazardStatus
	}{
		{domain.KindAccident, 5, domain.HazardActive},
		{domain.KindAccident, 3, domain.HazardActive},
		{domain.KindPolice, 3, domain.HazardActive},
		{domain.KindAccident, 5, domain.HazardResolved},
	}
	for _, s := range seed {
		h := &domain.Hazard{Kind: s.kind, Severity: s.severity, Lat: 44.4, Lng: 26.1, Status: s.status}
		if err := hazards.Insert(context.Background(), h); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	got, err := stats.HazardStats(context.Background())
	if err != nil {
		t.Fatalf("HazardStats: %v", err)
	}
	if got.Total != 4 || got.Active != 3 || got.Resolved != 1 {
		t.Fatalf("totals mismatch: %+v", got)
	}
	if got.ByKind[domain.KindAccident] != 2 {
		t.Fatalf("expected 2 active accidents, got %d", got.ByKind[domain.KindAccident])
	}
	if got.ByKind[domain.KindPolice] != 1 {
		t.Fatalf("expected 1 active police, got %d", got.ByKind[domain.KindPolice])
	}
	if got.ByKind[domain.KindConstruction] != 0 {
		t.Fatalf("expected zero-filled construction, got %d", got.ByKind[domain.KindConstruction])
	}
	if got.BySeverity["3"] != 2 || got.BySeverity["5"] != 1 {
		t.Fatalf("severity breakdown mismatch: %+v", got.BySeverity)
	}
}
