package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/andreisalomia/TravelSafe/internal/workers"
)

type stubExpirer struct {
	mu     sync.Mutex
	calls  int
	ret    int64
	err    error
	ticked chan struct{}
}

func (s *stubExpirer) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	select {
	case s.ticked <- struct{}{}:
	default:
	}
	return s.ret, s.err
}

func (s *stubExpirer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (s *stubInvalidator) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return nil
}

func (s *stubInvalidator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitTick(t *testing.T, ticked <-chan struct{}) {
	t.Helper()
	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatalf("sweeper never ticked")
	}
}

func TestExpirySweeper_SweepsAndInvalidates(t *testing.T) {
	t.Parallel()

	repo := &stubExpirer{ret: 2, ticked: make(chan struct{}, 1)}
	cache := &stubInvalidator{}

	sweeper := workers.NewExpirySweeper(repo, cache, testLogger(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	waitTick(t, repo.ticked)
	waitTick(t, repo.ticked)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sweeper did not stop on cancel")
	}

	if repo.callCount() < 2 {
		t.Fatalf("expected at least 2 sweeps, got %d", repo.callCount())
	}
	if cache.callCount() == 0 {
		t.Fatalf("expected snapshot invalidation after expiring hazards")
	}
}

func TestExpirySweeper_NothingDueSkipsInvalidate(t *testing.T) {
	t.Parallel()

	repo := &stubExpirer{ret: 0, ticked: make(chan struct{}, 1)}
	cache := &stubInvalidator{}

	sweeper := workers.NewExpirySweeper(repo, cache, testLogger(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	waitTick(t, repo.ticked)
	waitTick(t, repo.ticked)
	cancel()
	<-done

	if cache.callCount() != 0 {
		t.Fatalf("expected no invalidation, got %d", cache.callCount())
	}
}

func TestExpirySweeper_KeepsRunningAfterRepoError(t *testing.T) {
	t.Parallel()

	repo := &stubExpirer{ret: 0, err: errors.New("db down"), ticked: make(chan struct{}, 1)}
	cache := &stubInvalidator{}

	sweeper := workers.NewExpirySweeper(repo, cache, testLogger(), 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	waitTick(t, repo.ticked)
	waitTick(t, repo.ticked)
	cancel()
	<-done

	if repo.callCount() < 2 {
		t.Fatalf("expected sweeps to continue after error, got %d", repo.callCount())
	}
	if cache.callCount() != 0 {
		t.Fatalf("expected no invalidation on errors, got %d", cache.callCount())
	}
}

func TestExpirySweeper_StopsBeforeFirstTick(t *testing.T) {
	t.Parallel()

	repo := &stubExpirer{ticked: make(chan struct{}, 1)}

	sweeper := workers.NewExpirySweeper(repo, nil, testLogger(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sweeper did not stop on cancel")
	}
	if repo.callCount() != 0 {
		t.Fatalf("expected no sweeps, got %d", repo.callCount())
	}
}
