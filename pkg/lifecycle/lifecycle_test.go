package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/shows-api/pkg/lifecycle"
)

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	if lc.Context() == nil {
		t.Fatal("Context() returned nil")
	}
	if lc.Ready() {
		t.Error("Ready() = true, want false for new coordinator")
	}
}

func TestCoordinator_OnStartup_Multiple(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
	if !lc.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_ReadinessChecker(t *testing.T) {
	lc := lifecycle.New()

	var checker lifecycle.ReadinessChecker = lc
	if checker.Ready() {
		t.Error("Ready() = true, want false")
	}

	lc.WaitForStartup()

	if !checker.Ready() {
		t.Error("Ready() = false, want true")
	}
}

func TestCoordinator_Shutdown_RunsHooks(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	if count.Load() != 3 {
		t.Errorf("count = %d, want 3", count.Load())
	}
}

func TestCoordinator_Shutdown_CancelsContext(t *testing.T) {
	lc := lifecycle.New()
	ctx := lc.Context()

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

func TestCoordinator_Shutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	if err := lc.Shutdown(50 * time.Millisecond); err == nil {
		t.Error("Shutdown() should return timeout error")
	}
}
