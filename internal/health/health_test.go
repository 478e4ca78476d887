package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry()
	healthy, statuses := r.CheckAll(context.Background())
	if !healthy {
		t.Fatal("empty registry should be healthy")
	}
	if len(statuses) != 0 {
		t.Fatalf("expected 0 statuses, got %d", len(statuses))
	}
}

func TestRegistryAllHealthy(t *testing.T) {
	r := NewRegistry()
	r.Register("storage", func(_ context.Context) Status {
		return Status{Name: "storage", Healthy: true}
	})
	r.Register("catalog", func(_ context.Context) Status {
		return Status{Name: "catalog", Healthy: true, Detail: "ok"}
	})

	healthy, statuses := r.CheckAll(context.Background())
	if !healthy {
		t.Fatal("all-healthy registry should report healthy")
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
}

func TestRegistryOneUnhealthy(t *testing.T) {
	r := NewRegistry()
	r.Register("storage", func(_ context.Context) Status {
		return Status{Name: "storage", Healthy: true}
	})
	r.Register("catalog", func(_ context.Context) Status {
		return Status{Name: "catalog", Healthy: false, Detail: "connection refused"}
	})

	healthy, statuses := r.CheckAll(context.Background())
	if healthy {
		t.Fatal("registry with unhealthy checker should report unhealthy")
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[1].Detail != "connection refused" {
		t.Fatalf("expected detail 'connection refused', got %q", statuses[1].Detail)
	}
}

func TestRegistryConcurrentRegisterAndCheck(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	// Register concurrently
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("checker", func(_ context.Context) Status {
				return Status{Name: "checker", Healthy: true}
			})
		}(i)
	}

	// Check concurrently
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.CheckAll(context.Background())
		}()
	}

	wg.Wait()
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPingChecker(t *testing.T) {
	ok := PingChecker("storage", pingFunc(func(context.Context) error { return nil }), time.Second)
	if st := ok(context.Background()); !st.Healthy || st.Name != "storage" {
		t.Fatalf("expected healthy storage, got %+v", st)
	}

	down := PingChecker("storage", pingFunc(func(context.Context) error {
		return errors.New("dial tcp: connection refused")
	}), time.Second)
	st := down(context.Background())
	if st.Healthy {
		t.Fatal("expected unhealthy status")
	}
	if st.Detail != "dial tcp: connection refused" {
		t.Fatalf("unexpected detail %q", st.Detail)
	}
}

func TestPingChecker_Timeout(t *testing.T) {
	slow := PingChecker("storage", pingFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), 10*time.Millisecond)

	st := slow(context.Background())
	if st.Healthy {
		t.Fatal("expected timeout to report unhealthy")
	}
}

func TestStatic(t *testing.T) {
	r := NewRegistry()
	r.Register("catalog", Static("catalog", true, "3 scenarios"))
	healthy, statuses := r.CheckAll(context.Background())
	if !healthy || statuses[0].Detail != "3 scenarios" {
		t.Fatalf("unexpected result: %v %+v", healthy, statuses)
	}
}

func TestCheckAll_RunsConcurrentlyInOrder(t *testing.T) {
	r := NewRegistry()
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	for _, name := range []string{"storage", "catalog"} {
		r.Register(name, func(context.Context) Status {
			started.Done()
			<-release
			return Status{Name: name, Healthy: true}
		})
	}

	// Both checkers must be running at once before either may finish.
	go func() {
		started.Wait()
		close(release)
	}()

	done := make(chan []Status, 1)
	go func() {
		_, statuses := r.CheckAll(context.Background())
		done <- statuses
	}()

	select {
	case statuses := <-done:
		if statuses[0].Name != "storage" || statuses[1].Name != "catalog" {
			t.Fatalf("statuses out of order: %+v", statuses)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("checkers did not run concurrently")
	}
}

func TestCheckAll_DefaultsName(t *testing.T) {
	r := NewRegistry()
	r.Register("storage", func(context.Context) Status { return Status{Healthy: true} })

	_, statuses := r.CheckAll(context.Background())
	if statuses[0].Name != "storage" {
		t.Fatalf("expected registered name, got %q", statuses[0].Name)
	}
}
