package status

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Get())
	}
	f.Set(1.25)
	if f.Get() != 1.25 {
		t.Errorf("Expected 1.25, got %f", f.Get())
	}
}

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Counters.Get(Hits)
	b := r.Counters.Get(Hits)
	if a != b {
		t.Error("Expected the same pointer for the same key")
	}
	if r.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.TotalCount())
	}
}

func TestMetricMapConcurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Counters.Get(Frames).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Counters.Get(Frames).Load(); got != 800 {
		t.Errorf("Expected 800, got %d", got)
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get(Points)
	r.Counters.Get(Hits)
	r.Counters.Get(Frames)

	var keys []string
	r.Counters.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{Frames, Hits, Points}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, keys)
	}
}

func TestRegistryLogValue(t *testing.T) {
	r := NewRegistry()
	r.Counters.Get(Hits).Add(3)
	r.Gauges.Get(LastHitPitch).Set(1.5)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("session", "stats", r)

	out := buf.String()
	for _, want := range []string{"stats.hits=3", "stats.last_hit_pitch=1.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}
