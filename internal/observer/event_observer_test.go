package observer

import (
	"context"
	"sync"
	"testing"
	"time"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []AnalysisEvent
}

func (r *recordingObserver) Name() string { return "recording" }

func (r *recordingObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func TestSubjectNotifiesAllObservers(t *testing.T) {
	subject := NewSubject()
	first := &recordingObserver{}
	second := &recordingObserver{}
	subject.Subscribe(first)
	subject.Subscribe(second)

	subject.Notify(context.Background(), AnalysisEvent{
		EventType: AnalysisStarted,
		RequestID: "req-1",
	})

	for i, obs := range []*recordingObserver{first, second} {
		if len(obs.events) != 1 {
			t.Fatalf("Observer %d expected 1 event, got %d", i, len(obs.events))
		}
		if obs.events[0].RequestID != "req-1" {
			t.Errorf("Observer %d got wrong request ID: %s", i, obs.events[0].RequestID)
		}
	}
}

func TestMetricsObserverCounters(t *testing.T) {
	metrics := NewMetricsObserver()
	ctx := context.Background()

	metrics.OnEvent(ctx, AnalysisEvent{EventType: AnalysisStarted})
	metrics.OnEvent(ctx, AnalysisEvent{EventType: AnalysisCompleted, ProcessingTime: 100 * time.Millisecond})
	metrics.OnEvent(ctx, AnalysisEvent{EventType: AnalysisCompleted, ProcessingTime: 300 * time.Millisecond})
	metrics.OnEvent(ctx, AnalysisEvent{EventType: AnalysisFailed})

	snapshot := metrics.Snapshot()
	if snapshot["analyses_completed"] != int64(2) {
		t.Errorf("Expected 2 completed, got %v", snapshot["analyses_completed"])
	}
	if snapshot["analyses_failed"] != int64(1) {
		t.Errorf("Expected 1 failed, got %v", snapshot["analyses_failed"])
	}
	if snapshot["avg_processing_time_ms"] != int64(200) {
		t.Errorf("Expected 200ms average, got %v", snapshot["avg_processing_time_ms"])
	}
}

func TestMetricsObserverEmptySnapshot(t *testing.T) {
	snapshot := NewMetricsObserver().Snapshot()
	if snapshot["avg_processing_time_ms"] != int64(0) {
		t.Errorf("Expected 0ms average with no completions, got %v", snapshot["avg_processing_time_ms"])
	}
}

func TestSubjectConcurrentNotify(t *testing.T) {
	subject := NewSubject()
	metrics := NewMetricsObserver()
	subject.Subscribe(metrics)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subject.Notify(context.Background(), AnalysisEvent{EventType: AnalysisCompleted})
		}()
	}
	wg.Wait()

	if got := metrics.Snapshot()["analyses_completed"]; got != int64(20) {
		t.Errorf("Expected 20 completed, got %v", got)
	}
}
