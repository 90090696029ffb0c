package observer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// AnalysisEvent represents one step in a coin analysis lifecycle.
type AnalysisEvent struct {
	EventType      EventType     `json:"event_type"`
	Timestamp      time.Time     `json:"timestamp"`
	RequestID      string        `json:"request_id"`
	Filename       string        `json:"filename"`
	Provider       string        `json:"provider"`
	ProcessingTime time.Duration `json:"processing_time"`
	Success        bool          `json:"success"`
	ErrorMessage   string        `json:"error_message,omitempty"`
}

// EventType represents the type of analysis event
type EventType string

const (
	// AnalysisStarted when an upload has been accepted for analysis
	AnalysisStarted EventType = "analysis_started"
	// AnalysisCompleted when a report was produced
	AnalysisCompleted EventType = "analysis_completed"
	// AnalysisFailed when the request failed before a report existed
	AnalysisFailed EventType = "analysis_failed"
)

// Observer defines the interface for event observers
type Observer interface {
	OnEvent(ctx context.Context, event AnalysisEvent)
	Name() string
}

// Subject defines the interface for event publishers
type Subject interface {
	Subscribe(observer Observer)
	Notify(ctx context.Context, event AnalysisEvent)
}

type analysisSubject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewSubject creates an empty event publisher.
func NewSubject() Subject {
	return &analysisSubject{}
}

func (s *analysisSubject) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *analysisSubject) Notify(ctx context.Context, event AnalysisEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.OnEvent(ctx, event)
	}
}

// LoggingObserver logs analysis events
type LoggingObserver struct {
	logger *logrus.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *logrus.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

func (o *LoggingObserver) Name() string { return "logging" }

// OnEvent handles analysis events by logging them
func (o *LoggingObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"request_id": event.RequestID,
		"filename":   event.Filename,
		"provider":   event.Provider,
	}
	if event.ProcessingTime > 0 {
		fields["processing_time_ms"] = event.ProcessingTime.Milliseconds()
	}
	if event.ErrorMessage != "" {
		fields["error"] = event.ErrorMessage
	}

	switch event.EventType {
	case AnalysisStarted:
		o.logger.WithFields(fields).Info("Coin analysis started")
	case AnalysisCompleted:
		o.logger.WithFields(fields).Info("Coin analysis completed")
	case AnalysisFailed:
		o.logger.WithFields(fields).Error("Coin analysis failed")
	default:
		o.logger.WithFields(fields).Debug("Coin analysis event")
	}
}

// MetricsObserver keeps in-process request counters for the debug surface.
type MetricsObserver struct {
	mu            sync.Mutex
	completed     int64
	failed        int64
	totalDuration time.Duration
}

// NewMetricsObserver creates a new metrics observer
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (o *MetricsObserver) Name() string { return "metrics" }

func (o *MetricsObserver) OnEvent(ctx context.Context, event AnalysisEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch event.EventType {
	case AnalysisCompleted:
		o.completed++
		o.totalDuration += event.ProcessingTime
	case AnalysisFailed:
		o.failed++
	}
}

// Snapshot returns the current counters.
func (o *MetricsObserver) Snapshot() map[string]interface{} {
	o.mu.Lock()
	defer o.mu.Unlock()

	var avgMs int64
	if o.completed > 0 {
		avgMs = (o.totalDuration / time.Duration(o.completed)).Milliseconds()
	}
	return map[string]interface{}{
		"analyses_completed":     o.completed,
		"analyses_failed":        o.failed,
		"avg_processing_time_ms": avgMs,
	}
}
