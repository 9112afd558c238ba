package generator

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
	"goa.design/clue/log"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// Severity classifies a Diagnostic (spec §6).
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is one generation-time observation surfaced to the operator
// (spec §6: "Diagnostic{Severity, Code, ShapeID, Message}").
type Diagnostic struct {
	Severity Severity
	Code     string
	ShapeID  model.ShapeID
	Message  string
}

// DiagnosticSink collects Diagnostics for a single generation run. Each
// Emit is logged through clue/log and counted on an otel counter; repeats of the same code are throttled so one systemic modeling problem
// (the same warning on a thousand members) doesn't drown out everything
// else the operator needs to see.
type DiagnosticSink struct {
	mu       sync.Mutex
	runID    string
	all      []Diagnostic
	limiters map[string]*rate.Limiter
	tracer   trace.Tracer
	meter    metric.Meter
}

// NewDiagnosticSink returns a sink tagged with a fresh run-correlation id.
func NewDiagnosticSink() *DiagnosticSink {
	return &DiagnosticSink{
		runID:    uuid.NewString(),
		limiters: make(map[string]*rate.Limiter),
		tracer:   otel.Tracer("smithy-ruby/generator"),
		meter:    otel.Meter("smithy-ruby/generator"),
	}
}

// RunID is the correlation id this sink's diagnostics and trace spans share.
func (s *DiagnosticSink) RunID() string { return s.runID }

// StartPhase opens an otel span for a named generation phase and returns
// the derived context plus a function to end the span (spec §6: phases
// are traced so a slow run can be attributed to model-walk vs. codegen
// vs. file-write).
func (s *DiagnosticSink) StartPhase(ctx context.Context, phase string) (context.Context, func()) {
	ctx, span := s.tracer.Start(ctx, phase, trace.WithAttributes(attribute.String("run_id", s.runID)))
	return ctx, func() { span.End() }
}

// Emit records d, logs it, and throttles repeats of the same code to at
// most one log line per second after the first.
func (s *DiagnosticSink) Emit(ctx context.Context, d Diagnostic) {
	s.mu.Lock()
	s.all = append(s.all, d)
	limiter, ok := s.limiters[d.Code]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Second), 1)
		s.limiters[d.Code] = limiter
	}
	allowed := limiter.Allow()
	s.mu.Unlock()

	s.incDiagnosticCounter(ctx, d)

	if !allowed {
		return
	}
	fielders := []log.Fielder{
		log.KV{K: "run_id", V: s.runID},
		log.KV{K: "code", V: d.Code},
		log.KV{K: "shape", V: d.ShapeID.String()},
		log.KV{K: "msg", V: d.Message},
	}
	if d.Severity == SeverityError {
		log.Error(ctx, nil, fielders...)
		return
	}
	log.Print(ctx, fielders...)
}

// incDiagnosticCounter increments a per-severity OTEL counter, independent
// of log throttling, so an operator's dashboard reflects the true volume
// even when the log stream doesn't.
func (s *DiagnosticSink) incDiagnosticCounter(ctx context.Context, d Diagnostic) {
	counter, err := s.meter.Int64Counter("smithy_ruby_diagnostics_total")
	if err != nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", string(d.Severity)),
		attribute.String("code", d.Code),
	))
}

// All returns every diagnostic emitted this run, including throttled ones.
func (s *DiagnosticSink) All() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Diagnostic(nil), s.all...)
}

// HasErrors reports whether any diagnostic emitted this run was an error
// (spec §6: drives the CLI's exit code).
func (s *DiagnosticSink) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.all {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
