package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"propvault/internal/domain"
	models "propvault/internal/domain/models/report"
)

// State is the orchestrator's aggregate export state.
type State string

const (
	StateIdle      State = "idle"
	StateExporting State = "exporting"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

const (
	// progressStep is how much the feedback ticker advances per tick.
	progressStep = 10
	// progressTick is the wall-clock tick interval.
	progressTick = 200 * time.Millisecond
)

// Orchestrator drives one multi-format export at a time. Format tasks are
// dispatched concurrently and awaited jointly; progress is a timer-driven
// 0-100 feedback value, not a byte count. On any task failure the whole
// batch is reported failed and progress resets to 0.
type Orchestrator struct {
	sink   Sink
	clock  Clock
	logger *slog.Logger

	mu       sync.Mutex
	state    State
	progress int
}

func NewOrchestrator(sink Sink, clock Clock, logger *slog.Logger) *Orchestrator {
	if clock == nil {
		clock = SystemClock()
	}
	return &Orchestrator{
		sink:   sink,
		clock:  clock,
		logger: logger,
		state:  StateIdle,
	}
}

// State reports the current aggregate state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Progress reports the current feedback percentage, 0-100.
func (o *Orchestrator) Progress() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.progress
}

// Summary reports what an export run delivered.
type Summary struct {
	Delivered []string
}

type task struct {
	name  string
	build func() (Artifact, error)
}

// ExportAll serializes the fact set into every artifact format: three
// delimited-text exports, the workbook sheets, and the plain-text report.
// It blocks until the run reaches a terminal state. A second request while
// one is running is rejected; after Completed or Failed the next request
// starts a fresh run.
func (o *Orchestrator) ExportAll(ctx context.Context, fs models.FactSet) (*Summary, error) {
	o.mu.Lock()
	if o.state == StateExporting {
		o.mu.Unlock()
		return nil, &domain.InvalidStateError{Message: "export already in progress"}
	}
	o.state = StateExporting
	o.progress = 0
	o.mu.Unlock()

	now := o.clock.Now()
	tasks := []task{
		{"lead sources", func() (Artifact, error) { return LeadSourcesArtifact(fs, now), nil }},
		{"property performance", func() (Artifact, error) { return PropertyPerformanceArtifact(fs, now), nil }},
		{"commissions", func() (Artifact, error) { return CommissionArtifact(fs, now), nil }},
		{"text report", func() (Artifact, error) { return ReportArtifact(fs, now) }},
	}
	for _, sheet := range WorkbookSheets(fs) {
		s := sheet
		tasks = append(tasks, task{
			name:  fmt.Sprintf("sheet %s", s.Name),
			build: func() (Artifact, error) { return SheetArtifact(s, now), nil },
		})
	}

	done := make(chan struct{})
	go o.tickProgress(done)

	var deliveredMu sync.Mutex
	var delivered []string

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			artifact, err := t.build()
			if err != nil {
				return fmt.Errorf("%s: %w", t.name, err)
			}
			if err := o.sink.Store(gctx, artifact); err != nil {
				return fmt.Errorf("%s: %w", t.name, err)
			}
			deliveredMu.Lock()
			delivered = append(delivered, artifact.Name)
			deliveredMu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	close(done)
	sort.Strings(delivered)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.state = StateFailed
		o.progress = 0
		o.logger.Error("export failed", "error", err, "delivered", len(delivered))
		return &Summary{Delivered: delivered}, &domain.ExportError{
			Message:   "analytics export failed",
			Delivered: delivered,
			Err:       err,
		}
	}

	o.progress = 100
	o.state = StateCompleted
	o.logger.Info("export completed", "artifacts", len(delivered))
	return &Summary{Delivered: delivered}, nil
}

// tickProgress advances the feedback percentage while the run is exporting.
// It stops on the done signal or as soon as the run leaves the exporting
// state, so progress never moves after a terminal state is set.
func (o *Orchestrator) tickProgress(done <-chan struct{}) {
	ch, stop := o.clock.Tick(progressTick)
	defer stop()
	for {
		select {
		case <-done:
			return
		case <-ch:
			o.mu.Lock()
			if o.state != StateExporting {
				o.mu.Unlock()
				return
			}
			if o.progress < 100 {
				o.progress += progressStep
				if o.progress > 100 {
					o.progress = 100
				}
			}
			o.mu.Unlock()
		}
	}
}
