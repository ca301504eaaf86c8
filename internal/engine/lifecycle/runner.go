// Package lifecycle implements the linear stage runner that drives a recipe
// from its descriptor to its package metadata.
package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
)

// StepFunc performs one stage. It reports cached when its result was served
// from the lockfile instead of being computed.
type StepFunc func(ctx context.Context) (cached bool, err error)

// Step binds a stage to the function that performs it.
type Step struct {
	Stage domain.Stage
	Run   StepFunc
}

// StageReport is the final status of a stage after a run.
type StageReport struct {
	Stage  domain.Stage
	Status domain.StageStatus
}

// Runner executes steps one after another. A failing step logs its full error
// detail, is marked failed and its error is returned unchanged. Every step
// after it is skipped.
type Runner struct {
	logger    ports.Logger
	telemetry ports.Telemetry

	mu     sync.RWMutex
	order  []domain.Stage
	status map[domain.Stage]domain.StageStatus
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, telemetry ports.Telemetry) *Runner {
	return &Runner{
		logger:    logger,
		telemetry: telemetry,
		status:    make(map[domain.Stage]domain.StageStatus),
	}
}

// Run executes steps in order and stops at the first failure.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	r.initStatuses(steps)

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			r.skipFrom(steps[i:])
			return err
		}

		if err := r.runStep(ctx, step); err != nil {
			r.skipFrom(steps[i+1:])
			return err
		}
	}

	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	r.updateStatus(step.Stage, domain.StageStatusRunning)

	stepCtx, vertex := r.telemetry.Record(ctx, string(step.Stage))
	cached, err := step.Run(stepCtx)
	if err != nil {
		r.logger.Error(err)
		vertex.Log(domain.LogLevelError, fmt.Sprintf("%+v", err))
		vertex.Complete(err)
		r.updateStatus(step.Stage, domain.StageStatusFailed)
		return err
	}

	if cached {
		vertex.Cached()
		r.updateStatus(step.Stage, domain.StageStatusCached)
	} else {
		r.updateStatus(step.Stage, domain.StageStatusCompleted)
	}
	vertex.Complete(nil)

	return nil
}

// initStatuses resets the runner and marks every step pending.
func (r *Runner) initStatuses(steps []Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]domain.Stage, 0, len(steps))
	r.status = make(map[domain.Stage]domain.StageStatus, len(steps))
	for _, step := range steps {
		r.order = append(r.order, step.Stage)
		r.status[step.Stage] = domain.StageStatusPending
	}
}

// skipFrom marks steps that have not finished as skipped.
func (r *Runner) skipFrom(steps []Step) {
	for _, step := range steps {
		if !r.Status(step.Stage).IsTerminal() {
			r.updateStatus(step.Stage, domain.StageStatusSkipped)
		}
	}
}

func (r *Runner) updateStatus(stage domain.Stage, status domain.StageStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[stage] = status
}

// Status returns the status of stage in the last run, or pending if unknown.
func (r *Runner) Status(stage domain.Stage) domain.StageStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.status[stage]; ok {
		return s
	}
	return domain.StageStatusPending
}

// Report returns the status of every stage of the last run in execution order.
func (r *Runner) Report() []StageReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := make([]StageReport, 0, len(r.order))
	for _, stage := range r.order {
		report = append(report, StageReport{Stage: stage, Status: r.status[stage]})
	}
	return report
}
