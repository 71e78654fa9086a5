package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/shift"
)

// ShiftJobs advances shift lifecycles on the clock: scheduled shifts whose
// start has passed become in_progress, in_progress shifts whose end has
// passed become completed.
type ShiftJobs struct {
	shiftRepo shift.Repository
}

func NewShiftJobs(shiftRepo shift.Repository) *ShiftJobs {
	return &ShiftJobs{shiftRepo: shiftRepo}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("advance_shift_statuses", 5*time.Minute, j.AdvanceShiftStatuses)
}

func (j *ShiftJobs) AdvanceShiftStatuses(ctx context.Context) error {
	now := time.Now()

	started, err := j.shiftRepo.ListStartedBefore(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list started shifts: %w", err)
	}
	for _, s := range started {
		if !s.Status.CanTransitionTo(shift.StatusInProgress) {
			continue
		}
		if err := j.shiftRepo.UpdateStatus(ctx, s.ID, shift.StatusInProgress); err != nil {
			slog.Error("Cron: Failed to start shift", "shift_id", s.ID, "error", err)
		}
	}

	ended, err := j.shiftRepo.ListEndedBefore(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list ended shifts: %w", err)
	}
	for _, s := range ended {
		if !s.Status.CanTransitionTo(shift.StatusCompleted) {
			continue
		}
		if err := j.shiftRepo.UpdateStatus(ctx, s.ID, shift.StatusCompleted); err != nil {
			slog.Error("Cron: Failed to complete shift", "shift_id", s.ID, "error", err)
		}
	}

	if len(started) > 0 || len(ended) > 0 {
		slog.Info("Cron: Shift statuses advanced", "started", len(started), "completed", len(ended))
	}
	return nil
}
