package progression

import (
	"errors"
	"testing"
	"time"

	"garagejobs/internal/domain/entities"
)

func step(id string, skippable bool) entities.Step {
	return entities.Step{ID: id, Name: id, IsSkippable: skippable, Status: entities.StepStatusPending}
}

// testJob builds a job with stages [claim(2), repair(3, skippable except r-3), billing(1)].
func testJob() *entities.Job {
	return &entities.Job{
		ID:                "job-1",
		CurrentStageIndex: 0,
		Stages: []entities.Stage{
			{
				Code:       entities.StageClaim,
				OrderIndex: 0,
				Steps:      []entities.Step{step("c-1", false), step("c-2", false)},
			},
			{
				Code:       entities.StageRepair,
				OrderIndex: 1,
				IsLocked:   true,
				Steps:      []entities.Step{step("r-1", true), step("r-2", true), step("r-3", false)},
			},
			{
				Code:       entities.StageBilling,
				OrderIndex: 2,
				IsLocked:   true,
				Steps:      []entities.Step{step("b-1", false)},
			},
		},
	}
}

func fixedEngine() *Engine {
	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	return NewEngineWithClock(func() time.Time { return at })
}

func TestEngine_UpdateStep_Validation(t *testing.T) {
	t.Run("employee required for completed", func(t *testing.T) {
		job := testJob()
		err := fixedEngine().UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "")
		if !errors.Is(err, ErrEmployeeRequired) {
			t.Fatalf("expected ErrEmployeeRequired, got %v", err)
		}
		if got := job.Stages[0].Steps[0].Status; got != entities.StepStatusPending {
			t.Fatalf("step must stay pending after rejection, got %s", got)
		}
	})

	t.Run("employee required for in_progress", func(t *testing.T) {
		job := testJob()
		err := fixedEngine().UpdateStep(job, 0, "c-1", entities.StepStatusInProgress, "")
		if !errors.Is(err, ErrEmployeeRequired) {
			t.Fatalf("expected ErrEmployeeRequired, got %v", err)
		}
	})

	t.Run("skip rejected on non-skippable step", func(t *testing.T) {
		job := testJob()
		err := fixedEngine().UpdateStep(job, 0, "c-1", entities.StepStatusSkipped, "")
		if !errors.Is(err, ErrStepNotSkippable) {
			t.Fatalf("expected ErrStepNotSkippable, got %v", err)
		}
	})

	t.Run("locked stage rejects mutation", func(t *testing.T) {
		job := testJob()
		err := fixedEngine().UpdateStep(job, 1, "r-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrStageLocked) {
			t.Fatalf("expected ErrStageLocked, got %v", err)
		}
		if job.Stages[1].Steps[0].Status != entities.StepStatusPending {
			t.Fatalf("locked stage must be untouched")
		}
	})

	t.Run("completed stage rejects mutation with distinct error", func(t *testing.T) {
		job := testJob()
		job.Stages[0].IsCompleted = true
		err := fixedEngine().UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrStageCompleted) {
			t.Fatalf("expected ErrStageCompleted, got %v", err)
		}
	})

	t.Run("finished job rejects mutation", func(t *testing.T) {
		job := testJob()
		job.IsFinished = true
		err := fixedEngine().UpdateStep(job, 2, "b-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrJobFinished) {
			t.Fatalf("expected ErrJobFinished, got %v", err)
		}
	})

	t.Run("unknown stage index", func(t *testing.T) {
		job := testJob()
		if err := fixedEngine().UpdateStep(job, 9, "c-1", entities.StepStatusCompleted, "emp-1"); !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})

	t.Run("unknown step id", func(t *testing.T) {
		job := testJob()
		if err := fixedEngine().UpdateStep(job, 0, "nope", entities.StepStatusCompleted, "emp-1"); !errors.Is(err, ErrStepNotFound) {
			t.Fatalf("expected ErrStepNotFound, got %v", err)
		}
	})

	t.Run("terminal step only accepts a revert", func(t *testing.T) {
		e := fixedEngine()
		job := testJob()
		if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("complete: %v", err)
		}

		// Overwriting under a different employee must go through pending.
		err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-2")
		if !errors.Is(err, ErrStepAlreadyDone) {
			t.Fatalf("expected ErrStepAlreadyDone, got %v", err)
		}
		if got := job.Stages[0].Steps[0].EmployeeID; got != "emp-1" {
			t.Fatalf("rejected overwrite must not touch the step, got employee %s", got)
		}

		if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusPending, ""); err != nil {
			t.Fatalf("revert: %v", err)
		}
		if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-2"); err != nil {
			t.Fatalf("re-complete after revert: %v", err)
		}
		if got := job.Stages[0].Steps[0].EmployeeID; got != "emp-2" {
			t.Fatalf("expected emp-2 after revert and re-complete, got %s", got)
		}
	})

	t.Run("skip rejected on completed step", func(t *testing.T) {
		e := fixedEngine()
		job := testJob()
		for _, id := range []string{"c-1", "c-2"} {
			if err := e.UpdateStep(job, 0, id, entities.StepStatusCompleted, "emp-1"); err != nil {
				t.Fatalf("claim step %s: %v", id, err)
			}
		}
		if err := e.UpdateStep(job, 1, "r-1", entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("complete r-1: %v", err)
		}

		err := e.UpdateStep(job, 1, "r-1", entities.StepStatusSkipped, "")
		if !errors.Is(err, ErrStepAlreadyDone) {
			t.Fatalf("expected ErrStepAlreadyDone, got %v", err)
		}
		if got := job.Stages[1].Steps[0].Status; got != entities.StepStatusCompleted {
			t.Fatalf("expected step to stay completed, got %s", got)
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		job := testJob()
		if err := fixedEngine().UpdateStep(job, 0, "c-1", entities.StepStatus("done"), "emp-1"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestEngine_UpdateStep_CompletionGate(t *testing.T) {
	e := fixedEngine()
	job := testJob()

	if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-somchai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Stages[0].IsCompleted {
		t.Fatalf("stage must not complete with one step still pending")
	}
	if job.CurrentStageIndex != 0 {
		t.Fatalf("index must not advance yet, got %d", job.CurrentStageIndex)
	}
	if job.Stages[0].Steps[0].CompletedAt == nil {
		t.Fatalf("expected completion timestamp after leaving pending")
	}
	if job.Stages[0].Steps[0].EmployeeID != "emp-somchai" {
		t.Fatalf("expected employee recorded")
	}

	if err := e.UpdateStep(job, 0, "c-2", entities.StepStatusCompleted, "emp-somchai"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !job.Stages[0].IsCompleted {
		t.Fatalf("stage must complete once all steps are terminal")
	}
	if job.Stages[1].IsLocked {
		t.Fatalf("next stage must unlock")
	}
	if job.CurrentStageIndex != 1 {
		t.Fatalf("expected index 1, got %d", job.CurrentStageIndex)
	}
	if job.IsFinished {
		t.Fatalf("job must not be finished after the first stage")
	}
	if job.Stages[1].StartedAt == nil || job.Stages[0].CompletedAt == nil {
		t.Fatalf("expected stage timestamps to be set")
	}
}

func TestEngine_UpdateStep_FinalStage(t *testing.T) {
	e := fixedEngine()
	job := testJob()

	// Walk the whole workflow to the billing stage.
	for _, id := range []string{"c-1", "c-2"} {
		if err := e.UpdateStep(job, 0, id, entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("claim step %s: %v", id, err)
		}
	}
	for _, id := range []string{"r-1", "r-2", "r-3"} {
		if err := e.UpdateStep(job, 1, id, entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("repair step %s: %v", id, err)
		}
	}
	if job.CurrentStageIndex != 2 {
		t.Fatalf("expected billing active, got index %d", job.CurrentStageIndex)
	}

	if err := e.UpdateStep(job, 2, "b-1", entities.StepStatusCompleted, "emp-1"); err != nil {
		t.Fatalf("billing step: %v", err)
	}
	if !job.IsFinished {
		t.Fatalf("job must finish after the last stage completes")
	}
	if !job.Stages[2].IsCompleted {
		t.Fatalf("billing stage must be completed")
	}
	if job.CurrentStageIndex != 2 {
		t.Fatalf("index must stay at the last valid value, got %d", job.CurrentStageIndex)
	}
}

func TestEngine_UpdateStep_MonotonicAdvancement(t *testing.T) {
	e := fixedEngine()
	job := testJob()

	for _, id := range []string{"c-1", "c-2"} {
		if err := e.UpdateStep(job, 0, id, entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("claim step %s: %v", id, err)
		}
	}

	// Further work on the repair stage must never roll the index back or
	// reopen the claim stage.
	if err := e.UpdateStep(job, 1, "r-1", entities.StepStatusInProgress, "emp-2"); err != nil {
		t.Fatalf("repair step: %v", err)
	}
	if err := e.UpdateStep(job, 1, "r-1", entities.StepStatusPending, ""); err != nil {
		t.Fatalf("revert: %v", err)
	}
	if job.CurrentStageIndex != 1 {
		t.Fatalf("index decreased to %d", job.CurrentStageIndex)
	}
	if !job.Stages[0].IsCompleted {
		t.Fatalf("completed stage reverted")
	}
}

func TestEngine_UpdateStep_RevertClearsStepState(t *testing.T) {
	e := fixedEngine()
	job := testJob()

	if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusPending, ""); err != nil {
		t.Fatalf("revert: %v", err)
	}

	st := job.Stages[0].Steps[0]
	if st.Status != entities.StepStatusPending || st.EmployeeID != "" || st.CompletedAt != nil {
		t.Fatalf("revert must clear employee and timestamp: %+v", st)
	}

	// Reverting an already-pending step is an idempotent no-op.
	if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusPending, ""); err != nil {
		t.Fatalf("second revert: %v", err)
	}
	st = job.Stages[0].Steps[0]
	if st.Status != entities.StepStatusPending || st.EmployeeID != "" || st.CompletedAt != nil {
		t.Fatalf("second revert changed state: %+v", st)
	}
	if job.Stages[0].IsCompleted {
		t.Fatalf("stage completion toggled by revert")
	}
}

func TestEngine_BulkSkip(t *testing.T) {
	advanceToRepair := func(t *testing.T, e *Engine) *entities.Job {
		t.Helper()
		job := testJob()
		for _, id := range []string{"c-1", "c-2"} {
			if err := e.UpdateStep(job, 0, id, entities.StepStatusCompleted, "emp-1"); err != nil {
				t.Fatalf("claim step %s: %v", id, err)
			}
		}
		return job
	}

	t.Run("atomic rejection when one member is not skippable", func(t *testing.T) {
		e := fixedEngine()
		job := advanceToRepair(t, e)

		err := e.BulkSkip(job, 1, []string{"r-1", "r-3", "r-2"})
		if !errors.Is(err, ErrStepNotSkippable) {
			t.Fatalf("expected ErrStepNotSkippable, got %v", err)
		}
		for _, st := range job.Stages[1].Steps {
			if st.Status != entities.StepStatusPending {
				t.Fatalf("no step may be mutated on batch rejection: %+v", st)
			}
		}
	})

	t.Run("atomic rejection when one member is already terminal", func(t *testing.T) {
		e := fixedEngine()
		job := advanceToRepair(t, e)
		if err := e.UpdateStep(job, 1, "r-1", entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("complete r-1: %v", err)
		}

		err := e.BulkSkip(job, 1, []string{"r-1", "r-2"})
		if !errors.Is(err, ErrStepAlreadyDone) {
			t.Fatalf("expected ErrStepAlreadyDone, got %v", err)
		}
		if job.Stages[1].Steps[1].Status != entities.StepStatusPending {
			t.Fatalf("r-2 must stay pending")
		}
	})

	t.Run("skips batch and runs the completion gate once", func(t *testing.T) {
		e := fixedEngine()
		job := advanceToRepair(t, e)

		if err := e.BulkSkip(job, 1, []string{"r-1", "r-2"}); err != nil {
			t.Fatalf("bulk skip: %v", err)
		}
		if job.Stages[1].IsCompleted {
			t.Fatalf("stage must stay open: r-3 is still pending")
		}
		for _, id := range []string{"r-1", "r-2"} {
			for _, st := range job.Stages[1].Steps {
				if st.ID == id && st.Status != entities.StepStatusSkipped {
					t.Fatalf("expected %s skipped, got %s", id, st.Status)
				}
			}
		}

		if err := e.UpdateStep(job, 1, "r-3", entities.StepStatusCompleted, "emp-1"); err != nil {
			t.Fatalf("complete r-3: %v", err)
		}
		if !job.Stages[1].IsCompleted || job.CurrentStageIndex != 2 {
			t.Fatalf("expected repair completed and billing active, got idx=%d", job.CurrentStageIndex)
		}
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		e := fixedEngine()
		job := advanceToRepair(t, e)
		if err := e.BulkSkip(job, 1, nil); !errors.Is(err, ErrNoStepsSelected) {
			t.Fatalf("expected ErrNoStepsSelected, got %v", err)
		}
	})

	t.Run("locked stage rejected", func(t *testing.T) {
		e := fixedEngine()
		job := testJob()
		if err := e.BulkSkip(job, 1, []string{"r-1"}); !errors.Is(err, ErrStageLocked) {
			t.Fatalf("expected ErrStageLocked, got %v", err)
		}
	})
}

func TestEngine_StepOrderWithinStageIsFree(t *testing.T) {
	e := fixedEngine()
	job := testJob()

	// Complete the second claim step before the first.
	if err := e.UpdateStep(job, 0, "c-2", entities.StepStatusCompleted, "emp-1"); err != nil {
		t.Fatalf("c-2: %v", err)
	}
	if err := e.UpdateStep(job, 0, "c-1", entities.StepStatusCompleted, "emp-1"); err != nil {
		t.Fatalf("c-1: %v", err)
	}
	if !job.Stages[0].IsCompleted {
		t.Fatalf("stage must complete regardless of completion order")
	}
}
