// Package progression owns the job stage/step state machine: which step
// updates are legal and when a stage completes and hands over to the next.
//
// The engine is pure and synchronous. It validates the whole operation before
// touching the job, so a rejected call leaves the job exactly as it was.
// Persistence, HTTP and employee lookup live in the layers above.
package progression

import (
	"errors"
	"fmt"
	"time"

	"garagejobs/internal/domain/entities"
)

var (
	ErrJobFinished      = errors.New("job already finished")
	ErrStageNotFound    = errors.New("stage not found")
	ErrStageLocked      = errors.New("stage is locked")
	ErrStageCompleted   = errors.New("stage already completed")
	ErrStepNotFound     = errors.New("step not found")
	ErrEmployeeRequired = errors.New("employee required for this status")
	ErrStepNotSkippable = errors.New("step is not skippable")
	ErrStepAlreadyDone  = errors.New("step already completed or skipped")
	ErrInvalidStatus    = errors.New("invalid step status")
	ErrNoStepsSelected  = errors.New("no steps selected")
)

// Engine applies step updates and the stage-advancement rule.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: func() time.Time { return time.Now().UTC() }}
}

// NewEngineWithClock is used by tests that need deterministic timestamps.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// UpdateStep sets one step's status and, when that closes out the stage,
// advances the workflow.
//
// Rules:
//   - the target stage must be the open one: not locked, not completed, and
//     the job not finished (historical stages reject with ErrStageCompleted)
//   - completed and in_progress require a non-empty employeeID
//   - skipped requires the step's template to be skippable
//   - a completed or skipped step only accepts pending; corrections go
//     through a revert first (ErrStepAlreadyDone otherwise)
//   - pending reverts the step, clearing employee and timestamp
//
// Step order within a stage is not enforced; only "all steps terminal" gates
// stage completion. Advancement is monotonic: the engine never decreases
// CurrentStageIndex and never reopens a completed stage.
func (e *Engine) UpdateStep(job *entities.Job, stageIndex int, stepID string, status entities.StepStatus, employeeID string) error {
	stage, err := e.openStage(job, stageIndex)
	if err != nil {
		return err
	}

	step := findStep(stage, stepID)
	if step == nil {
		return fmt.Errorf("%w: %s", ErrStepNotFound, stepID)
	}

	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	switch status {
	case entities.StepStatusCompleted, entities.StepStatusInProgress:
		if employeeID == "" {
			return ErrEmployeeRequired
		}
	case entities.StepStatusSkipped:
		if !step.IsSkippable {
			return fmt.Errorf("%w: %s", ErrStepNotSkippable, step.Name)
		}
	}
	if step.Status.Terminal() && status != entities.StepStatusPending {
		return fmt.Errorf("%w: %s", ErrStepAlreadyDone, step.Name)
	}

	e.applyStatus(step, status, employeeID)
	e.advanceIfStageDone(job, stageIndex)
	return nil
}

// BulkSkip marks a batch of steps skipped as one unit. Every id must name a
// skippable, still-open step in the stage; if any member fails validation the
// whole batch is rejected and nothing is applied. The stage-advancement check
// runs once, after the batch.
func (e *Engine) BulkSkip(job *entities.Job, stageIndex int, stepIDs []string) error {
	stage, err := e.openStage(job, stageIndex)
	if err != nil {
		return err
	}
	if len(stepIDs) == 0 {
		return ErrNoStepsSelected
	}

	// Validate the whole batch before mutating anything.
	steps := make([]*entities.Step, 0, len(stepIDs))
	for _, id := range stepIDs {
		step := findStep(stage, id)
		if step == nil {
			return fmt.Errorf("%w: %s", ErrStepNotFound, id)
		}
		if !step.IsSkippable {
			return fmt.Errorf("%w: %s", ErrStepNotSkippable, step.Name)
		}
		if step.Status.Terminal() {
			return fmt.Errorf("%w: %s", ErrStepAlreadyDone, step.Name)
		}
		steps = append(steps, step)
	}

	for _, step := range steps {
		e.applyStatus(step, entities.StepStatusSkipped, "")
	}
	e.advanceIfStageDone(job, stageIndex)
	return nil
}

// openStage resolves the stage and enforces the mutation preconditions.
func (e *Engine) openStage(job *entities.Job, stageIndex int) (*entities.Stage, error) {
	if job.IsFinished {
		return nil, ErrJobFinished
	}
	if stageIndex < 0 || stageIndex >= len(job.Stages) {
		return nil, fmt.Errorf("%w: index %d", ErrStageNotFound, stageIndex)
	}
	stage := &job.Stages[stageIndex]
	if stage.IsCompleted {
		return nil, ErrStageCompleted
	}
	if stage.IsLocked {
		return nil, ErrStageLocked
	}
	return stage, nil
}

func (e *Engine) applyStatus(step *entities.Step, status entities.StepStatus, employeeID string) {
	step.Status = status
	if status == entities.StepStatusPending {
		step.EmployeeID = ""
		step.CompletedAt = nil
		return
	}
	now := e.now()
	step.CompletedAt = &now
	step.EmployeeID = employeeID
}

// advanceIfStageDone runs the completion gate: when every step in the stage
// is terminal, complete the stage and either unlock the next one or, on the
// last stage, finish the job. CurrentStageIndex stays at the last valid index
// when the job finishes.
func (e *Engine) advanceIfStageDone(job *entities.Job, stageIndex int) {
	stage := &job.Stages[stageIndex]
	if !stage.AllStepsDone() {
		return
	}

	now := e.now()
	stage.IsCompleted = true
	stage.CompletedAt = &now

	if stageIndex+1 < len(job.Stages) {
		next := &job.Stages[stageIndex+1]
		next.IsLocked = false
		next.StartedAt = &now
		if stageIndex+1 > job.CurrentStageIndex {
			job.CurrentStageIndex = stageIndex + 1
		}
		return
	}
	job.IsFinished = true
}

func findStep(stage *entities.Stage, stepID string) *entities.Step {
	for i := range stage.Steps {
		if stage.Steps[i].ID == stepID {
			return &stage.Steps[i]
		}
	}
	return nil
}
