package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/domain/progression"
	"garagejobs/internal/usecase/interfaces"
)

var (
	ErrInvalidStepID    = errors.New("invalid step id")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is not active")
)

// IJobProgressUseCase advances a job through its workflow: one step update at
// a time from a station, or a bulk skip to fast-forward the repair stage.
//
// The stage/step transition rules live in the progression engine; this use
// case loads the job, checks the employee reference against the roster, runs
// the engine and persists the resulting document. The persisted job is the
// canonical state returned to the caller; clients are expected to re-render
// from it rather than trust their local copy.
type IJobProgressUseCase interface {
	UpdateStep(ctx context.Context, jobID, stepID string, status entities.StepStatus, employeeID string) (entities.Job, error)
	BulkSkipSteps(ctx context.Context, jobID string, stageIndex int, stepIDs []string) (entities.Job, error)
}

type JobProgressUseCase struct {
	jobs      interfaces.IJobRepository
	employees interfaces.IEmployeeRepository
	engine    *progression.Engine
}

var _ IJobProgressUseCase = (*JobProgressUseCase)(nil)

func NewJobProgressUseCase(jobs interfaces.IJobRepository, employees interfaces.IEmployeeRepository) *JobProgressUseCase {
	return &JobProgressUseCase{jobs: jobs, employees: employees, engine: progression.NewEngine()}
}

func (u *JobProgressUseCase) UpdateStep(ctx context.Context, jobID, stepID string, status entities.StepStatus, employeeID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	stepID = strings.TrimSpace(stepID)
	if stepID == "" {
		return entities.Job{}, ErrInvalidStepID
	}
	employeeID = strings.TrimSpace(employeeID)

	job, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	// Employee must exist and be active before the engine records the
	// reference. The engine itself only checks presence.
	if employeeID != "" {
		emp, err := u.employees.GetByID(ctx, employeeID)
		if err != nil {
			return entities.Job{}, err
		}
		if emp.ID == "" {
			return entities.Job{}, ErrEmployeeNotFound
		}
		if !emp.IsActive {
			return entities.Job{}, ErrEmployeeInactive
		}
	}

	stageIndex := stageIndexOfStep(job, stepID)
	if stageIndex < 0 {
		return entities.Job{}, progression.ErrStepNotFound
	}

	if err := u.engine.UpdateStep(&job, stageIndex, stepID, status, employeeID); err != nil {
		return entities.Job{}, err
	}

	return u.persist(ctx, job, stepID, string(status))
}

func (u *JobProgressUseCase) BulkSkipSteps(ctx context.Context, jobID string, stageIndex int, stepIDs []string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}

	if err := u.engine.BulkSkip(&job, stageIndex, stepIDs); err != nil {
		return entities.Job{}, err
	}

	return u.persist(ctx, job, "bulk", string(entities.StepStatusSkipped))
}

func (u *JobProgressUseCase) loadJob(ctx context.Context, jobID string) (entities.Job, error) {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobProgressUseCase) persist(ctx context.Context, job entities.Job, stepID, status string) (entities.Job, error) {
	job.UpdatedAt = time.Now().UTC()
	updated, err := u.jobs.Update(ctx, job)
	if err != nil {
		log.Printf("[progress][usecase] persist failed job_id=%s step=%s status=%s err=%v", job.ID, stepID, status, err)
		return entities.Job{}, err
	}
	log.Printf("[progress][usecase] step update persisted job_id=%s step=%s status=%s stage_index=%d finished=%t",
		updated.ID, stepID, status, updated.CurrentStageIndex, updated.IsFinished)
	return updated, nil
}

func stageIndexOfStep(job entities.Job, stepID string) int {
	for i := range job.Stages {
		for _, st := range job.Stages[i].Steps {
			if st.ID == stepID {
				return i
			}
		}
	}
	return -1
}
