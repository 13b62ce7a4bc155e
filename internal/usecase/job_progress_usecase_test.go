package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/domain/progression"
	mock_interfaces "garagejobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func progressUseCaseWithMocks(ctrl *gomock.Controller) (*JobProgressUseCase, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIEmployeeRepository) {
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	employees := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	return NewJobProgressUseCase(jobs, employees), jobs, employees
}

func workflowJob() entities.Job {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	stages := entities.NewInitialStages()
	stages[0].StartedAt = &now
	return entities.Job{
		ID:        "job-1",
		JobNumber: "JOB-1",
		Stages:    stages,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJobProgressUseCase_UpdateStep_Validations(t *testing.T) {
	t.Run("empty job id", func(t *testing.T) {
		uc := NewJobProgressUseCase(nil, nil)
		_, err := uc.UpdateStep(context.Background(), " ", "step-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("empty step id", func(t *testing.T) {
		uc := NewJobProgressUseCase(nil, nil)
		_, err := uc.UpdateStep(context.Background(), "job-1", " ", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrInvalidStepID) {
			t.Fatalf("expected ErrInvalidStepID, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, _ := progressUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.UpdateStep(context.Background(), "job-1", "step-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("employee not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, employees := progressUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(workflowJob(), nil)
		employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{}, nil)

		_, err := uc.UpdateStep(context.Background(), "job-1", "step-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrEmployeeNotFound) {
			t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
		}
	})

	t.Run("inactive employee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, employees := progressUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(workflowJob(), nil)
		employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{ID: "emp-1", IsActive: false}, nil)

		_, err := uc.UpdateStep(context.Background(), "job-1", "step-1", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, ErrEmployeeInactive) {
			t.Fatalf("expected ErrEmployeeInactive, got %v", err)
		}
	})

	t.Run("unknown step id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, employees := progressUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(workflowJob(), nil)
		employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{ID: "emp-1", IsActive: true}, nil)

		_, err := uc.UpdateStep(context.Background(), "job-1", "missing", entities.StepStatusCompleted, "emp-1")
		if !errors.Is(err, progression.ErrStepNotFound) {
			t.Fatalf("expected ErrStepNotFound, got %v", err)
		}
	})
}

func TestJobProgressUseCase_UpdateStep_PersistsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, jobs, employees := progressUseCaseWithMocks(ctrl)

	job := workflowJob()
	stepID := job.Stages[0].Steps[0].ID

	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{ID: "emp-1", IsActive: true}, nil)
	jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			step := j.Stages[0].Steps[0]
			if step.Status != entities.StepStatusCompleted || step.EmployeeID != "emp-1" || step.CompletedAt == nil {
				t.Fatalf("unexpected persisted step: %+v", step)
			}
			if j.UpdatedAt.Equal(job.UpdatedAt) {
				t.Fatalf("expected UpdatedAt to move forward")
			}
			return j, nil
		})

	updated, err := uc.UpdateStep(context.Background(), "job-1", stepID, entities.StepStatusCompleted, "emp-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Stages[0].Steps[0].Status != entities.StepStatusCompleted {
		t.Fatalf("expected completed step in returned job")
	}
}

func TestJobProgressUseCase_BulkSkipSteps(t *testing.T) {
	t.Run("empty job id", func(t *testing.T) {
		uc := NewJobProgressUseCase(nil, nil)
		_, err := uc.BulkSkipSteps(context.Background(), " ", 1, []string{"s1"})
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("locked stage rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, _ := progressUseCaseWithMocks(ctrl)

		job := workflowJob()
		stepID := job.Stages[1].Steps[0].ID
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.BulkSkipSteps(context.Background(), "job-1", 1, []string{stepID})
		if !errors.Is(err, progression.ErrStageLocked) {
			t.Fatalf("expected ErrStageLocked, got %v", err)
		}
	})

	t.Run("skips persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, jobs, _ := progressUseCaseWithMocks(ctrl)

		job := workflowJob()
		// Repair stage open, claim already completed.
		job.Stages[0].IsCompleted = true
		for i := range job.Stages[0].Steps {
			job.Stages[0].Steps[i].Status = entities.StepStatusCompleted
		}
		job.Stages[1].IsLocked = false
		job.CurrentStageIndex = 1

		skippable := make([]string, 0, 2)
		for _, st := range job.Stages[1].Steps {
			if st.IsSkippable {
				skippable = append(skippable, st.ID)
			}
			if len(skippable) == 2 {
				break
			}
		}

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil })

		updated, err := uc.BulkSkipSteps(context.Background(), "job-1", 1, skippable)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		skipped := 0
		for _, st := range updated.Stages[1].Steps {
			if st.Status == entities.StepStatusSkipped {
				skipped++
			}
		}
		if skipped != len(skippable) {
			t.Fatalf("expected %d skipped steps, got %d", len(skippable), skipped)
		}
	})
}
