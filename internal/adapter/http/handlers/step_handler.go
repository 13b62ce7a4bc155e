package handlers

import (
	"errors"
	request "garagejobs/internal/adapter/http/dto/request"
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/domain/entities"
	"garagejobs/internal/domain/progression"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStepPayload = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid step payload", http.StatusBadRequest)
)

// StepHandler handles workflow progression requests: station checkoffs and
// bulk skips. All stage/step transition rules are enforced server side; the
// updated job document is returned so clients re-render from it.

type StepHandler struct {
	usecase usecase.IJobProgressUseCase
}

func NewStepHandler(uc usecase.IJobProgressUseCase) *StepHandler {
	return &StepHandler{usecase: uc}
}

// UpdateStep moves one checklist step to a new status.
func (h *StepHandler) UpdateStep(c *gin.Context) {
	jobID := c.Param("job_id")
	stepID := c.Param("step_id")
	log.Printf("[progress][handler] update-step start job_id=%s step_id=%s", jobID, stepID)

	var payload request.UpdateStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStep(c.Request.Context(), jobID, stepID, entities.StepStatus(payload.Status), payload.EmployeeID)
	if err != nil {
		log.Printf("[progress][handler] update-step failed job_id=%s step_id=%s status=%s err=%v", jobID, stepID, payload.Status, err)
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[progress][handler] update-step success job_id=%s step_id=%s status=%s stage_index=%d finished=%t",
		job.ID, stepID, payload.Status, job.CurrentStageIndex, job.IsFinished)

	c.JSON(http.StatusOK, response.FromJob(job))
}

// BulkSkip skips a batch of steps in one stage as a single unit: either all
// of them move to skipped or none do.
func (h *StepHandler) BulkSkip(c *gin.Context) {
	jobID := c.Param("job_id")
	stageIndex, err := strconv.Atoi(c.Param("stage_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_STAGE_INDEX", "Invalid stage index", http.StatusBadRequest).ToHTTPError())
		return
	}
	log.Printf("[progress][handler] bulk-skip start job_id=%s stage_index=%d", jobID, stageIndex)

	var payload request.BulkSkipRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStepPayload.HTTPStatus, errInvalidStepPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.BulkSkipSteps(c.Request.Context(), jobID, stageIndex, payload.StepIDs)
	if err != nil {
		log.Printf("[progress][handler] bulk-skip failed job_id=%s stage_index=%d steps=%d err=%v", jobID, stageIndex, len(payload.StepIDs), err)
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[progress][handler] bulk-skip success job_id=%s stage_index=%d steps=%d finished=%t",
		job.ID, stageIndex, len(payload.StepIDs), job.IsFinished)

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapProgressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidStepID),
		errors.Is(err, progression.ErrInvalidStatus),
		errors.Is(err, progression.ErrNoStepsSelected):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, progression.ErrEmployeeRequired):
		return pkg.NewDomainErrorSimple("EMPLOYEE_REQUIRED", "An employee is required to work on a step", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeInactive):
		return pkg.NewDomainErrorSimple("EMPLOYEE_INACTIVE", "Employee is not active", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, progression.ErrStepNotFound):
		return pkg.NewDomainErrorSimple("STEP_NOT_FOUND", "Step not found", http.StatusNotFound)
	case errors.Is(err, progression.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound)
	case errors.Is(err, progression.ErrJobFinished):
		return pkg.NewDomainErrorSimple("JOB_FINISHED", "Job is already finished", http.StatusConflict)
	case errors.Is(err, progression.ErrStageLocked):
		return pkg.NewDomainErrorSimple("STAGE_LOCKED", "Stage is not open yet", http.StatusConflict)
	case errors.Is(err, progression.ErrStageCompleted):
		return pkg.NewDomainErrorSimple("STAGE_COMPLETED", "Stage is already completed", http.StatusConflict)
	case errors.Is(err, progression.ErrStepNotSkippable):
		return pkg.NewDomainErrorSimple("STEP_NOT_SKIPPABLE", "Step cannot be skipped", http.StatusConflict)
	case errors.Is(err, progression.ErrStepAlreadyDone):
		return pkg.NewDomainErrorSimple("STEP_ALREADY_DONE", "Step is already completed or skipped", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
