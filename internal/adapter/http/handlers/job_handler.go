package handlers

import (
	"errors"
	request "garagejobs/internal/adapter/http/dto/request"
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles intake and dashboard requests for repair jobs.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob opens a new repair job from the intake form payload.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	startDate, err := payload.ResolveStartDate()
	if err != nil || startDate.IsZero() {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_START_DATE", "Invalid start date", http.StatusBadRequest).ToHTTPError())
		return
	}
	estimatedEnd, err := payload.ResolveEstimatedEndDate()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	in := usecase.CreateJobInput{
		JobNumber:          payload.JobNumber,
		VehicleID:          payload.VehicleID,
		CustomerID:         payload.CustomerID,
		PaymentType:        entities.PaymentType(payload.PaymentType),
		InsuranceCompanyID: payload.InsuranceCompanyID,
		ExcessFee:          payload.ExcessFee,
		Receiver:           payload.Receiver,
		StartDate:          startDate,
		EstimatedEndDate:   estimatedEnd,
		RepairDescription:  payload.RepairDescription,
		Notes:              payload.Notes,
	}
	if payload.Vehicle != nil {
		in.Vehicle = &usecase.VehicleInput{
			Registration:  payload.Vehicle.Registration,
			Brand:         payload.Vehicle.Brand,
			Model:         payload.Vehicle.Model,
			Type:          payload.Vehicle.Type,
			Year:          payload.Vehicle.Year,
			Color:         payload.Vehicle.Color,
			ChassisNumber: payload.Vehicle.ChassisNumber,
		}
	}
	if payload.Customer != nil {
		in.Customer = &usecase.CustomerInput{
			Name:    payload.Customer.Name,
			Phone:   payload.Customer.Phone,
			Address: payload.Customer.Address,
		}
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), in)
	if err != nil {
		log.Printf("[job][handler] create failed job_number=%s err=%v", payload.JobNumber, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[job][handler] create success job_id=%s job_number=%s", job.ID, job.JobNumber)

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob returns one job with its full stage/step tree.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.usecase.GetByID(c.Request.Context(), jobID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs serves the dashboard: filtered, paginated jobs plus the
// per-status summary counters.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter, err := parseJobFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest).ToHTTPError())
		return
	}

	page, err := h.usecase.ListJobs(c.Request.Context(), filter)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Mirror the defaults applied by the use case so the meta block is honest.
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	c.JSON(http.StatusOK, response.FromJobsPage(page, filter.Page, filter.PageSize))
}

// UpdateJobDetails edits the job-level attributes; workflow state is only
// ever changed through the step routes.
func (h *JobHandler) UpdateJobDetails(c *gin.Context) {
	jobID := c.Param("job_id")

	var payload request.UpdateJobDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	estimatedEnd, err := payload.ResolveEstimatedEndDate()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateDetails(c.Request.Context(), jobID, usecase.UpdateJobDetailsInput{
		Receiver:          payload.Receiver,
		EstimatedEndDate:  estimatedEnd,
		ExcessFee:         payload.ExcessFee,
		RepairDescription: payload.RepairDescription,
		Notes:             payload.Notes,
	})
	if err != nil {
		log.Printf("[job][handler] update-details failed job_id=%s err=%v", jobID, err)
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func parseJobFilter(c *gin.Context) (usecase.JobFilter, error) {
	filter := usecase.JobFilter{
		Search:       strings.TrimSpace(c.Query("search")),
		CarType:      strings.TrimSpace(c.Query("car_type")),
		Registration: strings.TrimSpace(c.Query("registration")),
	}

	if v := strings.TrimSpace(c.Query("status")); v != "" {
		status := entities.JobStatus(strings.ToUpper(v))
		switch status {
		case entities.JobStatusClaim, entities.JobStatusRepair, entities.JobStatusBilling, entities.JobStatusDone:
			filter.Status = status
		default:
			return usecase.JobFilter{}, errors.New("unknown status " + v)
		}
	}

	var err error
	if filter.From, err = parseQueryDate(c.Query("from")); err != nil {
		return usecase.JobFilter{}, err
	}
	if filter.To, err = parseQueryDate(c.Query("to")); err != nil {
		return usecase.JobFilter{}, err
	}
	if filter.Page, err = parseQueryInt(c.Query("page")); err != nil {
		return usecase.JobFilter{}, err
	}
	if filter.PageSize, err = parseQueryInt(c.Query("page_size")); err != nil {
		return usecase.JobFilter{}, err
	}

	return filter, nil
}

func parseQueryDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseQueryInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidPaymentType),
		errors.Is(err, usecase.ErrInvalidExcessFee),
		errors.Is(err, usecase.ErrInvalidStartDate),
		errors.Is(err, usecase.ErrRegistrationRequired),
		errors.Is(err, usecase.ErrCustomerNameRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsuranceCompanyRequired):
		return pkg.NewDomainErrorSimple("INSURANCE_COMPANY_REQUIRED", "Insurance company is required for insurance jobs", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsuranceCompanyNotFound):
		return pkg.NewDomainErrorSimple("INSURANCE_COMPANY_NOT_FOUND", "Insurance company not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
