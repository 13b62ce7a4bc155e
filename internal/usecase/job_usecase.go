package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound              = errors.New("job not found")
	ErrInvalidJobID             = errors.New("invalid job id")
	ErrInvalidPaymentType       = errors.New("invalid payment type")
	ErrInvalidExcessFee         = errors.New("invalid excess fee")
	ErrInvalidStartDate         = errors.New("invalid start date")
	ErrInsuranceCompanyRequired = errors.New("insurance company required")
	ErrInsuranceCompanyNotFound = errors.New("insurance company not found")
	ErrVehicleNotFound          = errors.New("vehicle not found")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrRegistrationRequired     = errors.New("vehicle registration required")
	ErrCustomerNameRequired     = errors.New("customer name required")
)

// VehicleInput carries intake vehicle details when the vehicle does not
// exist yet.
type VehicleInput struct {
	Registration  string
	Brand         string
	Model         string
	Type          string
	Year          string
	Color         string
	ChassisNumber string
}

// CustomerInput carries intake customer details when the customer does not
// exist yet.
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateJobInput is the intake command. Vehicle and customer may be given
// either by id (already known) or inline (created, with vehicles deduplicated
// by registration).
type CreateJobInput struct {
	JobNumber          string
	VehicleID          string
	Vehicle            *VehicleInput
	CustomerID         string
	Customer           *CustomerInput
	PaymentType        entities.PaymentType
	InsuranceCompanyID string
	ExcessFee          float64
	Receiver           string
	StartDate          time.Time
	EstimatedEndDate   time.Time
	RepairDescription  string
	Notes              string
}

// UpdateJobDetailsInput holds the editable job attributes. Nil fields are
// left untouched.
type UpdateJobDetailsInput struct {
	Receiver          *string
	EstimatedEndDate  *time.Time
	ExcessFee         *float64
	RepairDescription *string
	Notes             *string
}

// JobFilter is the dashboard query: free-text search, car type, start-date
// range, job status and pagination.
type JobFilter struct {
	Search       string
	CarType      string
	Registration string
	From         time.Time
	To           time.Time
	Status       entities.JobStatus
	Page         int
	PageSize     int
}

// JobsSummary is the dashboard counter row, computed before the status
// filter is applied so the tabs always show the full breakdown.
type JobsSummary struct {
	Total    int `json:"total"`
	Claim    int `json:"claim"`
	Repair   int `json:"repair"`
	Billing  int `json:"billing"`
	Finished int `json:"finished"`
}

// JobsPage is one page of dashboard results.
type JobsPage struct {
	Items      []entities.Job
	TotalItems int
	Summary    JobsSummary
}

// IJobUseCase exposes the job intake and dashboard operations.
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context, f JobFilter) (JobsPage, error)
	UpdateDetails(ctx context.Context, id string, in UpdateJobDetailsInput) (entities.Job, error)
}

type JobUseCase struct {
	jobs       interfaces.IJobRepository
	vehicles   interfaces.IVehicleRepository
	customers  interfaces.ICustomerRepository
	insurances interfaces.IInsuranceCompanyRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	vehicles interfaces.IVehicleRepository,
	customers interfaces.ICustomerRepository,
	insurances interfaces.IInsuranceCompanyRepository,
) *JobUseCase {
	return &JobUseCase{jobs: jobs, vehicles: vehicles, customers: customers, insurances: insurances}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	if in.PaymentType != entities.PaymentTypeInsurance && in.PaymentType != entities.PaymentTypeCash {
		return entities.Job{}, ErrInvalidPaymentType
	}
	if in.ExcessFee < 0 {
		return entities.Job{}, ErrInvalidExcessFee
	}
	if in.StartDate.IsZero() {
		return entities.Job{}, ErrInvalidStartDate
	}

	insuranceID := strings.TrimSpace(in.InsuranceCompanyID)
	if in.PaymentType == entities.PaymentTypeInsurance {
		if insuranceID == "" {
			return entities.Job{}, ErrInsuranceCompanyRequired
		}
		company, err := u.insurances.GetByID(ctx, insuranceID)
		if err != nil {
			return entities.Job{}, err
		}
		if company.ID == "" {
			return entities.Job{}, ErrInsuranceCompanyNotFound
		}
	} else {
		// Cash jobs carry no insurance reference, whatever the form sent.
		insuranceID = ""
	}

	vehicle, err := u.resolveVehicle(ctx, in)
	if err != nil {
		return entities.Job{}, err
	}
	customer, err := u.resolveCustomer(ctx, in)
	if err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	stages := entities.NewInitialStages()
	stages[0].StartedAt = &now

	jobNumber := strings.TrimSpace(in.JobNumber)
	if jobNumber == "" {
		jobNumber = "JOB-" + strings.ToUpper(uuid.NewString()[:8])
	}

	job := entities.Job{
		ID:                 uuid.NewString(),
		JobNumber:          jobNumber,
		Vehicle:            vehicle,
		Customer:           customer,
		InsuranceCompanyID: insuranceID,
		PaymentType:        in.PaymentType,
		ExcessFee:          in.ExcessFee,
		Receiver:           strings.TrimSpace(in.Receiver),
		StartDate:          in.StartDate,
		EstimatedEndDate:   in.EstimatedEndDate,
		RepairDescription:  strings.TrimSpace(in.RepairDescription),
		Notes:              strings.TrimSpace(in.Notes),
		Stages:             stages,
		CurrentStageIndex:  0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.jobs.Create(ctx, job)
}

func (u *JobUseCase) resolveVehicle(ctx context.Context, in CreateJobInput) (entities.Vehicle, error) {
	if id := strings.TrimSpace(in.VehicleID); id != "" {
		v, err := u.vehicles.GetByID(ctx, id)
		if err != nil {
			return entities.Vehicle{}, err
		}
		if v.ID == "" {
			return entities.Vehicle{}, ErrVehicleNotFound
		}
		return v, nil
	}

	if in.Vehicle == nil || strings.TrimSpace(in.Vehicle.Registration) == "" {
		return entities.Vehicle{}, ErrRegistrationRequired
	}
	registration := strings.TrimSpace(in.Vehicle.Registration)

	existing, err := u.vehicles.GetByRegistration(ctx, registration)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	return u.vehicles.Create(ctx, entities.Vehicle{
		ID:            uuid.NewString(),
		Registration:  registration,
		Brand:         strings.TrimSpace(in.Vehicle.Brand),
		Model:         strings.TrimSpace(in.Vehicle.Model),
		Type:          strings.TrimSpace(in.Vehicle.Type),
		Year:          strings.TrimSpace(in.Vehicle.Year),
		Color:         strings.TrimSpace(in.Vehicle.Color),
		ChassisNumber: strings.TrimSpace(in.Vehicle.ChassisNumber),
		CreatedAt:     time.Now().UTC(),
	})
}

func (u *JobUseCase) resolveCustomer(ctx context.Context, in CreateJobInput) (entities.Customer, error) {
	if id := strings.TrimSpace(in.CustomerID); id != "" {
		c, err := u.customers.GetByID(ctx, id)
		if err != nil {
			return entities.Customer{}, err
		}
		if c.ID == "" {
			return entities.Customer{}, ErrCustomerNotFound
		}
		return c, nil
	}

	if in.Customer == nil || strings.TrimSpace(in.Customer.Name) == "" {
		return entities.Customer{}, ErrCustomerNameRequired
	}
	return u.customers.Create(ctx, entities.Customer{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Customer.Name),
		Phone:     strings.TrimSpace(in.Customer.Phone),
		Address:   strings.TrimSpace(in.Customer.Address),
		CreatedAt: time.Now().UTC(),
	})
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context, f JobFilter) (JobsPage, error) {
	all, err := u.jobs.List(ctx)
	if err != nil {
		return JobsPage{}, err
	}

	base := make([]entities.Job, 0, len(all))
	for _, j := range all {
		if matchesBaseFilter(j, f) {
			base = append(base, j)
		}
	}
	sort.Slice(base, func(i, k int) bool { return base[i].CreatedAt.After(base[k].CreatedAt) })

	summary := buildSummary(base)

	filtered := base
	if f.Status != "" {
		filtered = make([]entities.Job, 0, len(base))
		for _, j := range base {
			if j.Status() == f.Status {
				filtered = append(filtered, j)
			}
		}
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	size := f.PageSize
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	return JobsPage{Items: filtered[start:end], TotalItems: len(filtered), Summary: summary}, nil
}

func matchesBaseFilter(j entities.Job, f JobFilter) bool {
	if reg := strings.TrimSpace(f.Registration); reg != "" {
		if !strings.EqualFold(j.Vehicle.Registration, reg) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		haystack := strings.ToLower(strings.Join([]string{
			j.Vehicle.Registration, j.JobNumber, j.Customer.Name, j.Vehicle.Brand, j.Vehicle.Model,
		}, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if ct := strings.TrimSpace(f.CarType); ct != "" && !strings.EqualFold(j.Vehicle.Type, ct) {
		return false
	}
	if !f.From.IsZero() && j.StartDate.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && j.StartDate.After(f.To) {
		return false
	}
	return true
}

func buildSummary(jobs []entities.Job) JobsSummary {
	s := JobsSummary{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status() {
		case entities.JobStatusClaim:
			s.Claim++
		case entities.JobStatusRepair:
			s.Repair++
		case entities.JobStatusBilling:
			s.Billing++
		case entities.JobStatusDone:
			s.Finished++
		}
	}
	return s
}

func (u *JobUseCase) UpdateDetails(ctx context.Context, id string, in UpdateJobDetailsInput) (entities.Job, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if in.ExcessFee != nil {
		if *in.ExcessFee < 0 {
			return entities.Job{}, ErrInvalidExcessFee
		}
		job.ExcessFee = *in.ExcessFee
	}
	if in.Receiver != nil {
		job.Receiver = strings.TrimSpace(*in.Receiver)
	}
	if in.EstimatedEndDate != nil {
		job.EstimatedEndDate = *in.EstimatedEndDate
	}
	if in.RepairDescription != nil {
		job.RepairDescription = strings.TrimSpace(*in.RepairDescription)
	}
	if in.Notes != nil {
		job.Notes = strings.TrimSpace(*in.Notes)
	}
	job.UpdatedAt = time.Now().UTC()

	return u.jobs.Update(ctx, job)
}
