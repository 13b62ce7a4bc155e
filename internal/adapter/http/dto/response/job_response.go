package response

import (
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase"
)

type StepResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	OrderIndex  int        `json:"orderIndex"`
	IsSkippable bool       `json:"isSkippable"`
	Status      string     `json:"status"`
	EmployeeID  string     `json:"employeeId,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type StageResponse struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	OrderIndex  int            `json:"orderIndex"`
	IsLocked    bool           `json:"isLocked"`
	IsCompleted bool           `json:"isCompleted"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Steps       []StepResponse `json:"steps"`
}

type VehicleResponse struct {
	ID            string `json:"id"`
	Registration  string `json:"registration"`
	Brand         string `json:"brand,omitempty"`
	Model         string `json:"model,omitempty"`
	Type          string `json:"type,omitempty"`
	Year          string `json:"year,omitempty"`
	Color         string `json:"color,omitempty"`
	ChassisNumber string `json:"chassisNumber,omitempty"`
}

type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type JobResponse struct {
	ID                 string           `json:"id"`
	JobNumber          string           `json:"jobNumber"`
	Vehicle            VehicleResponse  `json:"vehicle"`
	Customer           CustomerResponse `json:"customer"`
	InsuranceCompanyID string           `json:"insuranceCompanyId,omitempty"`
	PaymentType        string           `json:"paymentType"`
	ExcessFee          float64          `json:"excessFee"`
	Receiver           string           `json:"receiver,omitempty"`
	StartDate          time.Time        `json:"startDate"`
	EstimatedEndDate   *time.Time       `json:"estimatedEndDate,omitempty"`
	RepairDescription  string           `json:"repairDescription,omitempty"`
	Notes              string           `json:"notes,omitempty"`
	Status             string           `json:"status"`
	CurrentStageIndex  int              `json:"currentStageIndex"`
	IsFinished         bool             `json:"isFinished"`
	Stages             []StageResponse  `json:"stages"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func FromJob(j entities.Job) JobResponse {
	stages := make([]StageResponse, 0, len(j.Stages))
	for _, s := range j.Stages {
		steps := make([]StepResponse, 0, len(s.Steps))
		for _, st := range s.Steps {
			steps = append(steps, StepResponse{
				ID:          st.ID,
				Name:        st.Name,
				OrderIndex:  st.OrderIndex,
				IsSkippable: st.IsSkippable,
				Status:      string(st.Status),
				EmployeeID:  st.EmployeeID,
				CompletedAt: st.CompletedAt,
			})
		}
		stages = append(stages, StageResponse{
			Code:        string(s.Code),
			Name:        s.Name,
			OrderIndex:  s.OrderIndex,
			IsLocked:    s.IsLocked,
			IsCompleted: s.IsCompleted,
			StartedAt:   s.StartedAt,
			CompletedAt: s.CompletedAt,
			Steps:       steps,
		})
	}

	var estimatedEnd *time.Time
	if !j.EstimatedEndDate.IsZero() {
		t := j.EstimatedEndDate
		estimatedEnd = &t
	}

	return JobResponse{
		ID:        j.ID,
		JobNumber: j.JobNumber,
		Vehicle: VehicleResponse{
			ID:            j.Vehicle.ID,
			Registration:  j.Vehicle.Registration,
			Brand:         j.Vehicle.Brand,
			Model:         j.Vehicle.Model,
			Type:          j.Vehicle.Type,
			Year:          j.Vehicle.Year,
			Color:         j.Vehicle.Color,
			ChassisNumber: j.Vehicle.ChassisNumber,
		},
		Customer: CustomerResponse{
			ID:      j.Customer.ID,
			Name:    j.Customer.Name,
			Phone:   j.Customer.Phone,
			Address: j.Customer.Address,
		},
		InsuranceCompanyID: j.InsuranceCompanyID,
		PaymentType:        string(j.PaymentType),
		ExcessFee:          j.ExcessFee,
		Receiver:           j.Receiver,
		StartDate:          j.StartDate,
		EstimatedEndDate:   estimatedEnd,
		RepairDescription:  j.RepairDescription,
		Notes:              j.Notes,
		Status:             string(j.Status()),
		CurrentStageIndex:  j.CurrentStageIndex,
		IsFinished:         j.IsFinished,
		Stages:             stages,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

type ListMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
}

// JobsListResponse is the dashboard page: job rows, pagination meta and the
// counter summary computed before the status filter.
type JobsListResponse struct {
	Data    []JobResponse       `json:"data"`
	Meta    ListMeta            `json:"meta"`
	Summary usecase.JobsSummary `json:"summary"`
}

func FromJobsPage(p usecase.JobsPage, page, pageSize int) JobsListResponse {
	data := make([]JobResponse, 0, len(p.Items))
	for _, j := range p.Items {
		data = append(data, FromJob(j))
	}
	return JobsListResponse{
		Data:    data,
		Meta:    ListMeta{Page: page, PageSize: pageSize, TotalItems: p.TotalItems},
		Summary: p.Summary,
	}
}
