package entities

import "time"

// PaymentType tells who pays for the repair.
type PaymentType string

const (
	PaymentTypeInsurance PaymentType = "Insurance"
	PaymentTypeCash      PaymentType = "Cash"
)

// JobStatus is the job-level status derived from the workflow position.
//
// DONE has no corresponding stage: it means all three stages completed.
type JobStatus string

const (
	JobStatusClaim   JobStatus = "CLAIM"
	JobStatusRepair  JobStatus = "REPAIR"
	JobStatusBilling JobStatus = "BILLING"
	JobStatusDone    JobStatus = "DONE"
)

// Job is one vehicle-repair engagement tracked end-to-end.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Stages and steps are stored inline as a document; the job item is the
//     single source of truth for workflow state.
//
// Vehicle and Customer are denormalized snapshots taken at intake so the
// dashboard can search and render without extra lookups.
type Job struct {
	ID                 string      `json:"id"`
	JobNumber          string      `json:"jobNumber"`
	Vehicle            Vehicle     `json:"vehicle"`
	Customer           Customer    `json:"customer"`
	InsuranceCompanyID string      `json:"insuranceCompanyId,omitempty"`
	PaymentType        PaymentType `json:"paymentType"`
	ExcessFee          float64     `json:"excessFee"`
	Receiver           string      `json:"receiver"`
	StartDate          time.Time   `json:"startDate"`
	EstimatedEndDate   time.Time   `json:"estimatedEndDate"`
	RepairDescription  string      `json:"repairDescription,omitempty"`
	Notes              string      `json:"notes,omitempty"`

	Stages            []Stage `json:"stages"`
	CurrentStageIndex int     `json:"currentStageIndex"`
	IsFinished        bool    `json:"isFinished"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status maps the workflow position onto the job-level status vocabulary.
func (j Job) Status() JobStatus {
	if j.IsFinished {
		return JobStatusDone
	}
	if j.CurrentStageIndex >= 0 && j.CurrentStageIndex < len(j.Stages) {
		switch j.Stages[j.CurrentStageIndex].Code {
		case StageRepair:
			return JobStatusRepair
		case StageBilling:
			return JobStatusBilling
		}
	}
	return JobStatusClaim
}
