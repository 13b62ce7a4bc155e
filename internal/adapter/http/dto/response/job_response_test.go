package response

import (
	"testing"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:        "job-1",
		JobNumber: "JOB-1",
		Vehicle:   entities.Vehicle{ID: "veh-1", Registration: "กข 1234", Brand: "Toyota"},
		Customer:  entities.Customer{ID: "cus-1", Name: "สมชาย"},
		Stages: []entities.Stage{
			{Code: entities.StageClaim, IsCompleted: true, Steps: []entities.Step{
				{ID: "s1", Name: "รับรถ", Status: entities.StepStatusCompleted, EmployeeID: "emp-1", CompletedAt: &now},
			}},
			{Code: entities.StageRepair},
			{Code: entities.StageBilling, IsLocked: true},
		},
		CurrentStageIndex: 1,
		PaymentType:       entities.PaymentTypeInsurance,
		ExcessFee:         3000,
		StartDate:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromJob(j)
	if res.ID != "job-1" || res.JobNumber != "JOB-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "REPAIR" {
		t.Fatalf("expected derived REPAIR status, got %s", res.Status)
	}
	if res.Vehicle.Registration != "กข 1234" || res.Customer.Name != "สมชาย" {
		t.Fatalf("unexpected snapshots: %+v", res)
	}
	if len(res.Stages) != 3 || len(res.Stages[0].Steps) != 1 {
		t.Fatalf("unexpected stage tree: %+v", res.Stages)
	}
	step := res.Stages[0].Steps[0]
	if step.Status != "completed" || step.EmployeeID != "emp-1" || step.CompletedAt == nil {
		t.Fatalf("unexpected step mapping: %+v", step)
	}
	if res.EstimatedEndDate != nil {
		t.Fatalf("expected nil estimated end for zero time")
	}
}

func TestFromJobsPage(t *testing.T) {
	page := usecase.JobsPage{
		Items:      []entities.Job{{ID: "j1"}, {ID: "j2"}},
		TotalItems: 7,
		Summary:    usecase.JobsSummary{Total: 7, Claim: 3, Repair: 2, Billing: 1, Finished: 1},
	}

	res := FromJobsPage(page, 2, 2)
	if len(res.Data) != 2 || res.Data[0].ID != "j1" {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
	if res.Meta.Page != 2 || res.Meta.PageSize != 2 || res.Meta.TotalItems != 7 {
		t.Fatalf("unexpected meta: %+v", res.Meta)
	}
	if res.Summary.Claim != 3 || res.Summary.Finished != 1 {
		t.Fatalf("unexpected summary: %+v", res.Summary)
	}
}
