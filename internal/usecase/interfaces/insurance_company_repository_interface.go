package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// IInsuranceCompanyRepository abstracts DynamoDB persistence for the insurance
// companies referenced by Insurance-paid jobs.
type IInsuranceCompanyRepository interface {
	GetByID(ctx context.Context, id string) (entities.InsuranceCompany, error)
	List(ctx context.Context) ([]entities.InsuranceCompany, error)
}
