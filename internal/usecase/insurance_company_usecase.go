package usecase

import (
	"context"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"
)

// IInsuranceCompanyUseCase feeds the intake form's insurance company picker.
type IInsuranceCompanyUseCase interface {
	List(ctx context.Context) ([]entities.InsuranceCompany, error)
}

type InsuranceCompanyUseCase struct {
	repo interfaces.IInsuranceCompanyRepository
}

var _ IInsuranceCompanyUseCase = (*InsuranceCompanyUseCase)(nil)

func NewInsuranceCompanyUseCase(repo interfaces.IInsuranceCompanyRepository) *InsuranceCompanyUseCase {
	return &InsuranceCompanyUseCase{repo: repo}
}

func (u *InsuranceCompanyUseCase) List(ctx context.Context) ([]entities.InsuranceCompany, error) {
	return u.repo.List(ctx)
}
