package usecase

import (
	"context"
	"sort"
	"strings"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"
)

// DefaultEmployeePageSize is used when the caller does not ask for a limit.
const DefaultEmployeePageSize = 20

// IEmployeeUseCase backs the station's operator autocomplete: search active
// employees by name.
type IEmployeeUseCase interface {
	Search(ctx context.Context, query string, page, limit int) ([]entities.Employee, int, error)
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Search returns active employees whose name contains the query
// (case-insensitive), paginated, plus the total match count.
func (u *EmployeeUseCase) Search(ctx context.Context, query string, page, limit int) ([]entities.Employee, int, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]entities.Employee, 0, len(all))
	for _, e := range all {
		if !e.IsActive {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, k int) bool { return matched[i].Name < matched[k].Name })

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultEmployeePageSize
	}
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched), nil
}
