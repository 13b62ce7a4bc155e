package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee records.
//
// List returns every employee; name search and the active-only filter are
// applied by the use case.
type IEmployeeRepository interface {
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}
