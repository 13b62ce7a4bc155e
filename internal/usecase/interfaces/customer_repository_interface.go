package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer records.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
