package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle records.
//
// GetByRegistration backs the intake flow: a returning vehicle is reused
// instead of duplicated.
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (entities.Vehicle, error)
}
