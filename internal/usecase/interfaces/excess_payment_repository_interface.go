package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// IExcessPaymentRepository abstracts DynamoDB persistence for ExcessPayment.
type IExcessPaymentRepository interface {
	Create(ctx context.Context, p entities.ExcessPayment) (entities.ExcessPayment, error)
	GetByID(ctx context.Context, id string) (entities.ExcessPayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ExcessPayment, error)
}
