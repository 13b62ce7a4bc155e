package interfaces

import (
	"context"

	"garagejobs/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job documents.
//
// The job item carries the full stage/step workflow, so Update replaces the
// whole document after the progression engine has mutated it.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
}
