package interfaces

import (
	"context"

	"gerador_licitacao/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget documents.
//
// Not-found is signalled the same way the rest of the codebase does it: a
// zero-value Budget with an empty ID and a nil error.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Save(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
}
