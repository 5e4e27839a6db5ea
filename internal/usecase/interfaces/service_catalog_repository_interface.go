package interfaces

import (
	"context"
	"mecanica_workorders/internal/domain/entities"
)

// IServiceCatalogRepository abstracts the service catalog.
//
// GetByID returns a zero-value ServiceLine when the id is unknown.

type IServiceCatalogRepository interface {
	List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.ServiceLine], error)
	GetByID(ctx context.Context, id string) (entities.ServiceLine, error)
	Create(ctx context.Context, s entities.ServiceLine) (entities.ServiceLine, error)
}
