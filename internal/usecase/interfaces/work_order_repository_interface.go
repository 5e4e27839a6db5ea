package interfaces

import (
	"context"
	"mecanica_workorders/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Lookups return a zero-value WorkOrder (empty ID) when the order does not exist.
// Update returns a zero-value WorkOrder when the order vanished in the meantime.

type IWorkOrderRepository interface {
	Create(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, o entities.WorkOrder) (entities.WorkOrder, error)
	Delete(ctx context.Context, o entities.WorkOrder) error
	List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.WorkOrder], error)
}
