package interfaces

import (
	"context"
	"mecanica_workorders/internal/domain/entities"
)

// IWorkOrderPaymentRepository abstracts DynamoDB persistence for WorkOrderPayment.

type IWorkOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.WorkOrderPayment) (entities.WorkOrderPayment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error)
}
