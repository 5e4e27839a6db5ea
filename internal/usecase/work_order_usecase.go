package usecase

import (
	"context"
	"errors"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
	"strings"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
)

// IWorkOrderUseCase exposes the read side used by the listing view.
type IWorkOrderUseCase interface {
	List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.WorkOrder], error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.WorkOrder], error) {
	return u.repo.List(ctx, filter.Normalize())
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if o.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return o, nil
}
