package usecase

import (
	"context"
	"errors"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServicePrice = errors.New("invalid service price")
)

// IServiceCatalogUseCase manages the services a work order can be made of.
type IServiceCatalogUseCase interface {
	List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.ServiceLine], error)
	GetByID(ctx context.Context, id string) (entities.ServiceLine, error)
	Create(ctx context.Context, name string, price decimal.Decimal) (entities.ServiceLine, error)
}

type ServiceCatalogUseCase struct {
	repo interfaces.IServiceCatalogRepository
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceCatalogRepository) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo}
}

func (u *ServiceCatalogUseCase) List(ctx context.Context, filter entities.PageFilter) (entities.Page[entities.ServiceLine], error) {
	return u.repo.List(ctx, filter.Normalize())
}

func (u *ServiceCatalogUseCase) GetByID(ctx context.Context, id string) (entities.ServiceLine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceLine{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceLine{}, err
	}
	if s.ID == "" {
		return entities.ServiceLine{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceCatalogUseCase) Create(ctx context.Context, name string, price decimal.Decimal) (entities.ServiceLine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.ServiceLine{}, ErrInvalidServiceName
	}
	if price.IsNegative() {
		return entities.ServiceLine{}, ErrInvalidServicePrice
	}

	s := entities.ServiceLine{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}
	return u.repo.Create(ctx, s)
}
