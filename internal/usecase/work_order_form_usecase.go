package usecase

import (
	"context"
	"errors"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// FormSubmission is what a client sends when confirming an order form.
//
// ServiceIDs is the desired list of catalog ids in display order. A nil slice
// keeps the lines the form was opened with; an empty one clears them.
type FormSubmission struct {
	ServiceIDs   []string
	VehicleModel string
	Plate        string
	Date         time.Time
}

// IWorkOrderFormUseCase drives one OrderForm per call.
type IWorkOrderFormUseCase interface {
	OpenForm(ctx context.Context, intent Intent, id string) (FormView, error)
	SubmitForm(ctx context.Context, intent Intent, id string, sub FormSubmission) (Outcome, error)
	DeleteFromForm(ctx context.Context, intent Intent, id string) (Outcome, error)
}

type WorkOrderFormUseCase struct {
	catalog interfaces.IServiceCatalogRepository
	store   interfaces.IWorkOrderRepository
	metrics interfaces.IFormMetrics
	opts    []OrderFormOption
}

var _ IWorkOrderFormUseCase = (*WorkOrderFormUseCase)(nil)

func NewWorkOrderFormUseCase(
	catalog interfaces.IServiceCatalogRepository,
	store interfaces.IWorkOrderRepository,
	metrics interfaces.IFormMetrics,
	opts ...OrderFormOption,
) *WorkOrderFormUseCase {
	if metrics == nil {
		metrics = noopFormMetrics{}
	}
	return &WorkOrderFormUseCase{catalog: catalog, store: store, metrics: metrics, opts: opts}
}

func (u *WorkOrderFormUseCase) OpenForm(ctx context.Context, intent Intent, id string) (FormView, error) {
	form, err := NewOrderForm(ctx, u.catalog, u.store, intent, id, u.opts...)
	if err != nil {
		zap.L().Error("[form][usecase] open failed", zap.String("intent", string(intent)), zap.String("work_order_id", id), zap.Error(err))
		return FormView{}, err
	}
	return form.View(), nil
}

func (u *WorkOrderFormUseCase) SubmitForm(ctx context.Context, intent Intent, id string, sub FormSubmission) (Outcome, error) {
	form, err := NewOrderForm(ctx, u.catalog, u.store, intent, id, u.opts...)
	if err != nil {
		zap.L().Error("[form][usecase] open failed", zap.String("intent", string(intent)), zap.String("work_order_id", id), zap.Error(err))
		return Outcome{}, err
	}
	mode := form.Mode()
	log := zap.L().With(zap.String("mode", mode.Name()), zap.String("work_order_id", id))
	log.Info("[form][usecase] submit start", zap.Int("service_ids", len(sub.ServiceIDs)))

	if mode.ViewMode {
		u.metrics.FormRejected(mode.Name())
		return Outcome{}, ErrSubmitDisabled
	}

	if err := replayServices(ctx, form, sub.ServiceIDs); err != nil {
		log.Error("[form][usecase] catalog lookup failed", zap.Error(err))
		return Outcome{}, err
	}
	form.SetVehicleModel(sub.VehicleModel)
	form.SetPlate(sub.Plate)
	form.SetDate(sub.Date)

	out, err := form.Submit(ctx)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			u.metrics.FormRejected(mode.Name())
			log.Info("[form][usecase] submit rejected", zap.Error(err))
			return Outcome{}, err
		}
		log.Error("[form][usecase] submit failed", zap.Error(err))
		return Outcome{}, err
	}

	u.metrics.FormSubmitted(mode.Name(), out.Persisted)
	log.Info("[form][usecase] submit success",
		zap.Bool("persisted", out.Persisted),
		zap.String("status", string(out.Order.Status)),
		zap.String("total", out.Order.Total.StringFixed(2)))
	return out, nil
}

// replayServices rebuilds the draft in the submitted order. Lines already on
// the loaded order keep their stored snapshot; new ids go through the catalog.
func replayServices(ctx context.Context, form *OrderForm, ids []string) error {
	if ids == nil {
		return nil
	}
	current := make(map[string]entities.ServiceLine, len(ids))
	for _, l := range form.Lines() {
		current[l.ID] = l
		form.RemoveService(l.ID)
	}
	for _, id := range ids {
		if l, ok := current[id]; ok {
			form.restoreLine(l)
			continue
		}
		form.Select(id)
		if err := form.AddSelected(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (u *WorkOrderFormUseCase) DeleteFromForm(ctx context.Context, intent Intent, id string) (Outcome, error) {
	form, err := NewOrderForm(ctx, u.catalog, u.store, intent, id, u.opts...)
	if err != nil {
		return Outcome{}, err
	}

	out, err := form.DeleteAndReturn(ctx)
	if err != nil {
		zap.L().Info("[form][usecase] delete refused", zap.String("work_order_id", id), zap.Error(err))
		return Outcome{}, err
	}
	if out.Persisted {
		u.metrics.WorkOrderDeleted()
		zap.L().Info("[form][usecase] work order deleted", zap.String("work_order_id", out.Order.ID))
	}
	return out, nil
}

type noopFormMetrics struct{}

func (noopFormMetrics) FormSubmitted(string, bool) {}
func (noopFormMetrics) FormRejected(string)        {}
func (noopFormMetrics) WorkOrderDeleted()          {}
