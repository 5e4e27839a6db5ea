package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrSubmitDisabled   = errors.New("submit is disabled in view mode")
	ErrDeleteNotAllowed = errors.New("work order cannot be deleted from this form")
)

const defaultCatalogPageSize = 1000

// Route is where the view layer should go after a form action.
type Route string

const (
	RouteNone    Route = ""
	RouteListing Route = "/v1/work-orders"
	RouteBack    Route = "back"
)

// Outcome is returned by form actions instead of navigating directly.
type Outcome struct {
	Route     Route
	Persisted bool
	Order     entities.WorkOrder
}

// FormFields are the plain inputs of the order form.
type FormFields struct {
	VehicleModel string
	Plate        string
	Date         time.Time
	Selection    string
}

// FormView is everything a renderer needs to draw the form.
type FormView struct {
	Mode         Mode
	Title        string
	ConfirmLabel string
	CanSubmit    bool
	CanEditLines bool
	CanDelete    bool
	DateLocked   bool
	Options      []entities.ServiceLine
	Lines        []entities.ServiceLine
	Total        decimal.Decimal
	Fields       FormFields
	Order        *entities.WorkOrder
	BackTo       Route
}

type OrderFormOption func(*OrderForm)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) OrderFormOption {
	return func(f *OrderForm) {
		f.now = now
	}
}

// WithCatalogPageSize sets how many catalog entries are offered as options.
func WithCatalogPageSize(size int) OrderFormOption {
	return func(f *OrderForm) {
		if size > 0 {
			f.catalogPageSize = size
		}
	}
}

// OrderForm holds the draft of a single work order for one form lifetime.
//
// It is not safe for concurrent use: one instance serves one user interaction.
// Collaborators are injected and never looked up globally.
type OrderForm struct {
	catalog interfaces.IServiceCatalogRepository
	store   interfaces.IWorkOrderRepository

	mode     Mode
	original entities.WorkOrder
	draft    *OrderDraft
	options  []entities.ServiceLine
	fields   FormFields

	now             func() time.Time
	catalogPageSize int
}

// NewOrderForm resolves the mode, loads the catalog options and, for an
// existing order, mirrors it into the draft. A missing order is not an error.
func NewOrderForm(
	ctx context.Context,
	catalog interfaces.IServiceCatalogRepository,
	store interfaces.IWorkOrderRepository,
	intent Intent,
	id string,
	opts ...OrderFormOption,
) (*OrderForm, error) {
	f := &OrderForm{
		catalog:         catalog,
		store:           store,
		mode:            ResolveMode(intent, id),
		draft:           NewOrderDraft(nil),
		now:             time.Now,
		catalogPageSize: defaultCatalogPageSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	page, err := catalog.List(ctx, entities.PageFilter{Page: 0, PageSize: f.catalogPageSize, Order: entities.SortAsc})
	if err != nil {
		return nil, err
	}
	f.options = page.Data

	if f.mode.Create() {
		f.fields.Date = entities.CalendarDate(f.now())
		return f, nil
	}

	id = strings.TrimSpace(id)
	o, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		zap.L().Info("[form][usecase] work order not found; form starts empty",
			zap.String("work_order_id", id), zap.String("mode", f.mode.Name()))
		return f, nil
	}

	f.original = o
	f.draft = NewOrderDraft(o.Services)
	f.fields = FormFields{
		VehicleModel: o.VehicleModel,
		Plate:        o.Plate,
		Date:         o.Date,
	}
	return f, nil
}

func (f *OrderForm) Mode() Mode {
	return f.mode
}

// Loaded returns the order the form was opened with, if it exists.
func (f *OrderForm) Loaded() (entities.WorkOrder, bool) {
	return f.original, f.original.ID != ""
}

func (f *OrderForm) Fields() FormFields {
	return f.fields
}

func (f *OrderForm) Lines() []entities.ServiceLine {
	return f.draft.Lines()
}

func (f *OrderForm) Total() decimal.Decimal {
	return f.draft.Total()
}

func (f *OrderForm) Options() []entities.ServiceLine {
	out := make([]entities.ServiceLine, len(f.options))
	copy(out, f.options)
	return out
}

func (f *OrderForm) SetVehicleModel(v string) {
	if f.mode.ViewMode {
		return
	}
	f.fields.VehicleModel = v
}

func (f *OrderForm) SetPlate(v string) {
	if f.mode.ViewMode {
		return
	}
	f.fields.Plate = v
}

// SetDate only applies to new orders; existing orders keep their date.
func (f *OrderForm) SetDate(t time.Time) {
	if !f.mode.Create() || t.IsZero() {
		return
	}
	f.fields.Date = entities.CalendarDate(t)
}

// Select stores the catalog id picked in the selection input.
func (f *OrderForm) Select(id string) {
	if f.mode.ViewMode {
		return
	}
	f.fields.Selection = id
}

// AddSelected adds the selected service and clears the selection.
func (f *OrderForm) AddSelected(ctx context.Context) error {
	id := f.fields.Selection
	if id == "" {
		return nil
	}
	if err := f.AddService(ctx, id); err != nil {
		return err
	}
	f.fields.Selection = ""
	return nil
}

// AddService appends the catalog service with the given id. Adding an id that
// is already in the draft, or one the catalog does not know, does nothing.
func (f *OrderForm) AddService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if f.mode.ViewMode || id == "" || f.draft.Contains(id) {
		return nil
	}

	line, err := f.lookup(ctx, id)
	if err != nil {
		return err
	}
	if line.ID == "" {
		zap.L().Debug("[form][usecase] service not in catalog; ignored", zap.String("service_id", id))
		return nil
	}
	f.draft.Append(line)
	return nil
}

func (f *OrderForm) lookup(ctx context.Context, id string) (entities.ServiceLine, error) {
	for _, s := range f.options {
		if s.ID == id {
			return s, nil
		}
	}
	return f.catalog.GetByID(ctx, id)
}

// restoreLine puts back a line the draft already held, without a catalog lookup.
func (f *OrderForm) restoreLine(l entities.ServiceLine) {
	if f.mode.ViewMode {
		return
	}
	f.draft.Append(l)
}

// RemoveService drops the line with the given id, if present.
func (f *OrderForm) RemoveService(id string) {
	if f.mode.ViewMode {
		return
	}
	f.draft.Remove(strings.TrimSpace(id))
}

// CanDelete is true only when viewing a finalized order.
func (f *OrderForm) CanDelete() bool {
	return f.mode.ViewMode && f.original.ID != "" && f.original.Status == entities.WorkOrderStatusFinalized
}

func (f *OrderForm) View() FormView {
	v := FormView{
		Mode:         f.mode,
		Title:        f.title(),
		ConfirmLabel: f.mode.ConfirmLabel,
		CanSubmit:    !f.mode.ViewMode,
		CanEditLines: !f.mode.ViewMode,
		CanDelete:    f.CanDelete(),
		DateLocked:   f.original.ID != "",
		Options:      f.Options(),
		Lines:        f.Lines(),
		Total:        f.Total(),
		Fields:       f.fields,
		BackTo:       f.Back().Route,
	}
	if o, ok := f.Loaded(); ok {
		v.Order = &o
	}
	return v
}

func (f *OrderForm) title() string {
	switch {
	case f.mode.EditMode:
		return "Edit work order"
	case f.mode.ViewMode:
		return "Work order details"
	default:
		return "New work order"
	}
}

// Submit validates the draft and commits it to the store.
//
// Create mode stores a new open order dated with the selected date. Edit modes
// keep id and date of the loaded order, replace lines, total, model and plate,
// and apply the forced status when the mode has one. If the loaded order is
// gone the submission is dropped without touching the store.
func (f *OrderForm) Submit(ctx context.Context) (Outcome, error) {
	if f.mode.ViewMode {
		return Outcome{}, ErrSubmitDisabled
	}

	in, err := validateOrderForm(f.fields.VehicleModel, f.fields.Plate)
	if err != nil {
		return Outcome{}, err
	}

	if f.mode.Create() {
		o := entities.WorkOrder{
			ID:           uuid.NewString(),
			Services:     f.draft.Lines(),
			Total:        f.draft.Total(),
			VehicleModel: in.VehicleModel,
			Plate:        in.Plate,
			Date:         f.fields.Date,
			Status:       entities.WorkOrderStatusOpen,
		}
		created, err := f.store.Create(ctx, o)
		if err != nil {
			return Outcome{}, err
		}
		f.reset()
		return Outcome{Route: RouteListing, Persisted: true, Order: created}, nil
	}

	if f.original.ID == "" {
		zap.L().Info("[form][usecase] submit skipped; work order no longer loaded", zap.String("mode", f.mode.Name()))
		f.reset()
		return Outcome{Route: RouteListing}, nil
	}

	status := f.original.Status
	if f.mode.ForcedStatus != "" {
		status = f.mode.ForcedStatus
	}
	o := entities.WorkOrder{
		ID:           f.original.ID,
		Services:     f.draft.Lines(),
		Total:        f.draft.Total(),
		VehicleModel: in.VehicleModel,
		Plate:        in.Plate,
		Date:         f.original.Date,
		Status:       status,
	}
	updated, err := f.store.Update(ctx, o)
	if err != nil {
		return Outcome{}, err
	}
	f.reset()
	if updated.ID == "" {
		zap.L().Info("[form][usecase] work order vanished before update", zap.String("work_order_id", o.ID))
		return Outcome{Route: RouteListing}, nil
	}
	return Outcome{Route: RouteListing, Persisted: true, Order: updated}, nil
}

// DeleteAndReturn removes the loaded order. Without a loaded order it does nothing.
func (f *OrderForm) DeleteAndReturn(ctx context.Context) (Outcome, error) {
	if f.original.ID == "" {
		return Outcome{}, nil
	}
	if !f.CanDelete() {
		return Outcome{}, ErrDeleteNotAllowed
	}
	if err := f.store.Delete(ctx, f.original); err != nil {
		return Outcome{}, err
	}
	deleted := f.original
	f.original = entities.WorkOrder{}
	return Outcome{Route: RouteListing, Persisted: true, Order: deleted}, nil
}

// Back is the "go back" affordance; it never touches the store.
func (f *OrderForm) Back() Outcome {
	return Outcome{Route: RouteBack}
}

// reset empties the draft and the inputs after a submit. A create form starts
// over dated today; edit forms keep the loaded order's date.
func (f *OrderForm) reset() {
	f.draft = NewOrderDraft(nil)
	date := f.original.Date
	if f.mode.Create() {
		date = entities.CalendarDate(f.now())
	}
	f.fields = FormFields{Date: date}
}
