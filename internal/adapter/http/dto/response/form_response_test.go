package response

import (
	"testing"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromFormView(t *testing.T) {
	order := entities.WorkOrder{ID: "wo-1", Status: entities.WorkOrderStatusFinalized}
	v := usecase.FormView{
		Mode:      usecase.ResolveMode(usecase.IntentView, "wo-1"),
		Title:     "Work order details",
		CanDelete: true,
		Options:   []entities.ServiceLine{{ID: "1", Name: "Oil Change", Price: decimal.RequireFromString("50")}},
		Total:     decimal.Zero,
		Fields:    usecase.FormFields{Plate: "ABC123", Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		Order:     &order,
		BackTo:    usecase.RouteBack,
	}

	res := FromFormView(v)
	if !res.ViewMode || res.EditMode || !res.CanDelete || res.CanSubmit {
		t.Fatalf("unexpected flags: %+v", res)
	}
	if res.Intent != "info" || res.ConfirmLabel != "" || res.Total != "0.00" || res.Date != "2023-01-01" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Options) != 1 || len(res.Lines) != 0 || res.WorkOrder == nil || res.WorkOrder.ID != "wo-1" {
		t.Fatalf("unexpected nested fields: %+v", res)
	}
	if res.BackTo != "back" {
		t.Fatalf("expected back_to back, got %q", res.BackTo)
	}
}

func TestFromOutcome(t *testing.T) {
	res := FromOutcome(usecase.Outcome{Route: usecase.RouteListing})
	if res.RedirectTo != "/v1/work-orders" || res.Persisted || res.WorkOrder != nil {
		t.Fatalf("unexpected outcome: %+v", res)
	}

	res = FromOutcome(usecase.Outcome{Route: usecase.RouteListing, Persisted: true, Order: entities.WorkOrder{ID: "wo-1"}})
	if !res.Persisted || res.WorkOrder == nil || res.WorkOrder.ID != "wo-1" {
		t.Fatalf("unexpected outcome: %+v", res)
	}
}
