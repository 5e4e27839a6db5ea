package response

import (
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
)

type FormViewResponse struct {
	Intent       string                `json:"intent"`
	EditMode     bool                  `json:"edit_mode"`
	ViewMode     bool                  `json:"view_mode"`
	ForcedStatus string                `json:"forced_status,omitempty"`
	Title        string                `json:"title"`
	ConfirmLabel string                `json:"confirm_label,omitempty"`
	CanSubmit    bool                  `json:"can_submit"`
	CanEditLines bool                  `json:"can_edit_lines"`
	CanDelete    bool                  `json:"can_delete"`
	DateLocked   bool                  `json:"date_locked"`
	Options      []ServiceLineResponse `json:"options"`
	Lines        []ServiceLineResponse `json:"lines"`
	Total        string                `json:"total"`
	VehicleModel string                `json:"vehicle_model"`
	Plate        string                `json:"plate"`
	Date         string                `json:"date"`
	WorkOrder    *WorkOrderResponse    `json:"work_order,omitempty"`
	BackTo       string                `json:"back_to"`
}

func FromFormView(v usecase.FormView) FormViewResponse {
	res := FormViewResponse{
		Intent:       string(v.Mode.Intent),
		EditMode:     v.Mode.EditMode,
		ViewMode:     v.Mode.ViewMode,
		ForcedStatus: string(v.Mode.ForcedStatus),
		Title:        v.Title,
		ConfirmLabel: v.ConfirmLabel,
		CanSubmit:    v.CanSubmit,
		CanEditLines: v.CanEditLines,
		CanDelete:    v.CanDelete,
		DateLocked:   v.DateLocked,
		Options:      FromServiceLines(v.Options),
		Lines:        FromServiceLines(v.Lines),
		Total:        v.Total.StringFixed(2),
		VehicleModel: v.Fields.VehicleModel,
		Plate:        v.Fields.Plate,
		Date:         formatDate(v.Fields.Date),
		BackTo:       string(v.BackTo),
	}
	if v.Order != nil {
		o := FromWorkOrder(*v.Order)
		res.WorkOrder = &o
	}
	return res
}

// FormOutcomeResponse tells the client where to navigate after a form action.
type FormOutcomeResponse struct {
	RedirectTo string             `json:"redirect_to,omitempty"`
	Persisted  bool               `json:"persisted"`
	WorkOrder  *WorkOrderResponse `json:"work_order,omitempty"`
}

func FromOutcome(o usecase.Outcome) FormOutcomeResponse {
	res := FormOutcomeResponse{RedirectTo: string(o.Route), Persisted: o.Persisted}
	if o.Order.ID != "" {
		wo := FromWorkOrder(o.Order)
		res.WorkOrder = &wo
	}
	return res
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}
