package usecase

import (
	"errors"
	"strings"

	"mecanica_workorders/internal/domain/entities"
)

var ErrInvalidIntent = errors.New("invalid form intent")

// Intent is what the caller asked the order form to do.
type Intent string

const (
	IntentCreate      Intent = "new"
	IntentEdit        Intent = "edit"
	IntentPreFinalize Intent = "prefinish"
	IntentFinalize    Intent = "finish"
	IntentView        Intent = "info"
)

// ParseIntent accepts the route segment of a form request.
func ParseIntent(raw string) (Intent, error) {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentCreate:
		return IntentCreate, nil
	case IntentEdit:
		return IntentEdit, nil
	case IntentPreFinalize:
		return IntentPreFinalize, nil
	case IntentFinalize:
		return IntentFinalize, nil
	case IntentView:
		return IntentView, nil
	}
	return "", ErrInvalidIntent
}

// Mode is the immutable descriptor of how an order form behaves.
type Mode struct {
	Intent       Intent
	EditMode     bool
	ViewMode     bool
	ForcedStatus entities.WorkOrderStatus
	ConfirmLabel string
}

// Create reports whether the form creates a new order.
func (m Mode) Create() bool {
	return !m.EditMode && !m.ViewMode
}

// Name is a short label used for logs and metrics.
func (m Mode) Name() string {
	if m.Create() {
		return string(IntentCreate)
	}
	return string(m.Intent)
}

// ResolveMode maps an intent and an optional order id to exactly one mode.
// Without an id every intent falls back to create.
func ResolveMode(intent Intent, id string) Mode {
	if strings.TrimSpace(id) == "" {
		return Mode{Intent: IntentCreate, ConfirmLabel: "Save"}
	}

	switch intent {
	case IntentPreFinalize:
		return Mode{Intent: intent, EditMode: true, ForcedStatus: entities.WorkOrderStatusPreFinalized, ConfirmLabel: "Pre-finalize"}
	case IntentFinalize:
		return Mode{Intent: intent, EditMode: true, ForcedStatus: entities.WorkOrderStatusFinalized, ConfirmLabel: "Finalize"}
	case IntentView:
		return Mode{Intent: intent, ViewMode: true}
	default:
		return Mode{Intent: IntentEdit, EditMode: true, ConfirmLabel: "Save"}
	}
}
