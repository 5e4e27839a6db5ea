package request

import (
	"errors"
	"testing"
	"time"
)

func TestWorkOrderFormRequest_ResolveDate(t *testing.T) {
	d, err := WorkOrderFormRequest{Date: " 2023-01-01 "}.ResolveDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", d)
	}

	d, err = WorkOrderFormRequest{}.ResolveDate()
	if err != nil || !d.IsZero() {
		t.Fatalf("expected zero date, got %s err=%v", d, err)
	}

	_, err = WorkOrderFormRequest{Date: "01/01/2023"}.ResolveDate()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestWorkOrderFormRequest_ToSubmission(t *testing.T) {
	r := WorkOrderFormRequest{ServiceIDs: []string{"1", "2"}, VehicleModel: "CB500", Plate: "ABC123", Date: "2023-01-01"}
	sub, err := r.ToSubmission()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sub.ServiceIDs) != 2 || sub.VehicleModel != "CB500" || sub.Plate != "ABC123" || sub.Date.IsZero() {
		t.Fatalf("unexpected submission: %+v", sub)
	}

	sub, _ = WorkOrderFormRequest{}.ToSubmission()
	if sub.ServiceIDs != nil {
		t.Fatalf("expected nil service ids to be preserved")
	}

	if _, err := (WorkOrderFormRequest{Date: "x"}).ToSubmission(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
