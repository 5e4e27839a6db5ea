package request

import (
	"errors"
	"strings"
	"time"

	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// WorkOrderFormRequest is the body of a form submission.
//
// Omitting service_ids keeps the lines of the loaded order; sending an empty
// list removes them all. Date (YYYY-MM-DD) is only honoured for new orders.
type WorkOrderFormRequest struct {
	ServiceIDs   []string `json:"service_ids"`
	VehicleModel string   `json:"vehicle_model"`
	Plate        string   `json:"plate"`
	Date         string   `json:"date"`
}

func (r WorkOrderFormRequest) ResolveDate() (time.Time, error) {
	v := strings.TrimSpace(r.Date)
	if v == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(entities.DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (r WorkOrderFormRequest) ToSubmission() (usecase.FormSubmission, error) {
	date, err := r.ResolveDate()
	if err != nil {
		return usecase.FormSubmission{}, err
	}
	return usecase.FormSubmission{
		ServiceIDs:   r.ServiceIDs,
		VehicleModel: r.VehicleModel,
		Plate:        r.Plate,
		Date:         date,
	}, nil
}
