package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrderStatus is the lifecycle state of a work order (ordem de serviço).
//
// States are ordered: open < pre_finalized < finalized.
type WorkOrderStatus string

const (
	WorkOrderStatusOpen         WorkOrderStatus = "open"
	WorkOrderStatusPreFinalized WorkOrderStatus = "pre_finalized"
	WorkOrderStatusFinalized    WorkOrderStatus = "finalized"
)

// Rank returns the position of the status in the lifecycle, or -1 when unknown.
func (s WorkOrderStatus) Rank() int {
	switch s {
	case WorkOrderStatusOpen:
		return 0
	case WorkOrderStatusPreFinalized:
		return 1
	case WorkOrderStatusFinalized:
		return 2
	}
	return -1
}

func (s WorkOrderStatus) Valid() bool {
	return s.Rank() >= 0
}

// DateLayout is the calendar date format used for work order dates.
const DateLayout = "2006-01-02"

// WorkOrder is a service request for a vehicle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Total is derived from Services and must always equal SumPrices(Services).
// Date is set when the order is created and never changes afterwards.
type WorkOrder struct {
	ID           string          `json:"id"`
	Services     []ServiceLine   `json:"services"`
	Total        decimal.Decimal `json:"total"`
	VehicleModel string          `json:"vehicle_model"`
	Plate        string          `json:"plate"`
	Date         time.Time       `json:"date"`
	Status       WorkOrderStatus `json:"status"`
}

// CalendarDate truncates t to midnight UTC of its own calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
