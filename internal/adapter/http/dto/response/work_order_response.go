package response

import (
	"mecanica_workorders/internal/domain/entities"
)

type WorkOrderResponse struct {
	ID           string                `json:"id"`
	Services     []ServiceLineResponse `json:"services"`
	Total        string                `json:"total"`
	VehicleModel string                `json:"vehicle_model"`
	Plate        string                `json:"plate"`
	Date         string                `json:"date"`
	Status       string                `json:"status"`
}

type WorkOrderPageResponse struct {
	Data       []WorkOrderResponse `json:"data"`
	TotalCount int                 `json:"total_count"`
}

func FromWorkOrder(o entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           o.ID,
		Services:     FromServiceLines(o.Services),
		Total:        entities.SumPrices(o.Services).StringFixed(2),
		VehicleModel: o.VehicleModel,
		Plate:        o.Plate,
		Date:         formatDate(o.Date),
		Status:       string(o.Status),
	}
}

func FromWorkOrderPage(p entities.Page[entities.WorkOrder]) WorkOrderPageResponse {
	data := make([]WorkOrderResponse, 0, len(p.Data))
	for _, o := range p.Data {
		data = append(data, FromWorkOrder(o))
	}
	return WorkOrderPageResponse{Data: data, TotalCount: p.TotalCount}
}
