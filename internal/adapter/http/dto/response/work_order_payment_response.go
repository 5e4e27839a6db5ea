package response

import (
	"mecanica_workorders/internal/domain/entities"
	"time"
)

type WorkOrderPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	WorkOrderID string    `json:"work_order_id"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string `json:"provider_payload_raw,omitempty"`
}

func FromWorkOrderPayment(p entities.WorkOrderPayment) WorkOrderPaymentResponse {
	return WorkOrderPaymentResponse{
		PaymentID:          p.ID,
		WorkOrderID:        p.WorkOrderID,
		Amount:             p.Amount.StringFixed(2),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}
