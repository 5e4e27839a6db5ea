package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// WorkOrderPayment is the charge of a finalized work order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (work_order_id-index): work_order_id
//
// ProviderPayloadRaw keeps the Mercado Pago response body for audit.
type WorkOrderPayment struct {
	ID          string          `json:"id"`
	WorkOrderID string          `json:"work_order_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Status      PaymentStatus   `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
