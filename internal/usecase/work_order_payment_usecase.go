package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrInvalidProviderPayload      = errors.New("invalid payment provider payload")
	ErrWorkOrderNotFinalized       = errors.New("work order not finalized")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidPayer  = errors.New("payment gateway invalid payer")
	ErrNothingToCharge             = errors.New("work order total is zero")
)

// IWorkOrderPaymentUseCase charges finalized work orders.
//
// The amount charged is always the order total read from the store; whatever
// the client sends as transaction_amount is overwritten.
type IWorkOrderPaymentUseCase interface {
	Charge(ctx context.Context, workOrderID string, payload json.RawMessage) (entities.WorkOrderPayment, error)
	GetLatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.WorkOrderPayment, error)
}

type WorkOrderPaymentUseCase struct {
	repo     interfaces.IWorkOrderPaymentRepository
	orders   interfaces.IWorkOrderRepository
	gateway  interfaces.IPaymentGateway
	mockMode bool
}

var _ IWorkOrderPaymentUseCase = (*WorkOrderPaymentUseCase)(nil)

func NewWorkOrderPaymentUseCase(repo interfaces.IWorkOrderPaymentRepository, orders interfaces.IWorkOrderRepository, gateway interfaces.IPaymentGateway, mockMode bool) *WorkOrderPaymentUseCase {
	return &WorkOrderPaymentUseCase{repo: repo, orders: orders, gateway: gateway, mockMode: mockMode}
}

func (u *WorkOrderPaymentUseCase) Charge(ctx context.Context, workOrderID string, payload json.RawMessage) (entities.WorkOrderPayment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	log := zap.L().With(zap.String("work_order_id", workOrderID))
	log.Info("[payment][usecase] charge start", zap.Int("payload_len", len(payload)))

	if workOrderID == "" {
		return entities.WorkOrderPayment{}, ErrInvalidWorkOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] invalid payload (not a json object)")
		return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil && !u.mockMode {
		log.Error("[payment][usecase] gateway not configured")
		return entities.WorkOrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		log.Error("[payment][usecase] failed loading work order", zap.Error(err))
		return entities.WorkOrderPayment{}, err
	}
	if o.ID == "" {
		return entities.WorkOrderPayment{}, ErrWorkOrderNotFound
	}
	if o.Status != entities.WorkOrderStatusFinalized {
		log.Info("[payment][usecase] work order not finalized", zap.String("status", string(o.Status)))
		return entities.WorkOrderPayment{}, ErrWorkOrderNotFinalized
	}
	if !o.Total.IsPositive() {
		return entities.WorkOrderPayment{}, ErrNothingToCharge
	}

	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[payment][usecase] missing payment_method_id")
		return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = o.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Work order %s (%s %s)", o.ID, o.VehicleModel, o.Plate)
	}
	reqMap["transaction_amount"] = o.Total.InexactFloat64()

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.WorkOrderPayment{}, err
	}

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.mockMode {
		log.Info("[payment][usecase] mock mode enabled; skipping payment gateway")
		providerID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		reqMap["id"] = providerID
		reqMap["status"] = providerStatus
		if providerResp, err = json.Marshal(reqMap); err != nil {
			return entities.WorkOrderPayment{}, err
		}
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.WorkOrderPayment{}, classifyGatewayError(err)
		}
	}

	p := entities.WorkOrderPayment{
		ID:                 providerID,
		WorkOrderID:        o.ID,
		Amount:             o.Total,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.WorkOrderPayment{}, err
	}
	log.Info("[payment][usecase] charge success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *WorkOrderPaymentUseCase) GetLatestByWorkOrderID(ctx context.Context, workOrderID string) (entities.WorkOrderPayment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrderPayment{}, ErrInvalidWorkOrderID
	}

	payments, err := u.repo.ListByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrderPayment{}, err
	}
	if len(payments) == 0 {
		return entities.WorkOrderPayment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func paymentStatusFromProvider(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"),
		strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidPayer, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
