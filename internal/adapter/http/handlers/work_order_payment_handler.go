package handlers

import (
	"encoding/json"
	"errors"
	response "mecanica_workorders/internal/adapter/http/dto/response"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkOrderPaymentHandler handles payments of finalized work orders.
type WorkOrderPaymentHandler struct {
	usecase usecase.IWorkOrderPaymentUseCase
}

func NewWorkOrderPaymentHandler(uc usecase.IWorkOrderPaymentUseCase) *WorkOrderPaymentHandler {
	return &WorkOrderPaymentHandler{usecase: uc}
}

// Charge godoc
// @Summary      Charge a finalized work order
// @Description  Body is the Mercado Pago payment request, optionally wrapped as {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/payments [post]
func (h *WorkOrderPaymentHandler) Charge(c *gin.Context) {
	workOrderID := c.Param("id")
	log := zap.L().With(zap.String("work_order_id", workOrderID))
	log.Info("[payment][handler] charge start")

	payload, err := readProviderPayload(c)
	if err != nil {
		log.Info("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Charge(c.Request.Context(), workOrderID, payload)
	if err != nil {
		log.Info("[payment][handler] charge failed", zap.Error(err))
		appErr := mapWorkOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] charge success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromWorkOrderPayment(created))
}

// GetLatest godoc
// @Summary      Latest payment of a work order
// @Tags         payments
// @Produce      json
// @Param        id  path  string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id}/payments [get]
func (h *WorkOrderPaymentHandler) GetLatest(c *gin.Context) {
	p, err := h.usecase.GetLatestByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderPayment(p))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapWorkOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidPayer):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_PAYER", "Payer rejected by the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFinalized):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FINALIZED", "Work order not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Work order total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
