package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "mecanica_workorders/internal/adapter/http/dto/request"
	response "mecanica_workorders/internal/adapter/http/dto/response"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidFormPayload = pkg.NewDomainErrorSimple("INVALID_FORM_INPUT", "Invalid form payload", http.StatusBadRequest)
	errInvalidIntent      = pkg.NewDomainErrorSimple("INVALID_INTENT", "Unknown form intent", http.StatusBadRequest)
)

// WorkOrderFormHandler exposes the work order form over HTTP.
//
// Every request opens a fresh form for the intent in the path, so nothing is
// kept between calls. Navigation comes back as redirect_to in the body.
type WorkOrderFormHandler struct {
	usecase usecase.IWorkOrderFormUseCase
}

func NewWorkOrderFormHandler(uc usecase.IWorkOrderFormUseCase) *WorkOrderFormHandler {
	return &WorkOrderFormHandler{usecase: uc}
}

// OpenForm godoc
// @Summary      Open a work order form
// @Tags         forms
// @Produce      json
// @Param        intent  path  string  true   "new | edit | prefinish | finish | info"
// @Param        id      path  string  false  "Work order id"
// @Success      200  {object}  response.FormViewResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /forms/{intent}/{id} [get]
func (h *WorkOrderFormHandler) OpenForm(c *gin.Context) {
	intent, ok := parseIntentParam(c)
	if !ok {
		return
	}

	view, err := h.usecase.OpenForm(c.Request.Context(), intent, c.Param("id"))
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormView(view))
}

// SubmitForm godoc
// @Summary      Submit a work order form
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        intent   path  string                        true   "new | edit | prefinish | finish"
// @Param        id       path  string                        false  "Work order id"
// @Param        payload  body  request.WorkOrderFormRequest  true   "Form fields"
// @Success      200  {object}  response.FormOutcomeResponse
// @Success      201  {object}  response.FormOutcomeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /forms/{intent}/{id} [post]
func (h *WorkOrderFormHandler) SubmitForm(c *gin.Context) {
	intent, ok := parseIntentParam(c)
	if !ok {
		return
	}

	var payload request.WorkOrderFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}
	sub, err := payload.ToSubmission()
	if err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	out, err := h.usecase.SubmitForm(c.Request.Context(), intent, id, sub)
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if out.Persisted && strings.TrimSpace(id) == "" {
		status = http.StatusCreated
	}
	c.JSON(status, response.FromOutcome(out))
}

// DeleteFromForm godoc
// @Summary      Delete a finalized work order from its details form
// @Tags         forms
// @Produce      json
// @Param        intent  path  string  true  "info"
// @Param        id      path  string  true  "Work order id"
// @Success      200  {object}  response.FormOutcomeResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /forms/{intent}/{id} [delete]
func (h *WorkOrderFormHandler) DeleteFromForm(c *gin.Context) {
	intent, ok := parseIntentParam(c)
	if !ok {
		return
	}

	out, err := h.usecase.DeleteFromForm(c.Request.Context(), intent, c.Param("id"))
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOutcome(out))
}

func parseIntentParam(c *gin.Context) (usecase.Intent, bool) {
	intent, err := usecase.ParseIntent(c.Param("intent"))
	if err != nil {
		zap.L().Info("[form][handler] unknown intent", zap.String("intent", c.Param("intent")))
		c.JSON(errInvalidIntent.HTTPStatus, errInvalidIntent.ToHTTPError())
		return "", false
	}
	return intent, true
}

func mapFormError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Work order form is invalid", err, http.StatusUnprocessableEntity).WithDetails(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidIntent):
		return errInvalidIntent
	case errors.Is(err, usecase.ErrSubmitDisabled):
		return pkg.NewDomainErrorSimple("SUBMIT_DISABLED", "Work order is read only in this form", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeleteNotAllowed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_ALLOWED", "Only finalized work orders can be deleted from the details form", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
