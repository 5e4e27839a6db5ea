package handlers

import (
	"errors"
	"net/http"

	request "mecanica_workorders/internal/adapter/http/dto/request"
	response "mecanica_workorders/internal/adapter/http/dto/response"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPageQuery = pkg.NewDomainErrorSimple("INVALID_PAGE_QUERY", "Invalid paging parameters", http.StatusBadRequest)
)

// WorkOrderHandler serves the work order listing.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// List godoc
// @Summary      List work orders, newest first by default
// @Tags         work-orders
// @Produce      json
// @Param        page       query  int     false  "Page (0 based)"
// @Param        page_size  query  int     false  "Page size"
// @Param        order      query  string  false  "asc | desc"
// @Success      200  {object}  response.WorkOrderPageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPageQuery.HTTPStatus, errInvalidPageQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.ToFilter(entities.SortDesc))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrderPage(page))
}

// GetByID godoc
// @Summary      Get a work order
// @Tags         work-orders
// @Produce      json
// @Param        id  path  string  true  "Work order id"
// @Success      200  {object}  response.WorkOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
