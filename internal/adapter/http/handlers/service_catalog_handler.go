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
	errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)
)

type ServiceCatalogHandler struct {
	usecase usecase.IServiceCatalogUseCase
}

func NewServiceCatalogHandler(uc usecase.IServiceCatalogUseCase) *ServiceCatalogHandler {
	return &ServiceCatalogHandler{usecase: uc}
}

// List godoc
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Param        page       query  int     false  "Page (0 based)"
// @Param        page_size  query  int     false  "Page size"
// @Param        order      query  string  false  "asc | desc"
// @Success      200  {object}  response.ServiceLinePageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /services [get]
func (h *ServiceCatalogHandler) List(c *gin.Context) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPageQuery.HTTPStatus, errInvalidPageQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.ToFilter(entities.SortAsc))
	if err != nil {
		appErr := mapServiceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceLinePage(page))
}

// Create godoc
// @Summary      Add a service to the catalog
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        payload  body  request.ServiceLineRequest  true  "Service"
// @Success      201  {object}  response.ServiceLineResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /services [post]
func (h *ServiceCatalogHandler) Create(c *gin.Context) {
	var payload request.ServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Create(c.Request.Context(), payload.Name, *payload.Price)
	if err != nil {
		appErr := mapServiceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceLine(s))
}

// GetByID godoc
// @Summary      Get a catalog service
// @Tags         services
// @Produce      json
// @Param        id  path  string  true  "Service id"
// @Success      200  {object}  response.ServiceLineResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *ServiceCatalogHandler) GetByID(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceLine(s))
}

func mapServiceCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceName), errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
