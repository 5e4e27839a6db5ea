package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_workorders/internal/adapter/http/handlers/mocks"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/work-orders", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders?order=sideways", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/work-orders", h.List)

		want := entities.PageFilter{Page: 0, PageSize: entities.DefaultPageSize, Order: entities.SortDesc}
		uc.EXPECT().List(gomock.Any(), want).Return(entities.Page[entities.WorkOrder]{
			Data:       []entities.WorkOrder{{ID: "9", Status: entities.WorkOrderStatusOpen}},
			TotalCount: 1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		h := NewWorkOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/work-orders", h.List)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(entities.Page[entities.WorkOrder]{}, errors.New("scan failed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/work-orders?page=1&page_size=5&order=asc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	h := NewWorkOrderHandler(uc)

	r := gin.New()
	r.GET("/v1/work-orders/:id", h.GetByID)

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)
	uc.EXPECT().GetByID(gomock.Any(), "9").Return(entities.WorkOrder{ID: "9"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/9", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapWorkOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidWorkOrderID, http.StatusBadRequest},
		{usecase.ErrWorkOrderNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapWorkOrderError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
