package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_workorders/internal/adapter/http/handlers/mocks"
	"mecanica_workorders/internal/domain/entities"
	"mecanica_workorders/internal/usecase"
	"mecanica_workorders/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newFormRouter(h *WorkOrderFormHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/forms/:intent", h.OpenForm)
	r.GET("/v1/forms/:intent/:id", h.OpenForm)
	r.POST("/v1/forms/:intent", h.SubmitForm)
	r.POST("/v1/forms/:intent/:id", h.SubmitForm)
	r.DELETE("/v1/forms/:intent/:id", h.DeleteFromForm)
	return r
}

func TestWorkOrderFormHandler_OpenForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/archive/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("collaborator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		uc.EXPECT().OpenForm(gomock.Any(), usecase.IntentEdit, "9").Return(usecase.FormView{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/edit/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("view of finalized order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		order := entities.WorkOrder{ID: "9", Status: entities.WorkOrderStatusFinalized, Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().OpenForm(gomock.Any(), usecase.IntentView, "9").Return(usecase.FormView{
			Mode:       usecase.ResolveMode(usecase.IntentView, "9"),
			Title:      "Work order details",
			CanDelete:  true,
			DateLocked: true,
			Total:      decimal.Zero,
			Order:      &order,
			BackTo:     usecase.RouteBack,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/info/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["can_delete"] != true || body["can_submit"] != false || body["view_mode"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["back_to"] != "back" {
			t.Fatalf("expected back_to in body: %s", w.Body.String())
		}
	})

	t.Run("new form without id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		uc.EXPECT().OpenForm(gomock.Any(), usecase.IntentCreate, "").Return(usecase.FormView{
			Mode:         usecase.ResolveMode(usecase.IntentCreate, ""),
			Title:        "New work order",
			ConfirmLabel: "Save",
			CanSubmit:    true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/forms/new", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderFormHandler_SubmitForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/new", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/new", bytes.NewBufferString(`{"plate":"ABC123","vehicle_model":"CB500","date":"01/01/2023"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries field messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		verr := &usecase.ValidationError{Fields: map[string]string{"plate": "invalid plate"}}
		uc.EXPECT().SubmitForm(gomock.Any(), usecase.IntentCreate, "", gomock.Any()).Return(usecase.Outcome{}, verr)

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/new", bytes.NewBufferString(`{"plate":"  ","vehicle_model":"CB500"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Details["plate"] != "invalid plate" {
			t.Fatalf("expected plate detail, got %+v", body)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		created := entities.WorkOrder{ID: "wo-1", VehicleModel: "CB500", Plate: "ABC123", Status: entities.WorkOrderStatusOpen}
		uc.EXPECT().SubmitForm(gomock.Any(), usecase.IntentCreate, "", gomock.Any()).
			DoAndReturn(func(_ any, _ usecase.Intent, _ string, sub usecase.FormSubmission) (usecase.Outcome, error) {
				if len(sub.ServiceIDs) != 2 || sub.ServiceIDs[0] != "1" || sub.Plate != "ABC123" {
					t.Fatalf("unexpected submission: %+v", sub)
				}
				return usecase.Outcome{Route: usecase.RouteListing, Persisted: true, Order: created}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/new", bytes.NewBufferString(`{"service_ids":["1","2"],"plate":"ABC123","vehicle_model":"CB500"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["redirect_to"] != "/v1/work-orders" || body["persisted"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("finalize success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		updated := entities.WorkOrder{ID: "9", Status: entities.WorkOrderStatusFinalized}
		uc.EXPECT().SubmitForm(gomock.Any(), usecase.IntentFinalize, "9", gomock.Any()).
			Return(usecase.Outcome{Route: usecase.RouteListing, Persisted: true, Order: updated}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/finish/9", bytes.NewBufferString(`{"plate":"ABC123","vehicle_model":"CB500"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("view mode submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		uc.EXPECT().SubmitForm(gomock.Any(), usecase.IntentView, "9", gomock.Any()).Return(usecase.Outcome{}, usecase.ErrSubmitDisabled)

		req := httptest.NewRequest(http.MethodPost, "/v1/forms/info/9", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkOrderFormHandler_DeleteFromForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		uc.EXPECT().DeleteFromForm(gomock.Any(), usecase.IntentEdit, "9").Return(usecase.Outcome{}, usecase.ErrDeleteNotAllowed)

		req := httptest.NewRequest(http.MethodDelete, "/v1/forms/edit/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderFormUseCase(ctrl)
		r := newFormRouter(NewWorkOrderFormHandler(uc))

		deleted := entities.WorkOrder{ID: "9", Status: entities.WorkOrderStatusFinalized}
		uc.EXPECT().DeleteFromForm(gomock.Any(), usecase.IntentView, "9").
			Return(usecase.Outcome{Route: usecase.RouteListing, Persisted: true, Order: deleted}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/forms/info/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapFormError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&usecase.ValidationError{Fields: map[string]string{"plate": "invalid plate"}}, http.StatusUnprocessableEntity},
		{usecase.ErrInvalidIntent, http.StatusBadRequest},
		{usecase.ErrSubmitDisabled, http.StatusConflict},
		{usecase.ErrDeleteNotAllowed, http.StatusForbidden},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapFormError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
