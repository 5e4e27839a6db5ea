package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithDetails(t *testing.T) {
	e := NewDomainErrorSimple("INVALID_FORM", "Invalid form", http.StatusUnprocessableEntity).
		WithDetails(map[string]string{"plate": "invalid plate"})

	if e.Error() != "INVALID_FORM: Invalid form" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
	if got := e.ToHTTPError().Details["plate"]; got != "invalid plate" {
		t.Fatalf("unexpected details: %+v", e.ToHTTPError())
	}
}
