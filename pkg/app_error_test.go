package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainErrorSimple(t *testing.T) {
	e := NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	if !e.Operational {
		t.Fatalf("expected operational error")
	}
	body := e.ToHTTPError()
	if body.Success || body.Error.Code != http.StatusNotFound || body.Error.Reason != "ESTIMATE_NOT_FOUND" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if e.Error() != "ESTIMATE_NOT_FOUND: Estimate not found" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
}

func TestNewDomainError_WrapsCause(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if e.Operational {
		t.Fatalf("expected non-operational error")
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if got := e.ToHTTPError().Error.Message; got != "An internal error occurred" {
		t.Fatalf("cause leaked into message: %s", got)
	}
}

func TestToHTTPError_DefaultsStatus(t *testing.T) {
	e := &AppError{Code: "X", Message: "x"}
	if got := e.ToHTTPError().Error.Code; got != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got)
	}
}
