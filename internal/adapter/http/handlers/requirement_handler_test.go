package handlers

import (
	"errors"
	"net/http"
	"testing"

	"estimate_agent/internal/adapter/http/handlers/mocks"
	"estimate_agent/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequirementHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIRequirementUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRequirementUseCase(ctrl)
		h := NewRequirementHandler(uc)
		r := gin.New()
		r.POST("/v1/requirements", h.Submit)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newRouter(t)

		w := serve(r, http.MethodPost, "/v1/requirements", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{}, usecase.ErrDescriptionRequired)

		w := serve(r, http.MethodPost, "/v1/requirements", `{"description":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeEnvelope(t, w)
		if body["success"] != false {
			t.Fatalf("expected failure envelope, got %v", body)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmitResult{}, errors.New("insert failed"))

		w := serve(r, http.MethodPost, "/v1/requirements", `{"description":"a crm"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Submit(gomock.Any(), usecase.SubmitRequirementInput{
			Description:  "We need a CRM for our sales team",
			Organization: "Acme",
			SessionID:    "sess-1",
		}).Return(usecase.SubmitResult{
			EstimateID:    "est-1",
			SessionID:     "sess-1",
			Status:        usecase.SubmitStatusSuccess,
			Message:       "Questions generated successfully",
			Category:      "CRM",
			QuestionCount: 6,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/requirements",
			`{"description":" We need a CRM for our sales team ","organization":"Acme","session_id":"sess-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		data := decodeEnvelope(t, w)["data"].(map[string]any)
		if data["id"] != "est-1" || data["question_count"] != float64(6) {
			t.Fatalf("unexpected data: %v", data)
		}
	})
}
