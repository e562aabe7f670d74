package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "estimate_agent/internal/adapter/http/dto/request"
	response "estimate_agent/internal/adapter/http/dto/response"
	"estimate_agent/internal/usecase"
	"estimate_agent/pkg"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	usecase usecase.IQuestionUseCase
}

func NewQuestionHandler(uc usecase.IQuestionUseCase) *QuestionHandler {
	return &QuestionHandler{usecase: uc}
}

// List godoc
// @Summary      List clarifying questions
// @Tags         questions
// @Produce      json
// @Param        session_id  query     string  true  "Wizard session id"
// @Success      200         {object}  response.Envelope{data=response.QuestionsResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      410         {object}  pkg.HTTPError
// @Router       /v1/questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		writeError(c, errMissingSessionID)
		return
	}

	estimate, questions, err := h.usecase.ListBySession(withSession(c, sessionID), sessionID)
	if err != nil {
		writeError(c, mapQuestionError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuestions(estimate, questions)))
}

// Answer godoc
// @Summary      Answer a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question_id  path      string                 true  "Question id"
// @Param        body         body      request.AnswerRequest  true  "Answer"
// @Success      200          {object}  response.Envelope{data=response.AnswerResponse}
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /v1/questions/{question_id}/answer [post]
func (h *QuestionHandler) Answer(c *gin.Context) {
	var payload request.AnswerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	sessionID := payload.ResolveSessionID()
	if sessionID == "" {
		writeError(c, errMissingSessionID)
		return
	}
	questionID := strings.TrimSpace(c.Param("question_id"))

	remaining, err := h.usecase.Answer(withSession(c, sessionID), sessionID, questionID, payload.ResolveAnswer())
	if err != nil {
		writeError(c, mapQuestionError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.AnswerResponse{
		SessionID:          sessionID,
		QuestionID:         questionID,
		RemainingQuestions: remaining,
	}))
}

func mapQuestionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errMissingSessionID
	case errors.Is(err, usecase.ErrAnswerRequired):
		return pkg.NewDomainErrorSimple("MISSING_ANSWER", "Answer is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return pkg.NewDomainErrorSimple("QUESTION_NOT_FOUND", "Question not found", http.StatusNotFound)
	default:
		return mapEstimateError(err)
	}
}
