package handlers

import (
	"errors"
	"net/http"

	request "estimate_agent/internal/adapter/http/dto/request"
	response "estimate_agent/internal/adapter/http/dto/response"
	"estimate_agent/internal/usecase"
	"estimate_agent/pkg"

	"github.com/gin-gonic/gin"
)

// RequirementHandler receives the first wizard step.
type RequirementHandler struct {
	usecase usecase.IRequirementUseCase
}

func NewRequirementHandler(uc usecase.IRequirementUseCase) *RequirementHandler {
	return &RequirementHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit initial requirements
// @Description  Creates a draft estimate for the session and generates clarifying questions.
// @Tags         requirements
// @Accept       json
// @Produce      json
// @Param        body  body      request.RequirementRequest  true  "Requirements"
// @Success      201   {object}  response.Envelope{data=response.RequirementResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /v1/requirements [post]
func (h *RequirementHandler) Submit(c *gin.Context) {
	var payload request.RequirementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	in := payload.ToInput()
	result, err := h.usecase.Submit(withSession(c, in.SessionID), in)
	if err != nil {
		writeError(c, mapRequirementError(err))
		return
	}

	c.JSON(http.StatusCreated, response.OKWithMessage(response.FromSubmitResult(result), result.Message))
}

func mapRequirementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDescriptionRequired), errors.Is(err, usecase.ErrRequirementsRequired):
		return pkg.NewDomainErrorSimple("MISSING_DESCRIPTION", "Requirement description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errMissingSessionID
	default:
		return internalError(err)
	}
}
