package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "estimate_agent/internal/adapter/http/dto/request"
	response "estimate_agent/internal/adapter/http/dto/response"
	"estimate_agent/internal/domain/entities"
	"estimate_agent/internal/usecase"
	"estimate_agent/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the estimate of a wizard session and its line items.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListRecent godoc
// @Summary      List recent estimates
// @Tags         estimates
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of estimates"  default(5)
// @Success      200    {object}  response.Envelope{data=[]response.EstimateResponse}
// @Failure      400    {object}  pkg.HTTPError
// @Router       /v1/estimates [get]
func (h *EstimateHandler) ListRecent(c *gin.Context) {
	limit, err := request.ParseLimit(c.Query("limit"))
	if err != nil {
		writeError(c, invalidInput(err))
		return
	}

	estimates, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimates(estimates)))
}

// GetBySession godoc
// @Summary      Get the estimate of a session
// @Tags         estimates
// @Produce      json
// @Param        session_id  path      string  true  "Wizard session id"
// @Success      200         {object}  response.Envelope{data=response.EstimateResponse}
// @Failure      404         {object}  pkg.HTTPError
// @Failure      410         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id} [get]
func (h *EstimateHandler) GetBySession(c *gin.Context) {
	h.respondEstimate(c, h.usecase.GetBySessionID)
}

// ListItems godoc
// @Summary      List line items
// @Tags         estimates
// @Produce      json
// @Param        session_id  path      string  true  "Wizard session id"
// @Success      200         {object}  response.Envelope{data=[]response.EstimateItemResponse}
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/items [get]
func (h *EstimateHandler) ListItems(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	items, err := h.usecase.ListItems(withSession(c, sessionID), sessionID)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimateItems(items)))
}

// AddItems godoc
// @Summary      Add line items
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true  "Wizard session id"
// @Param        body        body      request.AddItemsRequest  true  "Items"
// @Success      201         {object}  response.Envelope{data=[]response.EstimateItemResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/items [post]
func (h *EstimateHandler) AddItems(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	var payload request.AddItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	items, err := payload.ResolveItems()
	if err != nil {
		writeError(c, invalidInput(err))
		return
	}

	created, err := h.usecase.AddItems(withSession(c, sessionID), sessionID, items)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromEstimateItems(created)))
}

// SelectItem godoc
// @Summary      Select or deselect a line item
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "Wizard session id"
// @Param        item_id     path      string                     true  "Item id"
// @Param        body        body      request.SelectItemRequest  true  "Selection"
// @Success      200         {object}  response.Envelope{data=response.ItemSelectionResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/items/{item_id} [patch]
func (h *EstimateHandler) SelectItem(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	var payload request.SelectItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	selected, err := payload.ResolveSelected()
	if err != nil {
		writeError(c, invalidInput(err))
		return
	}

	item, estimate, err := h.usecase.SelectItem(withSession(c, sessionID), sessionID, strings.TrimSpace(c.Param("item_id")), selected)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.ItemSelectionResponse{
		Item:        response.FromEstimateItem(item),
		TotalAmount: estimate.TotalAmount,
	}))
}

// RecalculateTotal godoc
// @Summary      Recalculate the estimate total
// @Tags         estimates
// @Produce      json
// @Param        session_id  path      string  true  "Wizard session id"
// @Success      200         {object}  response.Envelope{data=response.EstimateResponse}
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/total [post]
func (h *EstimateHandler) RecalculateTotal(c *gin.Context) {
	h.respondEstimate(c, h.usecase.RecalculateTotal)
}

// UpdateStatus godoc
// @Summary      Move the estimate to another wizard step
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true  "Wizard session id"
// @Param        body        body      request.UpdateStatusRequest  true  "Status"
// @Success      200         {object}  response.Envelope{data=response.EstimateResponse}
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/status [patch]
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, invalidInput(err))
		return
	}

	h.respondEstimate(c, func(ctx context.Context, sessionID string) (entities.Estimate, error) {
		return h.usecase.UpdateStatus(ctx, sessionID, status)
	})
}

// Finalize godoc
// @Summary      Finalize the estimate
// @Description  Marks the estimate completed and removes its expiry.
// @Tags         estimates
// @Produce      json
// @Param        session_id  path      string  true  "Wizard session id"
// @Success      200         {object}  response.Envelope{data=response.EstimateResponse}
// @Failure      404         {object}  pkg.HTTPError
// @Router       /v1/estimates/{session_id}/finalize [post]
func (h *EstimateHandler) Finalize(c *gin.Context) {
	h.respondEstimate(c, h.usecase.Finalize)
}

func (h *EstimateHandler) respondEstimate(
	c *gin.Context,
	load func(ctx context.Context, sessionID string) (entities.Estimate, error),
) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	estimate, err := load(withSession(c, sessionID), sessionID)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromEstimate(estimate)))
}

func sessionParam(c *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.Param("session_id"))
	if sessionID == "" {
		writeError(c, errMissingSessionID)
		return "", false
	}
	return sessionID, true
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errMissingSessionID
	case errors.Is(err, usecase.ErrInvalidItem):
		return invalidInput(err)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrRequirementsRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown estimate status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Estimate item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate status can only move forward", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateExpired):
		return pkg.NewDomainErrorSimple("ESTIMATE_EXPIRED", "Estimate has expired", http.StatusGone)
	default:
		return internalError(err)
	}
}
