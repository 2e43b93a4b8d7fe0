package handler

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/errors"
	dto "github.com/johnquangdev/hcp-crm/internal/adapter/dto/interaction"
	"github.com/johnquangdev/hcp-crm/internal/adapter/presenter"
	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	interactionuc "github.com/johnquangdev/hcp-crm/internal/usecase/interaction"
)

// Interaction handles the interaction logging endpoints
type Interaction struct {
	responder
	svc interactionuc.Service
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(svc interactionuc.Service, logger *zap.Logger, production bool) *Interaction {
	return &Interaction{responder: newResponder(logger, production), svc: svc}
}

// CreateInteraction logs a new HCP interaction
// @Summary      Log an interaction
// @Description  Validates the record and stores it. hcp_sentiment defaults to Unknown.
// @Tags         Interactions
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateInteractionRequest    true  "Interaction record"
// @Success      201      {object}  dto.CreateInteractionResponse
// @Failure      400      {object}  common.ErrorResponse  "Malformed JSON body"
// @Failure      422      {object}  common.ErrorResponse  "Field validation failed"
// @Failure      500      {object}  common.ErrorResponse  "Database error"
// @Failure      503      {object}  common.ErrorResponse  "Connection pool unavailable"
// @Router       /interactions [post]
func (h *Interaction) CreateInteraction(c echo.Context) error {
	var raw map[string]any
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return h.handleError(c, errors.ErrInvalidPayload(err))
	}
	if raw == nil {
		return h.handleError(c, errors.ErrInvalidPayload(fmt.Errorf("body must be a JSON object")))
	}

	record, err := entities.ParseInteractionRecord(raw)
	if err != nil {
		return h.handleError(c, err)
	}
	if err := c.Validate(&record); err != nil {
		return h.handleError(c, err)
	}

	created, err := h.svc.CreateInteraction(c.Request().Context(), record)
	if err != nil {
		return h.handleError(c, storeError("create_interaction", err))
	}

	return h.handleSuccess(c, http.StatusCreated, presenter.ToCreateInteractionResponse(created))
}

// ListInteractions returns stored interactions, most recent first
// @Summary      List interactions
// @Description  Ordered by interaction_datetime descending. No total count is returned.
// @Tags         Interactions
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"  default(0)  minimum(0)
// @Param        limit  query     int  false  "Page size"     default(100)  minimum(0)
// @Success      200    {array}   dto.InteractionResponse
// @Failure      422    {object}  common.ErrorResponse  "Invalid skip or limit"
// @Failure      500    {object}  common.ErrorResponse  "Database error"
// @Failure      503    {object}  common.ErrorResponse  "Connection pool unavailable"
// @Router       /interactions [get]
func (h *Interaction) ListInteractions(c echo.Context) error {
	req := dto.ListInteractionsRequest{
		Skip:  interactionuc.DefaultSkip,
		Limit: interactionuc.DefaultLimit,
	}
	bindErrs := echo.QueryParamsBinder(c).
		FailFast(false).
		Int("skip", &req.Skip).
		Int("limit", &req.Limit).
		BindErrors()
	if len(bindErrs) > 0 {
		return h.handleError(c, errors.ErrValidation(bindingFieldErrors(bindErrs)))
	}

	items, err := h.svc.ListInteractions(c.Request().Context(), req.Skip, req.Limit)
	if err != nil {
		return h.handleError(c, storeError("list_interactions", err))
	}

	return h.handleSuccess(c, http.StatusOK, presenter.ToInteractionListResponse(items))
}

// GetInteraction returns one interaction
// @Summary      Get an interaction
// @Tags         Interactions
// @Produce      json
// @Param        id   path      int  true  "Interaction ID"
// @Success      200  {object}  dto.InteractionResponse
// @Failure      404  {object}  common.ErrorResponse  "Interaction not found"
// @Failure      422  {object}  common.ErrorResponse  "ID is not an integer"
// @Failure      500  {object}  common.ErrorResponse  "Database error"
// @Failure      503  {object}  common.ErrorResponse  "Connection pool unavailable"
// @Router       /interactions/{id} [get]
func (h *Interaction) GetInteraction(c echo.Context) error {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return h.handleError(c, errors.ErrValidation(bindingFieldErrors([]error{err})))
	}

	item, err := h.svc.GetInteraction(c.Request().Context(), id)
	if stdErrors.Is(err, entities.ErrInteractionNotFound) {
		return h.handleError(c, errors.ErrInteractionNotFound(id))
	}
	if err != nil {
		return h.handleError(c, storeError("get_interaction", err))
	}

	return h.handleSuccess(c, http.StatusOK, presenter.ToInteractionResponse(item))
}

func bindingFieldErrors(errs []error) []errors.FieldError {
	fields := make([]errors.FieldError, 0, len(errs))
	for _, err := range errs {
		field := ""
		var be *echo.BindingError
		if stdErrors.As(err, &be) {
			field = be.Field
		}
		fields = append(fields, errors.FieldError{
			Field:   field,
			Rule:    "int",
			Message: "Input should be a valid integer",
		})
	}
	return fields
}
