package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/errors"
	dto "github.com/johnquangdev/hcp-crm/internal/adapter/dto/interaction"
	"github.com/johnquangdev/hcp-crm/internal/adapter/presenter"
	aiuse "github.com/johnquangdev/hcp-crm/internal/usecase/ai"
)

// AIController handles API endpoints that trigger AI processing
type AIController struct {
	responder
	svc aiuse.Service
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger, production bool) *AIController {
	return &AIController{responder: newResponder(logger, production), svc: svc}
}

// ProcessText extracts structured interaction details from free text
// @Summary      Extract interaction details from notes
// @Description  Sends the notes to the language model and returns whatever fields it could infer. Nothing is stored.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ProcessTextRequest  true  "Free-text interaction notes"
// @Success      200      {object}  dto.ExtractedInfoResponse
// @Failure      400      {object}  common.ErrorResponse  "Empty text or malformed body"
// @Failure      422      {object}  common.ErrorResponse  "Missing text field"
// @Failure      500      {object}  common.ErrorResponse  "AI service unavailable or extraction failed"
// @Router       /interactions/process-text [post]
func (ac *AIController) ProcessText(c echo.Context) error {
	var req dto.ProcessTextRequest
	if err := c.Bind(&req); err != nil {
		return ac.handleError(c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return ac.handleError(c, err)
	}

	info, err := ac.svc.ExtractInteraction(c.Request().Context(), *req.Text)
	switch {
	case err == nil:
		return ac.handleSuccess(c, http.StatusOK, presenter.ToExtractedInfoResponse(info))
	case stdErrors.Is(err, aiuse.ErrEmptyInput):
		return ac.handleError(c, errors.ErrEmptyText())
	case stdErrors.Is(err, aiuse.ErrModelUnavailable):
		return ac.handleError(c, errors.ErrAIServiceUnavailable("groq"))
	default:
		return ac.handleError(c, errors.ErrAIExtractionFailed())
	}
}
