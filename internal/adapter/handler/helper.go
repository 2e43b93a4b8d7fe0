package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/errors"
	"github.com/johnquangdev/hcp-crm/internal/adapter/dto/common"
	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	"github.com/johnquangdev/hcp-crm/internal/infrastructure/database"
	pkgvalidator "github.com/johnquangdev/hcp-crm/pkg/validator"
)

// responder is embedded by every handler; it owns response logging and
// decides whether raw causes may reach the client.
type responder struct {
	logger     *zap.Logger
	production bool
}

func newResponder(logger *zap.Logger, production bool) responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return responder{logger: logger, production: production}
}

// getRequestID reads the request id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// handleSuccess writes data with the given status code
func (r responder) handleSuccess(c echo.Context, status int, data interface{}) error {
	r.logger.Debug("http.response.success",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Int("status", status),
	)
	return c.JSON(status, data)
}

// handleError centralizes error translation and logging
func (r responder) handleError(c echo.Context, err error) error {
	appErr := toAppError(err)

	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Stringer("app_code", appErr.Code),
		zap.Int("status", appErr.HTTPCode),
		zap.Error(err),
	}
	if len(appErr.Details) > 0 {
		fields = append(fields, zap.Any("details", appErr.Details))
	}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		r.logger.Error("http.response.error", fields...)
	} else {
		r.logger.Warn("http.response.error", fields...)
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Message,
	}
	for _, f := range appErr.Fields {
		body.Fields = append(body.Fields, common.FieldError{Field: f.Field, Rule: f.Rule, Message: f.Message})
	}
	if appErr.Raw != nil && !r.production {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps errors without a dedicated handler branch
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var verr *entities.ValidationError
	if stdErrors.As(err, &verr) {
		return errors.ErrValidation(fieldErrors(verr))
	}

	if violations := pkgvalidator.Violations(err); violations != nil {
		fields := make([]errors.FieldError, 0, len(violations))
		for _, v := range violations {
			fields = append(fields, errors.FieldError{Field: v.Field, Rule: v.Rule, Message: v.Message})
		}
		return errors.ErrValidation(fields)
	}

	if stdErrors.Is(err, database.ErrPoolUnavailable) {
		return errors.ErrDBUnavailable(err)
	}

	return errors.ErrInternal(err)
}

// storeError translates a failure from the storage path of operation
func storeError(operation string, err error) errors.AppError {
	if stdErrors.Is(err, database.ErrPoolUnavailable) {
		return errors.ErrDBUnavailable(err)
	}
	var verr *entities.ValidationError
	if stdErrors.As(err, &verr) {
		return errors.ErrValidation(fieldErrors(verr))
	}
	return errors.ErrDBQueryFailed(operation, err)
}

func fieldErrors(verr *entities.ValidationError) []errors.FieldError {
	fields := make([]errors.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, errors.FieldError{Field: f.Field, Rule: f.Rule, Message: f.Message})
	}
	return fields
}
