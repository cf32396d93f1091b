package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	usecaseErrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
	"github.com/johnquangdev/meeting-analyzer/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID returns the request ID assigned by the RequestID middleware,
// or the one the client sent
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// ErrorHandler renders errors returned from middleware and unmatched routes
// in the same shape as HandleError
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if stdErrors.As(err, &httpErr) {
			code := errors.ErrorCode_INTERNAL
			switch httpErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				code = errors.ErrorCode_NOT_FOUND
			case http.StatusUnauthorized:
				code = errors.ErrorCode_UNAUTHENTICATED
			case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
				code = errors.ErrorCode_INVALID_ARGUMENT
			}
			err = errors.AppError{
				HTTPCode: httpErr.Code,
				Code:     code,
				Message:  http.StatusText(httpErr.Code),
				Raw:      httpErr.Internal,
			}
		}

		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}

// toAppError translates usecase sentinels into AppErrors. id is the path ID
// the request referred to, if any.
func toAppError(err error, id string) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials()
	case stdErrors.Is(err, usecaseErrors.ErrUnauthenticated):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return errors.ErrForbidden("Task is not assigned to you")
	case stdErrors.Is(err, usecaseErrors.ErrTaskNotFound):
		return errors.ErrTaskNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrTaskLocked):
		return errors.ErrTaskLocked(id)
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrMissingFile):
		return errors.ErrMissingAudioFile()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		e := errors.ErrInvalidArgument("Invalid input")
		e.Raw = err
		return e
	default:
		return errors.ErrInternal(err)
	}
}

// validationError wraps a bind or validate failure as a 400
func validationError(err error) error {
	e := errors.ErrInvalidPayload()
	e.Raw = stdErrors.New(validator.Describe(err))
	return e
}

// parseID reads a positive integer path parameter
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidArgument("invalid " + name + ": " + raw)
	}
	return uint(id), nil
}
