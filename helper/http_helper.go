package helper

import (
	"errors"
	"net/http"

	"book-recommendation-api/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	textError = `error`
	textOk    = `success`
)

// Response is the generic envelope: {status, message, data?, error?}.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        zerolog.Logger
}

// NewHTTPHelper wires the gin validator with the custom rules and English
// translations.
func NewHTTPHelper(log zerolog.Logger) (*HTTPHelper, error) {
	v, trans, err := SetupValidator()
	if err != nil {
		return nil, err
	}
	return &HTTPHelper{Validate: v, Translator: trans, Log: log}, nil
}

// GetStatusCode ...
// Map a domain error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		validation   models.ErrorValidation
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(c *gin.Context, code int, res Response) {
	if len(res.Message) == 0 {
		res.Message = textOk
	}
	c.JSON(code, res)
}

// SendSuccess ...
// Send success envelope to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, code int, message string, data interface{}) {
	u.SendResponse(c, code, Response{Status: textOk, Message: message, Data: data})
}

// SendData writes payload as-is, without the envelope.
func (u *HTTPHelper) SendData(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, code int, message string, detail interface{}) {
	u.SendResponse(c, code, Response{Status: textError, Message: message, Error: detail})
}

// SendErrorFromErr translates err once into the matching status. Internal
// errors are logged and their details are not exposed.
func (u *HTTPHelper) SendErrorFromErr(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code >= http.StatusInternalServerError {
		u.Log.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		u.SendError(c, code, "internal server error", nil)
		return
	}

	var validation models.ErrorValidation
	if errors.As(err, &validation) && validation.Field != "" {
		u.SendError(c, code, "validation failed", map[string][]string{validation.Field: {validation.Message}})
		return
	}
	u.SendError(c, code, err.Error(), nil)
}

// SendBindError reports a request binding failure: validator failures are
// 422 with per-field messages, anything else (malformed body) is 400.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
		return
	}
	u.SendBadRequest(c, "invalid request: "+err.Error(), nil)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, detail interface{}) {
	u.SendError(c, http.StatusBadRequest, message, detail)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	for _, err := range validationErrors {
		errorResponse[err.Field()] = append(errorResponse[err.Field()], err.Translate(u.Translator))
	}
	u.SendError(c, http.StatusUnprocessableEntity, "validation failed", errorResponse)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	u.SendError(c, http.StatusUnauthorized, message, nil)
}

// SendForbiddenError ...
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string) {
	u.SendError(c, http.StatusForbidden, message, nil)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, message, nil)
}

// SendTooManyRequests ...
func (u *HTTPHelper) SendTooManyRequests(c *gin.Context) {
	u.SendError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
