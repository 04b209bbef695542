package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

// Client-facing messages, in French like the rest of the site.
const (
	msgInternal     = "Erreur interne du serveur"
	msgInvalidBody  = "Données invalides"
	msgPastDate     = "La date de réservation ne peut pas être dans le passé"
	msgDateFormat   = "Format de date invalide. Utilisez YYYY-MM-DD"
	msgRouteMissing = "Ressource non trouvée"
)

// Success is the envelope returned by every mutation.
type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Failure is the envelope returned for every error.
type Failure struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func ok(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Success{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string, details ...string) error {
	return c.JSON(status, Failure{Success: false, Error: message, Details: details})
}

// respondError maps a service error onto a status code and envelope.
// notFound is the resource specific 404 message.
func respondError(c echo.Context, err error, notFound string) error {
	var (
		verr  *service.ValidationError
		past  *service.PastDateError
		enum  *service.InvalidEnumError
		perr  *service.PersistenceError
		herr  *echo.HTTPError
		bound *bindError
	)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fail(c, http.StatusNotFound, notFound)
	case errors.As(err, &past):
		return fail(c, http.StatusBadRequest, msgPastDate)
	case errors.As(err, &verr):
		if verr.Field == "date" {
			return fail(c, http.StatusUnprocessableEntity, msgDateFormat)
		}
		return fail(c, http.StatusUnprocessableEntity, msgInvalidBody, verr.Error())
	case errors.As(err, &enum):
		return fail(c, http.StatusBadRequest, fmt.Sprintf("Statut invalide. Utilisez: %s", strings.Join(enum.Allowed, ", ")))
	case errors.As(err, &bound):
		return fail(c, bound.status, bound.message, bound.details...)
	case errors.As(err, &perr):
		// already logged by the service
		return fail(c, http.StatusInternalServerError, msgInternal)
	case errors.As(err, &herr):
		return err
	}
	c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	return fail(c, http.StatusInternalServerError, msgInternal)
}

// bindError carries a boundary failure (body or query) to respondError.
type bindError struct {
	status  int
	message string
	details []string
}

func (e *bindError) Error() string { return e.message }

// bindAndValidate decodes the JSON body into dst and runs the registered
// validator. Both failures are 422.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return &bindError{status: http.StatusUnprocessableEntity, message: msgInvalidBody, details: []string{bindDetail(err)}}
	}
	if err := c.Validate(dst); err != nil {
		var ve *validationErrors
		if errors.As(err, &ve) {
			return &bindError{status: http.StatusUnprocessableEntity, message: msgInvalidBody, details: ve.fields}
		}
		return &bindError{status: http.StatusUnprocessableEntity, message: msgInvalidBody, details: []string{err.Error()}}
	}
	return nil
}

func bindDetail(err error) string {
	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		return fmt.Sprint(herr.Message)
	}
	return err.Error()
}

// param reads name from the query string, falling back to a JSON body field.
// found is false when neither carries it.
func param(c echo.Context, name string) (value string, found bool) {
	if v := c.QueryParam(name); v != "" {
		return v, true
	}
	body := map[string]any{}
	if c.Request().ContentLength != 0 && strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
			return "", false
		}
	}
	switch v := body[name].(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// boolParam resolves a boolean parameter. Missing yields def (or a 422 when
// required); anything strconv cannot parse is a 400.
func boolParam(c echo.Context, name string, def *bool) (bool, error) {
	raw, found := param(c, name)
	if !found {
		if def == nil {
			return false, &bindError{status: http.StatusUnprocessableEntity, message: msgInvalidBody, details: []string{name + ": required"}}
		}
		return *def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &bindError{status: http.StatusBadRequest, message: fmt.Sprintf("Paramètre %s invalide: %q", name, raw)}
	}
	return v, nil
}

func statusParam(c echo.Context) (string, error) {
	st, found := param(c, "status")
	if !found {
		return "", &bindError{status: http.StatusUnprocessableEntity, message: msgInvalidBody, details: []string{"status: required"}}
	}
	return st, nil
}

// ErrorHandler renders framework errors (unknown route, bad method, body
// too large, timeouts) in the error envelope.
func ErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		message := msgInternal
		var herr *echo.HTTPError
		if errors.As(err, &herr) {
			status = herr.Code
			switch status {
			case http.StatusNotFound:
				message = msgRouteMissing
			case http.StatusInternalServerError:
			default:
				message = fmt.Sprint(herr.Message)
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = fail(c, status, message)
		}
		if werr != nil {
			logger.Errorf("error handler: %v", werr)
		}
	}
}

func boolPtr(b bool) *bool { return &b }
