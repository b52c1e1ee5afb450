package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "gameclub/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Envelope shapes follow the storefront API contract: {data} on success,
// {data, meta} for paginated lists, {message} on failure.

type Body struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Data: data})
}

func SuccessMessage(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Body{Message: message, Data: data})
}

func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Body{Message: message, Data: data})
}

func Paginated(c echo.Context, items interface{}, total int64, page, limit int) error {
	return c.JSON(http.StatusOK, Body{
		Data: items,
		Meta: &Meta{Total: total, Page: page, Limit: limit},
	})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, Body{Message: joinValidationMessages(validationErr)})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, Body{Message: appErr.Message})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, Body{Message: message})
	}

	return c.JSON(http.StatusInternalServerError, Body{Message: "An unexpected error occurred"})
}

func joinValidationMessages(validationErr validator.ValidationErrors) string {
	messages := make([]string, 0, len(validationErr))
	for _, fieldErr := range validationErr {
		field := strings.ToLower(fieldErr.Field())

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = field + " is required"
		case "email":
			message = field + " must be a valid email address"
		case "min":
			message = field + " must be at least " + fieldErr.Param()
		case "max":
			message = field + " must be at most " + fieldErr.Param()
		case "gte":
			message = field + " must be " + fieldErr.Param() + " or greater"
		case "oneof":
			message = field + " must be one of: " + fieldErr.Param()
		default:
			message = field + " is invalid"
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, ", ")
}
