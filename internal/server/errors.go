package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"reqdoc/internal/render"
	"reqdoc/internal/structuring"
	"reqdoc/internal/templates"
)

// HTTPStatus returns the appropriate HTTP status code for a workflow error.
func HTTPStatus(err error) int {
	var (
		notFound  *templates.NotFoundError
		apiCall   *structuring.APICallError
		parse     *structuring.ParseError
		renderErr *render.RenderError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &apiCall), errors.As(err, &parse):
		return http.StatusBadGateway
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// validationMessage turns validator errors into field-level messages.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required", "min":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, ", ")
}

// lowerFirst maps a struct field name to its JSON casing.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
