package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/blogs/pkg/httpx"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !isValidationErrors(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

// formatFieldError phrases a failure to follow the field name, matching the
// domain validation messages ("title can't be blank").
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "can't be blank"
	case "email", "url", "uuid", "uuid4":
		return "is invalid"
	case "min", "gte":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("is too short (minimum is %s characters)", e.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "max", "lte":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("is too long (maximum is %s characters)", e.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "numeric":
		return "is not a number"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("is invalid (%s)", e.Tag())
	}
}

// DecodeRequest decodes the JSON request body into T. A malformed body gets a
// 400 response; a well-formed body with a wrongly typed field gets the 422
// fields response naming that field. Unknown fields are ignored.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func DecodeRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			httpx.ValidationFailed(w, map[string]string{typeErr.Field: "is invalid"})
			return nil, false
		}
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return nil, false
	}
	return &req, true
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	req, ok := DecodeRequest[T](w, r)
	if !ok {
		return nil, false
	}
	if err := Validate(req); err != nil {
		httpx.ValidationFailed(w, FormatValidationErrors(err))
		return nil, false
	}
	return req, true
}
