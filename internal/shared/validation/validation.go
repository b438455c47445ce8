package validation

import (
	"errors"
	"net/http"
	"reflect"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/shared/response"
)

// FieldError is the wire shape of a single validation failure.
type FieldError struct {
	Property       string      `json:"property"`
	Error          string      `json:"error"`
	AttemptedValue interface{} `json:"attemptedValue"`
}

// Respond converts a request-validation error into the structured 400
// body and reports whether it handled the error. Non-validation errors
// are left for the caller.
func Respond(c *gin.Context, req interface{}, err error) bool {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return false
	}

	response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", Translate(req, verrs))
	return true
}

// Translate flattens ozzo validation.Errors into a deterministic list,
// pairing each failed property with the value the caller sent.
func Translate(req interface{}, verrs validation.Errors) []FieldError {
	properties := make([]string, 0, len(verrs))
	for property := range verrs {
		properties = append(properties, property)
	}
	sort.Strings(properties)

	out := make([]FieldError, 0, len(properties))
	for _, property := range properties {
		out = append(out, FieldError{
			Property:       property,
			Error:          verrs[property].Error(),
			AttemptedValue: attemptedValue(req, property),
		})
	}
	return out
}

// attemptedValue looks up a struct field by its json tag name.
func attemptedValue(req interface{}, property string) interface{} {
	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = t.Field(i).Name
		}
		if name != property {
			continue
		}

		field := v.Field(i)
		for field.Kind() == reflect.Ptr {
			if field.IsNil() {
				return nil
			}
			field = field.Elem()
		}
		return field.Interface()
	}
	return nil
}
