package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"bizops/pkg/apperr"
)

var setupOnce sync.Once

// Setup registers the custom rules on gin's validator engine so that
// `binding:"..."` tags on request DTOs can use them:
//
//	notblank  string is non-empty after trimming
//	present   Number was supplied (zero counts, unlike required)
//	percent   Number within [0,100]
//
// Field names in errors are the json names.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		v.RegisterCustomTypeFunc(numberValue, Number{})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("present", func(validator.FieldLevel) bool { return true })
		_ = v.RegisterValidation("percent", isPercent)
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// numberValue exposes a Number to the validator: nil when absent (so the
// first rule, `present`, reports the field as missing), the float when it
// parsed, and the raw string otherwise so numeric rules fail.
func numberValue(field reflect.Value) interface{} {
	n, ok := field.Interface().(Number)
	if !ok || !n.set {
		return nil
	}
	if !n.ok {
		return n.raw
	}
	return n.value
}

func isPercent(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float64 {
		return false
	}
	v := f.Float()
	return v >= 0 && v <= 100
}

// ==================== Error translation ====================

// Translate turns a binding error into a 400 AppError whose message names the
// offending field.
func Translate(err error) *apperr.AppError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.BadRequest(fieldMessage(verrs[0]))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.BadRequest(fmt.Sprintf("%s must be %s", typeErr.Field, typeName(typeErr.Type)))
	}

	return apperr.BadRequest("invalid request body")
}

// TranslateQuery is Translate for query binding. Form binding reports bad
// scalars as bare strconv errors, so the field is recovered by matching the
// rejected text against the query values bound into target.
func TranslateQuery(err error, target interface{}, query url.Values) *apperr.AppError {
	if err == nil {
		return nil
	}

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		return Translate(err)
	}
	if name, t, ok := formField(reflect.TypeOf(target), query, numErr.Num); ok {
		return apperr.BadRequest(fmt.Sprintf("%s must be %s", name, typeName(t)))
	}
	return apperr.BadRequest("invalid query parameter")
}

// formField finds the form-tagged scalar field whose query value is raw,
// looking through embedded structs.
func formField(t reflect.Type, query url.Values, raw string) (string, reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", nil, false
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			if name, ft, ok := formField(f.Type, query, raw); ok {
				return name, ft, true
			}
			continue
		}
		name := strings.Split(f.Tag.Get("form"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.String || ft.Kind() == reflect.Struct {
			continue
		}
		for _, v := range query[name] {
			if v == raw {
				return name, ft, true
			}
		}
	}
	return "", nil, false
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "present":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "percent":
		return field + " must be a number between 0 and 100"
	case "email":
		return field + " must be a valid email address"
	case "uuid", "uuid4":
		return field + " must be a valid uuid"
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "valid"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "valid"
	}
}
