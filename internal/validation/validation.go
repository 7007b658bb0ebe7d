package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return model.IsCategory(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag list, e.g. "required,category".
func ValidateVar(v interface{}, tag string) error {
	return validate.Var(v, tag)
}

// HasTag reports whether validationErrs contains a failure on field for tag.
func HasTag(validationErrs error, field, tag string) bool {
	errs, ok := validationErrs.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fieldErr := range errs {
		if fieldErr.Field() == field && fieldErr.Tag() == tag {
			return true
		}
	}
	return false
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := make(map[string]string)
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
