package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the validator instance shared by every request validator.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// Report field names from the json tag so error maps match the payload
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// CheckStruct runs struct-tag validation and flattens failures into a
// field -> message map for ValidationErrorResponse.
func CheckStruct(s interface{}) map[string]string {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request data!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errors[fieldErr.Field()] = fmt.Sprintf("%s is required!", fieldErr.Field())
		case "email":
			errors[fieldErr.Field()] = "Invalid email address!"
		case "min":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be at least %s characters!", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			errors[fieldErr.Field()] = fmt.Sprintf("%s must be one of: %s!", fieldErr.Field(), fieldErr.Param())
		default:
			errors[fieldErr.Field()] = fmt.Sprintf("%s is invalid!", fieldErr.Field())
		}
	}
	return errors
}
