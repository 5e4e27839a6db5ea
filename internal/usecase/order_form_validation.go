package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

// ValidationError carries one message per invalid form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type orderFormInput struct {
	VehicleModel string `json:"vehicle_model" validate:"required"`
	Plate        string `json:"plate" validate:"required"`
}

var fieldMessages = map[string]string{
	"vehicle_model": "invalid vehicle model",
	"plate":         "invalid plate",
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateOrderForm trims the required fields and checks them.
func validateOrderForm(vehicleModel, plate string) (orderFormInput, error) {
	in := orderFormInput{
		VehicleModel: strings.TrimSpace(vehicleModel),
		Plate:        strings.TrimSpace(plate),
	}

	err := formValidator.Struct(in)
	if err == nil {
		return in, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return orderFormInput{}, err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "invalid " + fe.Field()
		}
		fields[fe.Field()] = msg
	}
	return orderFormInput{}, &ValidationError{Fields: fields}
}
