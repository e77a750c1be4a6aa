package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/go-playground/validator/v10"
)

// TagDiaryDate is the struct tag accepting RFC 3339 timestamps and
// YYYY-MM-DD dates.
const TagDiaryDate = "diarydate"

// InputValidator validates credentials and diary entry payloads using
// `validate` struct tags.
type InputValidator struct {
	validate *validator.Validate
}

// NewInputValidator builds an InputValidator with the custom tags registered.
// Reported field names follow the JSON names of the payload.
func NewInputValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	// registration only fails for an empty tag or a nil function
	_ = validate.RegisterValidation(TagDiaryDate, isDiaryDate)

	return &InputValidator{validate: validate}
}

func (v *InputValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.DiaryEntryInput:
		return v.validateStruct(ctx, value)
	case *models.DiaryEntryInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value)

	case models.User:
		return v.validateStruct(ctx, value)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errs = append(errs, fieldError(fieldErr))
	}

	return errors.Join(errs...)
}

func fieldError(fieldErr validator.FieldError) error {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, fieldErr.Field())
	case TagDiaryDate:
		return fmt.Errorf("%w: %s", ErrInvalidDate, fieldErr.Field())
	default:
		return fmt.Errorf("%w: %s (%s)", ErrInvalidField, fieldErr.Field(), fieldErr.Tag())
	}
}

func isDiaryDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDiaryDate(fl.Field().String())
	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
