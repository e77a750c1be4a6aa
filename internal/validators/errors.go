package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrRequiredFieldMissing = errors.New("required field is missing")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidField         = errors.New("invalid field")
)
