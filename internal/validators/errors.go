package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidTitle      = errors.New("title may contain only letters, digits, '-' and '_'")
	ErrInvalidColor      = errors.New("color must be a #RRGGBB hex value")
	ErrEmptyName         = errors.New("name is required")
	ErrInvalidChannel    = errors.New("unsupported channel type")
	ErrEmptyInstanceName = errors.New("instance name is required")
	ErrInvalidInstance   = errors.New("instance name must not contain spaces or slashes")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
)
