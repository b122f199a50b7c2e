package http

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

var reAddr = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

// normalizeAddr lowercases a 0x address; checksummed input is accepted
// as-is from wallets and compared case-insensitively everywhere.
func normalizeAddr(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func validAddr(s string) bool { return reAddr.MatchString(normalizeAddr(s)) }

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// participant address = 0x + 40 hex chars
	_ = v.RegisterValidation("ethaddr", func(fl validator.FieldLevel) bool {
		return validAddr(fl.Field().String())
	})
	// decimal amount given as a string, must parse and be positive
	_ = v.RegisterValidation("decpos", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "ethaddr":
			out = append(out, FieldError{Field: field, Message: "must be a 0x-prefixed 40-hex address"})
		case "decpos":
			out = append(out, FieldError{Field: field, Message: "must be a positive decimal string"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: "is invalid (" + e.Tag() + ")"})
		}
	}
	return out
}
