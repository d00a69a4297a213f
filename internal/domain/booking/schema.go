package booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alankritha/salon-booking/internal/models"
)

// ======================================================
// DATETIME COERCION
// ======================================================

// Layouts accepted for preferred_datetime text: RFC 3339 with optional
// fraction and offset, plus naive date-time and date-only forms.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

func ParseDatetime(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDatetime
}

// CoercePreferredDatetime replaces a textual preferred_datetime in the
// payload with its parsed value. Absent or non-text values are left
// untouched; unparsable text fails with ErrBadDatetime before any schema
// validation runs.
func CoercePreferredDatetime(payload map[string]any) error {
	s, ok := payload["preferred_datetime"].(string)
	if !ok {
		return nil
	}
	t, err := ParseDatetime(s)
	if err != nil {
		return err
	}
	payload["preferred_datetime"] = t
	return nil
}

// ======================================================
// SCHEMA CONSTRUCTION
// ======================================================

// FromPayload builds a validated Booking from a loosely-structured client
// payload. All constraint violations are evaluated together and returned
// as a single *ValidationError. A client-supplied status is discarded; new
// bookings always start pending.
func FromPayload(payload map[string]any) (*models.Booking, error) {
	b := &models.Booking{Status: string(InitialStatus())}

	var fieldErrs []FieldError
	badType := make(map[string]bool)

	b.Name = stringField(payload, "name", &fieldErrs, badType)
	b.Phone = stringField(payload, "phone", &fieldErrs, badType)
	b.Email = stringField(payload, "email", &fieldErrs, badType)
	b.Service = stringField(payload, "service", &fieldErrs, badType)
	b.Notes = stringField(payload, "notes", &fieldErrs, badType)

	if raw, ok := payload["preferred_datetime"]; ok && raw != nil {
		if t, isTime := raw.(time.Time); isTime {
			b.PreferredDatetime = t
		} else {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   "preferred_datetime",
				Message: "must be a datetime",
			})
			badType["preferred_datetime"] = true
		}
	}

	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if badType[fe.Field()] {
				continue
			}
			fieldErrs = append(fieldErrs, FieldError{
				Field:   fe.Field(),
				Message: messageFor(fe),
			})
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	return b, nil
}

func stringField(payload map[string]any, key string, errs *[]FieldError, badType map[string]bool) string {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		*errs = append(*errs, FieldError{Field: key, Message: "must be a string"})
		badType[key] = true
		return ""
	}
	return s
}

// ======================================================
// VALIDATOR
// ======================================================

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name, matching the wire payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return fmt.Sprintf("value must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
