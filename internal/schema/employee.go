package schema

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var cents = decimal.NewFromInt(100)

type EmployeeRecord struct {
	ExternalID      string
	FirstName       string
	LastName        string
	Email           *string
	HourlyRateCents int
	Active          bool
}

// ParseEmployeeRow normalizes one raw employee row. Names default to empty
// strings, a blank email becomes nil, and the hourly rate is converted to
// integer cents with half-up rounding so 24.995 becomes 2500, not 2499.
func ParseEmployeeRow(row map[string]any) (EmployeeRecord, []FieldError) {
	var errs []FieldError
	var rec EmployeeRecord

	rec.ExternalID = stringField(row, "external_id")
	if rec.ExternalID == "" {
		errs = append(errs, FieldError{Field: "external_id", Message: "External ID is required"})
	}

	rec.FirstName = stringField(row, "first_name")
	rec.LastName = stringField(row, "last_name")

	if email := stringField(row, "email"); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
		} else {
			lowered := strings.ToLower(email)
			rec.Email = &lowered
		}
	}

	rate := stringField(row, "hourly_rate")
	d, err := decimal.NewFromString(rate)
	switch {
	case rate == "" || err != nil:
		errs = append(errs, FieldError{Field: "hourly_rate", Message: "Hourly rate must be a number"})
	case d.IsNegative():
		errs = append(errs, FieldError{Field: "hourly_rate", Message: "Hourly rate must not be negative"})
	default:
		rec.HourlyRateCents = int(d.Mul(cents).Round(0).IntPart())
	}

	active := stringField(row, "active")
	parsed, err := strconv.ParseBool(strings.ToLower(active))
	if err != nil {
		errs = append(errs, FieldError{Field: "active", Message: "Active must be true or false"})
	}
	rec.Active = parsed

	if len(errs) > 0 {
		return EmployeeRecord{}, errs
	}
	return rec, nil
}
