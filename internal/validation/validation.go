package validation

import (
	"fmt"
	"strings"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator evaluates the declarative rule set attached to a request type and
// reports field-level violations. A nil result means the request is valid.
type Validator struct {
	validate *validator.Validate
}

// New constructs the process-wide Validator, registering the enum-membership
// and phone-format rules on top of the standard tag set.
func New(phone *PhoneValidator) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}

	must("brand", func(fl validator.FieldLevel) bool {
		return domain.Brand(fl.Field().String()).IsValid()
	})
	must("storageunit", func(fl validator.FieldLevel) bool {
		return domain.StorageUnit(fl.Field().String()).IsValid()
	})
	must("systemtype", func(fl validator.FieldLevel) bool {
		return domain.SystemType(fl.Field().String()).IsValid()
	})
	must("casetype", func(fl validator.FieldLevel) bool {
		return domain.CaseType(fl.Field().String()).IsValid()
	})
	must("ramsize", func(fl validator.FieldLevel) bool {
		return domain.RAMSize(fl.Field().Int()).IsValid()
	})
	must("pagesize", func(fl validator.FieldLevel) bool {
		return pagination.PageSize(fl.Field().Int()).IsValid()
	})
	must("sortcolumn", func(fl validator.FieldLevel) bool {
		return domain.ProductSortColumn(fl.Field().String()).IsValid()
	})
	must("sortdirection", func(fl validator.FieldLevel) bool {
		return pagination.SortDirection(fl.Field().String()).IsValid()
	})
	must("dgt0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.GreaterThan(decimal.Zero)
	})
	must("intlphone", func(fl validator.FieldLevel) bool {
		return phone.Valid(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate runs the request's rule set. It returns nil when valid, otherwise a
// Validation-kind error aggregating the violations in rule-evaluation order.
func (v *Validator) Validate(req any) *apperrors.Error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable for non-struct input, which is a programming error.
		return apperrors.NewValidation(apperrors.Violation{
			Code:    "Validation.Invalid",
			Message: err.Error(),
		})
	}

	violations := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperrors.Violation{
			Code:    violationCode(fe),
			Message: violationMessage(fe),
		})
	}
	return apperrors.NewValidation(violations...)
}

// violationCode derives the stable violation code from the field's struct
// namespace, dropping the embedded ComputerRequest segment so laptop and
// desktop payloads report e.g. "LaptopRequest.Name".
func violationCode(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	return strings.Replace(ns, "ComputerRequest.", "", 1)
}

func violationMessage(fe validator.FieldError) string {
	field := fe.StructField()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fieldLabel(field))
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters.", fieldLabel(field), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", fieldLabel(field), fe.Param())
	case "email":
		return "Enter a valid email address."
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fieldLabel(field), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", fieldLabel(field), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", fieldLabel(field), fe.Param())
	case "dgt0":
		return "Price must be greater than zero."
	case "brand":
		return "Processor brand is invalid."
	case "storageunit":
		return "Storage unit is invalid."
	case "systemtype":
		return "Operating system is invalid."
	case "casetype":
		return "Case type is invalid."
	case "ramsize":
		return "RAM size is invalid."
	case "pagesize":
		return "Invalid page size."
	case "sortcolumn":
		return "Sort column is invalid."
	case "sortdirection":
		return "Sort direction is invalid."
	case "intlphone":
		return "Enter a valid phone number in international format (e.g., +48...)."
	default:
		return fmt.Sprintf("%s is invalid.", fieldLabel(field))
	}
}

// fieldLabel splits a CamelCase field name into words for messages, keeping
// consecutive capitals together ("RAMSize" -> "RAM Size").
func fieldLabel(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && isUpper(r) && (!isUpper(runes[i-1]) || (i+1 < len(runes) && !isUpper(runes[i+1]))) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
