package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nandomoreu/mercadillo/internal/apperror"
	usecasecontract "github.com/nandomoreu/mercadillo/internal/usecase/contract"
)

// AppValidator implements the usecasecontract.IValidator interface on top of
// go-playground/validator. Rule sets are plain values handed in per call, so
// there is no process-wide schema state.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// Validate checks every field named by the rule set against its constraint
// tags. Fields are walked in sorted order so failures come out in a stable
// order. The "eqfield=other" tag is resolved against the submitted values and
// only enforced when the referenced field carries a value.
func (av *AppValidator) Validate(values map[string]string, rules usecasecontract.Rules) error {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var details []apperror.FieldError
	for _, field := range fields {
		value := values[field]

		var varTags []string
		for _, part := range strings.Split(rules[field], ",") {
			if ref, ok := strings.CutPrefix(part, "eqfield="); ok {
				if values[ref] != "" && value != values[ref] {
					details = append(details, apperror.FieldError{
						Field:  field,
						Reason: fmt.Sprintf("must match %s", ref),
					})
				}
				continue
			}
			if part != "" {
				varTags = append(varTags, part)
			}
		}
		if len(varTags) == 0 {
			continue
		}

		if err := av.validate.Var(value, strings.Join(varTags, ",")); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					details = append(details, apperror.FieldError{
						Field:  field,
						Reason: reasonFor(fe),
					})
				}
			} else {
				details = append(details, apperror.FieldError{Field: field, Reason: "is invalid"})
			}
		}
	}

	if len(details) > 0 {
		return apperror.Validation(details)
	}
	return nil
}

// reasonFor turns a validator failure into an actionable message.
func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a well-formed email address"
	case "alphanum":
		return "must contain only letters and digits"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
