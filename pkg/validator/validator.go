package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
)

// SentimentTag is the struct tag for closed sentiment values
const SentimentTag = "sentiment"

// Violation is one failed rule on one field, named by its JSON key
type Violation struct {
	Field   string
	Rule    string
	Message string
}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Empty means "not supplied" and is defaulted later
	_ = v.RegisterValidation(SentimentTag, func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || entities.Sentiment(s).IsValid()
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Violations flattens a validation error into per-field entries.
// It returns nil when err did not come from the validator.
func Violations(err error) []Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "max":
		return fmt.Sprintf("String should have at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Value should be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Value should be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Value should be less than or equal to %s", fe.Param())
	case SentimentTag:
		return "Input should be 'Positive', 'Neutral', 'Negative' or 'Unknown'"
	default:
		return fmt.Sprintf("Failed on the %q rule", fe.Tag())
	}
}
