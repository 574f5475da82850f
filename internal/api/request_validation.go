package api

import (
	"errors"
	"strings"

	"github.com/SvenFlower/ai-flash-cards/internal/domain"
	"github.com/go-playground/validator/v10"
)

// violationCodes maps a request field's json name and the tag that
// failed on it onto the machine codes validation responses carry.
var violationCodes = map[string]map[string]string{
	"text":  {"required": domain.CodeTextTooShort},
	"name":  {"required": domain.CodeNameRequired, "max": domain.CodeNameTooLong},
	"front": {"required": domain.CodeFrontRequired, "max": domain.CodeFrontTooLong},
	"back":  {"required": domain.CodeBackRequired, "max": domain.CodeBackTooLong},
}

// requestViolations converts validator tag failures on a request struct
// into the same field-coded validation error the service layer reports,
// so clients see one shape no matter which layer rejected the input.
// Errors that are not tag failures pass through unchanged.
func requestViolations(err error) error {
	var tagErrs validator.ValidationErrors
	if !errors.As(err, &tagErrs) {
		return err
	}

	verr := &domain.ValidationError{}
	for _, fieldErr := range tagErrs {
		code, ok := violationCodes[fieldErr.Field()][fieldErr.Tag()]
		if !ok {
			code = strings.ToUpper(fieldErr.Field()) + "_INVALID"
		}
		verr.Add(fieldPath(fieldErr), code, violationMessage(fieldErr))
	}
	return verr
}

// fieldPath strips the root struct name from the violation namespace,
// leaving the json path as the client sent it, e.g.
// "accepted_cards[0].front".
func fieldPath(fieldErr validator.FieldError) string {
	ns := fieldErr.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " cannot be empty"
	case "max":
		return fieldErr.Field() + " is too long"
	default:
		return fieldErr.Field() + " is invalid"
	}
}
