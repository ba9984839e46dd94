package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/crewboard/crewboard/internal/app/models/dto"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
)

// validate is the shared validator instance. Field names in error output
// come from the json tags so they match the wire contract.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// messageFor maps a validator tag to a user-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "não pode ser vazio"
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	default:
		return fmt.Sprintf("valor inválido (%s)", fe.Tag())
	}
}

// collect translates validator output into the per-field error list.
func collect(err error) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), messageFor(fe))
		}
		return verr
	}
	verr.Add("", err.Error())
	return verr
}

// ValidateCreate checks a create payload: required fields, email format and
// the certificate rule. Returns nil or a *apperrors.ValidationError.
func ValidateCreate(req *dto.CreateAlunoRequest) error {
	var verr *apperrors.ValidationError
	if err := validate.Struct(req); err != nil {
		verr = collect(err)
	} else {
		verr = apperrors.NewValidationError()
	}

	// Business rule enforced server-side: only crew members hold the
	// onboard certificate.
	if req.Certificado && !req.Tripulante {
		verr.Add("certificado", "aluno não pode ter certificado se não for tripulante")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ValidateUpdate checks only the supplied fields of a partial payload.
// The cross-field certificate rule needs the stored record and is applied
// by the service after merging.
func ValidateUpdate(req *dto.UpdateAlunoRequest) error {
	if err := validate.Struct(req); err != nil {
		verr := collect(err)
		if verr.HasErrors() {
			return verr
		}
	}
	return nil
}
