package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/visa_office_app/internal/apperrors"
	"github.com/SscSPs/visa_office_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegisterEnum(v, "client_type", domain.ClientTypes)
	mustRegisterEnum(v, "client_status", domain.ClientStatuses)
	mustRegisterEnum(v, "dossier_status", domain.DossierStatuses)
	mustRegisterEnum(v, "visa_type", domain.VisaTypes)
	mustRegisterEnum(v, "service_type", domain.ServiceTypes)
	mustRegisterEnum(v, "payment_option", domain.PaymentOptions)
	mustRegisterEnum(v, "payment_modality", domain.PaymentModalities)
	mustRegisterEnum(v, "attachment_type", domain.AttachmentTypes)
	mustRegisterEnum(v, "caisse_type", []domain.CaisseType{domain.CaisseVirtual, domain.CaisseCash, domain.CaisseBankAccount})
	mustRegisterEnum(v, "transaction_type", []domain.TransactionType{domain.Income, domain.Expense, domain.Transfer})
	mustRegisterEnum(v, "transaction_status", []domain.TransactionStatus{domain.TransactionPending, domain.TransactionCompleted, domain.TransactionCancelled})
	return v
}

// mustRegisterEnum registers tag as a validation accepting only the given string-backed values.
func mustRegisterEnum[T ~string](v *validator.Validate, tag string, allowed []T) {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[string(a)] = struct{}{}
	}
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// validateStruct runs the tag rules of s and folds failures into a single ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return fmt.Sprintf("%s has an invalid value (%s)", field, fe.Tag())
	}
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return apperrors.Validationf("%s must be greater than 0", field)
	}
	return nil
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return apperrors.Validationf("%s must not be negative", field)
	}
	return nil
}

func requirePercentage(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return apperrors.Validationf("%s must be between 0 and 100", field)
	}
	return nil
}
