package targeting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// ParseAmount converte e valida o valor informado no formulário
func ParseAmount(input domain.NumericInput) (decimal.Decimal, error) {
	amount, err := input.Decimal()
	if err != nil {
		return decimal.Zero, NewFieldError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "amount", fmt.Sprintf("valor não numérico: %q", string(input)))
	}
	if !amount.IsPositive() {
		return decimal.Zero, NewFieldError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "amount", "o valor deve ser maior que zero")
	}
	return amount, nil
}

// ParseQuantity converte e valida a quantidade informada no formulário
func ParseQuantity(input domain.NumericInput) (decimal.Decimal, error) {
	quantity, err := input.Decimal()
	if err != nil {
		return decimal.Zero, NewFieldError(ErrInvalidQuantity, apiErrors.ErrInvalidQuantity, "quantity", fmt.Sprintf("quantidade não numérica: %q", string(input)))
	}
	if !quantity.IsPositive() {
		return decimal.Zero, NewFieldError(ErrInvalidQuantity, apiErrors.ErrInvalidQuantity, "quantity", "a quantidade deve ser maior que zero")
	}
	return quantity, nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return NewFieldError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "month", fmt.Sprintf("mês fora do intervalo 1-12: %d", month))
	}
	if year < 1 || year > 9999 {
		return NewFieldError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "year", fmt.Sprintf("ano inválido: %d", year))
	}
	return nil
}

// ValidateTargetRequest rejeita a requisição antes de qualquer resolução de destinatários
func ValidateTargetRequest(request *domain.TargetRequest) error {
	if request == nil {
		return NewTargetError(ErrMissingRecipients, apiErrors.ErrMissingRequiredData, "requisição vazia")
	}

	if _, err := domain.ParseCategory(string(request.Category)); err != nil {
		return NewFieldError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, "category", err.Error())
	}

	if !request.Amount.IsPositive() {
		return NewFieldError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "amount", "o valor deve ser maior que zero")
	}

	if !request.Quantity.IsPositive() {
		return NewFieldError(ErrInvalidQuantity, apiErrors.ErrInvalidQuantity, "quantity", "a quantidade deve ser maior que zero")
	}

	if err := validatePeriod(request.Month, request.Year); err != nil {
		return err
	}

	if len(request.Recipients) == 0 {
		return NewFieldError(ErrMissingRecipients, apiErrors.ErrMissingRequiredData, "recipients", "informe ao menos um colaborador ou time")
	}

	for _, ref := range request.Recipients {
		if ref.ID == "" || (ref.Kind != domain.RecipientActor && ref.Kind != domain.RecipientTeam) {
			return NewFieldError(ErrMissingRecipients, apiErrors.ErrInvalidFormat, "recipients", fmt.Sprintf("destinatário inválido: %s/%s", ref.Kind, ref.ID))
		}
	}

	return nil
}
