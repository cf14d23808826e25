package periods

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFilter  = errors.New("tipo de filtro de período desconhecido")
	ErrMissingValue   = errors.New("valor obrigatório do período não informado")
	ErrInvalidMonth   = errors.New("mês inválido")
	ErrInvalidYear    = errors.New("ano inválido")
	ErrInvalidNumber  = errors.New("valor numérico inválido")
	ErrInvertedRange  = errors.New("fim do intervalo anterior ao início")
	ErrDiscoveryFetch = errors.New("erro ao buscar anos disponíveis")
)

// ValidationError é o erro de validação de um campo específico do filtro de período
type ValidationError struct {
	Err     error
	Code    string
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, code, field, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}
