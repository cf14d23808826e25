package performance

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory    = errors.New("categoria inválida")
	ErrInvalidScope       = errors.New("escopo inválido")
	ErrTeamNotFound       = errors.New("time não encontrado")
	ErrScopeLookup        = errors.New("erro ao resolver o escopo")
	ErrCategoryNotAllowed = errors.New("categoria não permitida para o usuário")
	ErrScopeNotAllowed    = errors.New("escopo não permitido para o usuário")
)

// PerformanceError é um erro com contexto adicional para consultas de desempenho
type PerformanceError struct {
	Err     error
	Code    string
	Details string
}

func (e *PerformanceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PerformanceError) Unwrap() error {
	return e.Err
}

func NewPerformanceError(err error, code string, details string) *PerformanceError {
	return &PerformanceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
