package targeting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de metas
var (
	// Erros de validação
	ErrInvalidAmount     = errors.New("valor da meta inválido")
	ErrInvalidQuantity   = errors.New("quantidade da meta inválida")
	ErrInvalidCategory   = errors.New("categoria da meta inválida")
	ErrInvalidPeriod     = errors.New("período da meta inválido")
	ErrMissingRecipients = errors.New("nenhum destinatário informado")
	ErrTooManyRecipients = errors.New("quantidade de destinatários acima do permitido")

	// Erros de rateio
	ErrNoEligibleRecipients = errors.New("nenhum destinatário elegível para a categoria")
	ErrApportionMismatch    = errors.New("soma do rateio difere do valor total")

	// Erros de banco de dados
	ErrTargetNotFound = errors.New("meta não encontrada")
	ErrLoadDirectory  = errors.New("erro ao carregar colaboradores e times")
	ErrPersistBatch   = errors.New("erro ao gravar lote de metas")
	ErrFetchTargets   = errors.New("erro ao buscar metas")
	ErrGenerateID     = errors.New("erro ao gerar identificador")
)

// TargetError é um erro com contexto adicional para metas
type TargetError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo da requisição envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TargetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError cria um novo TargetError
func NewTargetError(err error, code string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewFieldError cria um TargetError associado a um campo da requisição
func NewFieldError(err error, code string, field string, details string) *TargetError {
	return &TargetError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}

// IsValidationError verifica se o erro deve ser devolvido ao usuário como erro de validação
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrMissingRecipients) ||
		errors.Is(err, ErrTooManyRecipients)
}
