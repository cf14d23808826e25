package directory

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCategory = errors.New("categoria inválida")
	ErrFetchActors     = errors.New("erro ao buscar colaboradores")
	ErrFetchTeams      = errors.New("erro ao buscar times")
)

// DirectoryError é um erro com contexto adicional para consultas de colaboradores e times
type DirectoryError struct {
	Err     error
	Code    string
	Details string
}

func (e *DirectoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

func NewDirectoryError(err error, code string, details string) *DirectoryError {
	return &DirectoryError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
