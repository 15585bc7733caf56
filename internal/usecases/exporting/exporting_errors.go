package exporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de exportação de planilhas
var (
	// Erros de validação
	ErrAccountRequired = errors.New("account is required")
	ErrNoBreakdowns    = errors.New("at least one breakdown is required")
	ErrEmptyTable      = errors.New("projected table is empty")

	// Erros de processamento
	ErrReportGeneration = errors.New("error generating report for export")
	ErrWorkbookWrite    = errors.New("error writing workbook to disk")
)

// ExportError é um erro com contexto adicional para exportações
type ExportError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // Slug da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError cria um novo ExportError
func NewExportError(err error, code string, details string) *ExportError {
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewExportErrorWithID cria um novo ExportError com o slug da conta
func NewExportErrorWithID(err error, code string, accountID string, details string) *ExportError {
	return &ExportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
