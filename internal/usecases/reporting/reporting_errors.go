package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrAccountRequired   = errors.New("account is required")
	ErrMissingDates      = errors.New("start and end dates are required")
	ErrEndAfterYesterday = errors.New("end date cannot be later than yesterday")
	ErrStartAfterEnd     = errors.New("start date cannot be after end date")
	ErrInvalidBreakdown  = errors.New("invalid breakdown")

	// Erros de integração
	ErrFetchReport = errors.New("error fetching report from Realize")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // Slug da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewReportErrorWithID cria um novo ReportError com o slug da conta
func NewReportErrorWithID(err error, code string, accountID string, details string) *ReportError {
	return &ReportError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
