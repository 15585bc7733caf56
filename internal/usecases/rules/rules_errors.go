package rules

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de regras de conversão
var (
	// Erros de validação
	ErrAccountRequired    = errors.New("account is required")
	ErrRuleRequired       = errors.New("conversion rule is required")
	ErrRuleNotSelectable  = errors.New("conversion rule is not selectable")
	ErrInvalidCPAGoal     = errors.New("CPA goal must be an integer between 10 and 999")
	ErrSubAccountNotFound = errors.New("rule belongs to another account that could not be resolved")

	// Erros de integração
	ErrFetchRules = errors.New("error fetching conversion rules from Realize")

	// Erros de banco de dados
	ErrPersistPrimaryRule = errors.New("error persisting primary rule")
)

// RuleError é um erro com contexto adicional para regras de conversão
type RuleError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // Slug da conta envolvida (quando aplicável)
	RuleID    string // ID da regra envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RuleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RuleError) Unwrap() error {
	return e.Err
}

// NewRuleError cria um novo RuleError
func NewRuleError(err error, code string, details string) *RuleError {
	return &RuleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRuleErrorWithIDs cria um novo RuleError com conta e regra
func NewRuleErrorWithIDs(err error, code string, accountID, ruleID, details string) *RuleError {
	return &RuleError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		RuleID:    ruleID,
		Details:   details,
	}
}
