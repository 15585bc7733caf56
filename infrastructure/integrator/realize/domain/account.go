package realizedomain

import "github.com/vfg2006/realize-report-api/internal/domain"

// AccountPayload é uma conta como retornada pela busca de anunciantes
type AccountPayload struct {
	ID               int64  `json:"id"`
	AccountID        string `json:"account_id"`
	Name             string `json:"name"`
	Currency         string `json:"currency"`
	Type             string `json:"type"`
	NetworkAccountID string `json:"network_account_id"`
}

// ToDomain converte a conta crua, derivando is_network do tipo
func (p *AccountPayload) ToDomain() *domain.Account {
	return &domain.Account{
		ID:               p.ID,
		AccountID:        p.AccountID,
		Name:             p.Name,
		Currency:         p.Currency,
		Type:             domain.AccountType(p.Type),
		IsNetwork:        domain.AccountType(p.Type) == domain.AccountTypeNetwork,
		NetworkAccountID: p.NetworkAccountID,
	}
}

// AccountSearchResponse é o envelope da busca de contas
type AccountSearchResponse struct {
	Results  []*AccountPayload `json:"results"`
	Metadata *struct {
		Total int `json:"total"`
		Count int `json:"count"`
	} `json:"metadata"`
}
