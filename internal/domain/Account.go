package domain

// AccountType representa o tipo de conta retornado pela API do Realize
type AccountType string

const (
	AccountTypeNetwork    AccountType = "NETWORK"
	AccountTypePartner    AccountType = "PARTNER"
	AccountTypeAdvertiser AccountType = "ADVERTISER"
)

// Account é um snapshot imutável de uma conta retornada pela busca.
// ID é o identificador numérico usado em URLs da interface; AccountID é o
// slug exigido nos paths da API.
type Account struct {
	ID               int64       `json:"id"`
	AccountID        string      `json:"account_id"`
	Name             string      `json:"name"`
	Currency         string      `json:"currency,omitempty"`
	Type             AccountType `json:"type,omitempty"`
	IsNetwork        bool        `json:"is_network"`
	NetworkAccountID string      `json:"network_account_id,omitempty"`
}

// AccountSearchMetadata carrega os totais retornados pela busca de contas
type AccountSearchMetadata struct {
	Total int `json:"total"`
	Count int `json:"count"`
}

// AccountSearchResult agrupa o resultado de uma busca com seus metadados
type AccountSearchResult struct {
	Accounts []*Account             `json:"results"`
	Metadata *AccountSearchMetadata `json:"metadata,omitempty"`
}
