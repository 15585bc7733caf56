package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

const (
	recentAccountsKey = "recent_accounts"

	// recentAccountsLimit é o tamanho máximo da lista de contas recentes
	recentAccountsLimit = 5
)

// RecentAccountRepository mantém a lista de contas acessadas recentemente,
// mais recente primeiro, deduplicada por id
type RecentAccountRepository interface {
	List() ([]*domain.Account, error)
	Add(account *domain.Account) error
}

type recentAccountRepository struct {
	store LocalStoreRepository
}

func NewRecentAccountRepository(store LocalStoreRepository) RecentAccountRepository {
	return &recentAccountRepository{
		store: store,
	}
}

func (r *recentAccountRepository) List() ([]*domain.Account, error) {
	value, err := r.store.Get(recentAccountsKey)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar contas recentes: %w", err)
	}
	if value == nil {
		return []*domain.Account{}, nil
	}

	accounts := []*domain.Account{}
	if err := json.Unmarshal(value, &accounts); err != nil {
		logrus.WithError(err).Warn("Lista de contas recentes ilegível. Reiniciando vazia")
		return []*domain.Account{}, nil
	}

	return accounts, nil
}

// Add coloca a conta no topo da lista, removendo ocorrência anterior da
// mesma conta e cortando a lista no limite
func (r *recentAccountRepository) Add(account *domain.Account) error {
	recents, err := r.List()
	if err != nil {
		return err
	}

	updated := []*domain.Account{account}
	for _, recent := range recents {
		if recent.ID == account.ID {
			continue
		}
		updated = append(updated, recent)
	}

	if len(updated) > recentAccountsLimit {
		updated = updated[:recentAccountsLimit]
	}

	value, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("erro ao serializar contas recentes: %w", err)
	}

	if err := r.store.Set(recentAccountsKey, value); err != nil {
		return fmt.Errorf("erro ao salvar contas recentes: %w", err)
	}

	return nil
}
