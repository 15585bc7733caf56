package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// primaryRuleKeyPrefix namespaceia a regra primária por slug de conta
const primaryRuleKeyPrefix = "primaryConversionRule_realize_"

// PrimaryRuleRepository persiste a regra de conversão primária escolhida
// para cada conta, incluindo a meta de CPA definida pelo operador
type PrimaryRuleRepository interface {
	Load(accountID string) (*domain.ConversionRule, error)
	Save(accountID string, rule *domain.ConversionRule) error
	Clear(accountID string) error
}

type primaryRuleRepository struct {
	store LocalStoreRepository
}

func NewPrimaryRuleRepository(store LocalStoreRepository) PrimaryRuleRepository {
	return &primaryRuleRepository{
		store: store,
	}
}

// Load devolve a regra primária da conta, ou nil quando nenhuma foi salva
func (r *primaryRuleRepository) Load(accountID string) (*domain.ConversionRule, error) {
	value, err := r.store.Get(primaryRuleKeyPrefix + accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar regra primária: %w", err)
	}
	if value == nil {
		return nil, nil
	}

	rule := &domain.ConversionRule{}
	if err := json.Unmarshal(value, rule); err != nil {
		// Valor corrompido não deve travar o fluxo de relatório
		logrus.WithError(err).Warnf("Regra primária da conta %s ilegível. Ignorando", accountID)
		return nil, nil
	}

	return rule, nil
}

func (r *primaryRuleRepository) Save(accountID string, rule *domain.ConversionRule) error {
	value, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("erro ao serializar regra primária: %w", err)
	}

	if err := r.store.Set(primaryRuleKeyPrefix+accountID, value); err != nil {
		return fmt.Errorf("erro ao salvar regra primária: %w", err)
	}

	return nil
}

func (r *primaryRuleRepository) Clear(accountID string) error {
	if err := r.store.Delete(primaryRuleKeyPrefix + accountID); err != nil {
		return fmt.Errorf("erro ao remover regra primária: %w", err)
	}

	return nil
}
