package rules

import (
	"context"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/realizeclient"
	"github.com/vfg2006/realize-report-api/infrastructure/repository"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// Limites da meta de CPA aceitos pelo formulário
const (
	minCPAGoal = 10
	maxCPAGoal = 1000
)

type RuleService interface {
	FetchConversionRules(ctx context.Context, accountID string) ([]*domain.ConversionRule, error)
	SelectableRules(ctx context.Context, accountID string) ([]*domain.ConversionRule, error)
	LoadPrimaryRule(ctx context.Context, accountID string) (*domain.ConversionRule, error)
	SavePrimaryRule(ctx context.Context, accountID string, rule *domain.ConversionRule) error
	ClearPrimaryRule(ctx context.Context, accountID string) error
	SelectRule(ctx context.Context, active *domain.Account, rule *domain.ConversionRule, subAccounts []*domain.Account) (*SelectionOutcome, error)
}

// ruleFetch é uma busca em andamento (ou concluída) compartilhada entre
// chamadas concorrentes da mesma conta
type ruleFetch struct {
	done  chan struct{}
	rules []*domain.ConversionRule
	err   error
}

type Service struct {
	realizeClient realizeclient.Client
	primaryRules  repository.PrimaryRuleRepository

	// inflight deduplica buscas concorrentes por slug de conta. Entradas
	// com erro são removidas para que uma nova tentativa não fique
	// permanentemente envenenada.
	inflightMutex sync.Mutex
	inflight      map[string]*ruleFetch
}

func NewService(
	realizeClient realizeclient.Client,
	primaryRules repository.PrimaryRuleRepository,
) RuleService {
	return &Service{
		realizeClient: realizeClient,
		primaryRules:  primaryRules,
		inflight:      make(map[string]*ruleFetch),
	}
}

// FetchConversionRules busca as regras de conversão de uma conta,
// compartilhando uma única chamada entre requisições simultâneas do mesmo
// slug
func (s *Service) FetchConversionRules(ctx context.Context, accountID string) ([]*domain.ConversionRule, error) {
	if accountID == "" {
		return nil, NewRuleError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "slug da conta não informado")
	}

	s.inflightMutex.Lock()
	if fetch, ok := s.inflight[accountID]; ok {
		s.inflightMutex.Unlock()
		<-fetch.done
		return fetch.rules, fetch.err
	}

	fetch := &ruleFetch{done: make(chan struct{})}
	s.inflight[accountID] = fetch
	s.inflightMutex.Unlock()

	rules, err := s.realizeClient.GetConversionRulesByAccountID(ctx, accountID)
	if err != nil {
		fetch.err = NewRuleErrorWithIDs(ErrFetchRules, apiErrors.ErrUpstreamAPI, accountID, "", err.Error())

		s.inflightMutex.Lock()
		delete(s.inflight, accountID)
		s.inflightMutex.Unlock()
	} else {
		fetch.rules = rules
	}

	close(fetch.done)

	return fetch.rules, fetch.err
}

// SelectableRules devolve apenas as regras que podem ser oferecidas ao
// operador: ativas, de categoria relevante e incluídas no total de
// conversões
func (s *Service) SelectableRules(ctx context.Context, accountID string) ([]*domain.ConversionRule, error) {
	rules, err := s.FetchConversionRules(ctx, accountID)
	if err != nil {
		return nil, err
	}

	selectable := make([]*domain.ConversionRule, 0, len(rules))
	for _, rule := range rules {
		if rule.IsSelectable() {
			selectable = append(selectable, rule)
		}
	}

	logrus.Debugf("Conta %s: %d de %d regras são selecionáveis", accountID, len(selectable), len(rules))

	return selectable, nil
}

// LoadPrimaryRule devolve a regra primária persistida da conta, ou nil
func (s *Service) LoadPrimaryRule(_ context.Context, accountID string) (*domain.ConversionRule, error) {
	rule, err := s.primaryRules.Load(accountID)
	if err != nil {
		return nil, NewRuleError(ErrPersistPrimaryRule, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return rule, nil
}

// SavePrimaryRule persiste a regra primária da conta, validando a meta de
// CPA quando presente
func (s *Service) SavePrimaryRule(_ context.Context, accountID string, rule *domain.ConversionRule) error {
	if rule == nil {
		return NewRuleError(ErrRuleRequired, apiErrors.ErrMissingRequiredData, "regra não informada")
	}
	if !rule.IsSelectable() {
		return NewRuleErrorWithIDs(ErrRuleNotSelectable, apiErrors.ErrRuleNotSelectable, accountID, rule.ID,
			"apenas regras ativas de compra, lead ou instalação podem ser primárias")
	}
	if rule.CPAGoal != nil {
		if err := ValidateCPAGoal(*rule.CPAGoal); err != nil {
			return err
		}
	}

	if err := s.primaryRules.Save(accountID, rule); err != nil {
		return NewRuleErrorWithIDs(ErrPersistPrimaryRule, apiErrors.ErrDatabaseOperation, accountID, rule.ID, err.Error())
	}

	logrus.Infof("Regra primária %s salva para a conta %s", rule.ID, accountID)

	return nil
}

func (s *Service) ClearPrimaryRule(_ context.Context, accountID string) error {
	if err := s.primaryRules.Clear(accountID); err != nil {
		return NewRuleError(ErrPersistPrimaryRule, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

// ValidateCPAGoal valida a meta de CPA do formulário: número inteiro maior
// ou igual a 10 e menor que 1000
func ValidateCPAGoal(goal float64) error {
	if goal != math.Trunc(goal) || goal < minCPAGoal || goal >= maxCPAGoal {
		return NewRuleError(ErrInvalidCPAGoal, apiErrors.ErrInvalidCPAGoal, "a meta de CPA deve ser um inteiro entre 10 e 999")
	}

	return nil
}
