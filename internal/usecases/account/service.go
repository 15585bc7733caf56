package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/realizeclient"
	"github.com/vfg2006/realize-report-api/infrastructure/repository"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"github.com/vfg2006/realize-report-api/pkg/cache"
)

// searchCacheTTL é a validade de uma busca de contas no cache
const searchCacheTTL = 8 * time.Hour

type AccountService interface {
	SearchAccounts(ctx context.Context, term string) (*domain.AccountSearchResult, error)
	ListRecentAccounts(ctx context.Context) ([]*domain.Account, error)
	TouchRecentAccount(ctx context.Context, account *domain.Account) error
	ListSubAccounts(ctx context.Context, account *domain.Account) ([]*domain.Account, error)
	ListActiveCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
}

type Service struct {
	realizeClient realizeclient.Client
	recents       repository.RecentAccountRepository

	searchCache *cache.TTL[*domain.AccountSearchResult]

	// subAccountCache memoiza os filhos de cada conta pelo slug; a
	// hierarquia de contas não muda dentro de uma execução
	subAccountMutex sync.Mutex
	subAccountCache map[string][]*domain.Account
}

func NewService(
	realizeClient realizeclient.Client,
	recents repository.RecentAccountRepository,
) AccountService {
	return &Service{
		realizeClient:   realizeClient,
		recents:         recents,
		searchCache:     cache.NewTTL[*domain.AccountSearchResult](searchCacheTTL),
		subAccountCache: make(map[string][]*domain.Account),
	}
}

// SearchAccounts busca contas pelo termo dado, servindo do cache quando a
// mesma busca foi feita nas últimas oito horas
func (s *Service) SearchAccounts(ctx context.Context, term string) (*domain.AccountSearchResult, error) {
	term = strings.TrimSpace(term)

	if cached, ok := s.searchCache.Get(term); ok {
		logrus.Debugf("Busca de contas por %q atendida pelo cache", term)
		return cached, nil
	}

	result, err := s.realizeClient.SearchAccounts(ctx, term)
	if err != nil {
		return nil, NewAccountError(ErrSearchAccounts, apiErrors.ErrUpstreamAPI, err.Error())
	}

	if len(term) >= 2 {
		s.searchCache.Set(term, result)
	}

	return result, nil
}

func (s *Service) ListRecentAccounts(_ context.Context) ([]*domain.Account, error) {
	recents, err := s.recents.List()
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return recents, nil
}

// TouchRecentAccount coloca a conta no topo da lista de recentes
func (s *Service) TouchRecentAccount(_ context.Context, account *domain.Account) error {
	if account == nil {
		return NewAccountError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}

	if err := s.recents.Add(account); err != nil {
		return NewAccountError(ErrSaveRecents, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

// ListSubAccounts lista os anunciantes abaixo de uma conta. Contas de rede
// usam o filtro de rede da busca; as demais usam o endpoint de advertisers
// da própria conta. O resultado é memoizado por slug.
func (s *Service) ListSubAccounts(ctx context.Context, account *domain.Account) ([]*domain.Account, error) {
	if account == nil {
		return nil, NewAccountError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}

	s.subAccountMutex.Lock()
	cached, ok := s.subAccountCache[account.AccountID]
	s.subAccountMutex.Unlock()
	if ok {
		logrus.Debugf("Sub-contas de %s atendidas pelo cache", account.AccountID)
		return cached, nil
	}

	var (
		subAccounts []*domain.Account
		err         error
	)
	if account.IsNetwork {
		subAccounts, err = s.realizeClient.GetSubAccountsByNetwork(ctx, account.AccountID)
	} else {
		subAccounts, err = s.realizeClient.GetAdvertisersByAccountID(ctx, account.AccountID)
	}
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchSubAccounts, apiErrors.ErrUpstreamAPI, account.AccountID, err.Error())
	}

	s.subAccountMutex.Lock()
	s.subAccountCache[account.AccountID] = subAccounts
	s.subAccountMutex.Unlock()

	return subAccounts, nil
}

// ListActiveCampaigns lista apenas as campanhas em execução de uma conta
func (s *Service) ListActiveCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "slug da conta não informado")
	}

	campaigns, err := s.realizeClient.GetCampaignsByAccountID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrFetchCampaigns, apiErrors.ErrUpstreamAPI, accountID, err.Error())
	}

	active := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if campaign.IsRunning() {
			active = append(active, campaign)
		}
	}

	return active, nil
}
