package account

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	realizemocks "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/mocks"
	"github.com/vfg2006/realize-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"github.com/vfg2006/realize-report-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func TestSearchAccounts_CachesForEightHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)

	now := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	service := NewService(mockClient, nil).(*Service)
	service.searchCache = cache.NewTTLWithClock[*domain.AccountSearchResult](searchCacheTTL, func() time.Time { return now })

	result := &domain.AccountSearchResult{
		Accounts: []*domain.Account{{ID: 1, AccountID: "conta", Name: "Conta"}},
	}

	mockClient.EXPECT().SearchAccounts(gomock.Any(), "conta").Return(result, nil).Times(1)

	first, err := service.SearchAccounts(context.Background(), "conta")
	assert.NoError(t, err)
	assert.Equal(t, result, first)

	// Segunda busca dentro do TTL sai do cache
	second, err := service.SearchAccounts(context.Background(), "conta")
	assert.NoError(t, err)
	assert.Equal(t, result, second)

	// Depois de oito horas o cache expira e a API é consultada de novo
	now = now.Add(8*time.Hour + time.Minute)
	mockClient.EXPECT().SearchAccounts(gomock.Any(), "conta").Return(result, nil).Times(1)

	_, err = service.SearchAccounts(context.Background(), "conta")
	assert.NoError(t, err)
}

func TestSearchAccounts_ShortTermsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	result := &domain.AccountSearchResult{}
	mockClient.EXPECT().SearchAccounts(gomock.Any(), "a").Return(result, nil).Times(2)

	_, err := service.SearchAccounts(context.Background(), "a")
	assert.NoError(t, err)
	_, err = service.SearchAccounts(context.Background(), "a")
	assert.NoError(t, err)
}

func TestSearchAccounts_TrimsTerm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	mockClient.EXPECT().SearchAccounts(gomock.Any(), "conta").Return(&domain.AccountSearchResult{}, nil)

	_, err := service.SearchAccounts(context.Background(), "  conta  ")
	assert.NoError(t, err)
}

func TestSearchAccounts_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	mockClient.EXPECT().SearchAccounts(gomock.Any(), "conta").Return(nil, errors.New("boom"))

	_, err := service.SearchAccounts(context.Background(), "conta")

	assert.ErrorIs(t, err, ErrSearchAccounts)
	var accountErr *AccountError
	assert.ErrorAs(t, err, &accountErr)
	assert.Equal(t, apiErrors.ErrUpstreamAPI, accountErr.Code)
}

func TestListSubAccounts_MemoizesBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	account := &domain.Account{ID: 1, AccountID: "conta"}
	subs := []*domain.Account{{ID: 2, AccountID: "sub"}}

	mockClient.EXPECT().GetAdvertisersByAccountID(gomock.Any(), "conta").Return(subs, nil).Times(1)

	first, err := service.ListSubAccounts(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, subs, first)

	second, err := service.ListSubAccounts(context.Background(), account)
	assert.NoError(t, err)
	assert.Equal(t, subs, second)
}

func TestListSubAccounts_NetworkAccountsUseNetworkFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	network := &domain.Account{ID: 1, AccountID: "rede", IsNetwork: true}
	subs := []*domain.Account{{ID: 2, AccountID: "sub"}}

	mockClient.EXPECT().GetSubAccountsByNetwork(gomock.Any(), "rede").Return(subs, nil)

	got, err := service.ListSubAccounts(context.Background(), network)

	assert.NoError(t, err)
	assert.Equal(t, subs, got)
}

func TestListSubAccounts_FailureIsNotMemoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	account := &domain.Account{ID: 1, AccountID: "conta"}

	gomock.InOrder(
		mockClient.EXPECT().GetAdvertisersByAccountID(gomock.Any(), "conta").Return(nil, errors.New("boom")),
		mockClient.EXPECT().GetAdvertisersByAccountID(gomock.Any(), "conta").Return([]*domain.Account{}, nil),
	)

	_, err := service.ListSubAccounts(context.Background(), account)
	assert.ErrorIs(t, err, ErrFetchSubAccounts)

	_, err = service.ListSubAccounts(context.Background(), account)
	assert.NoError(t, err)
}

func TestTouchRecentAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecentAccountRepository(ctrl)
	service := NewService(nil, mockRepo).(*Service)

	account := &domain.Account{ID: 1, AccountID: "conta"}
	mockRepo.EXPECT().Add(account).Return(nil)

	assert.NoError(t, service.TouchRecentAccount(context.Background(), account))

	err := service.TouchRecentAccount(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAccountRequired)
}

func TestListRecentAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecentAccountRepository(ctrl)
	service := NewService(nil, mockRepo).(*Service)

	recents := []*domain.Account{{ID: 1, AccountID: "conta"}}
	mockRepo.EXPECT().List().Return(recents, nil)

	got, err := service.ListRecentAccounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, recents, got)
}

func TestListActiveCampaigns_FiltersStoppedCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	campaigns := []*domain.Campaign{
		{ID: "1", Status: "RUNNING", IsActive: true},
		{ID: "2", Status: "PAUSED", IsActive: true},
		{ID: "3", Status: "RUNNING", IsActive: false},
	}

	mockClient.EXPECT().GetCampaignsByAccountID(gomock.Any(), "conta").Return(campaigns, nil)

	active, err := service.ListActiveCampaigns(context.Background(), "conta")

	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "1", active[0].ID)
}
