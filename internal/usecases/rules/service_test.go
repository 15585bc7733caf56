package rules

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	realizemocks "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/mocks"
	"github.com/vfg2006/realize-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func selectableRule(id string) *domain.ConversionRule {
	return &domain.ConversionRule{
		ID:                        id,
		DisplayName:               "Compra " + id,
		Category:                  "MAKE_PURCHASE",
		Status:                    domain.RuleStatusActive,
		IncludeInTotalConversions: true,
	}
}

func TestFetchConversionRules_SharesConcurrentFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	var calls int32
	mockClient.EXPECT().
		GetConversionRulesByAccountID(gomock.Any(), "conta").
		DoAndReturn(func(context.Context, string) ([]*domain.ConversionRule, error) {
			atomic.AddInt32(&calls, 1)
			time.Sleep(20 * time.Millisecond)
			return []*domain.ConversionRule{selectableRule("1")}, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rules, err := service.FetchConversionRules(context.Background(), "conta")
			assert.NoError(t, err)
			assert.Len(t, rules, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchConversionRules_FailedFetchIsRetriable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	gomock.InOrder(
		mockClient.EXPECT().
			GetConversionRulesByAccountID(gomock.Any(), "conta").
			Return(nil, errors.New("boom")),
		mockClient.EXPECT().
			GetConversionRulesByAccountID(gomock.Any(), "conta").
			Return([]*domain.ConversionRule{selectableRule("1")}, nil),
	)

	_, err := service.FetchConversionRules(context.Background(), "conta")
	assert.ErrorIs(t, err, ErrFetchRules)

	// A falha não fica retida: a próxima chamada tenta de novo
	rules, err := service.FetchConversionRules(context.Background(), "conta")
	assert.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestFetchConversionRules_RequiresAccountID(t *testing.T) {
	service := NewService(nil, nil).(*Service)

	_, err := service.FetchConversionRules(context.Background(), "")

	assert.ErrorIs(t, err, ErrAccountRequired)
}

func TestSelectableRules_FiltersByStatusCategoryAndInclusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := realizemocks.NewMockClient(ctrl)
	service := NewService(mockClient, nil).(*Service)

	rules := []*domain.ConversionRule{
		selectableRule("ok-purchase"),
		{ID: "ok-lead", Category: "LEAD", Status: domain.RuleStatusActive, IncludeInTotalConversions: true},
		{ID: "paused", Category: "MAKE_PURCHASE", Status: "PAUSED", IncludeInTotalConversions: true},
		{ID: "page-view", Category: "PAGE_VIEW", Status: domain.RuleStatusActive, IncludeInTotalConversions: true},
		{ID: "excluded", Category: "LEAD", Status: domain.RuleStatusActive, IncludeInTotalConversions: false},
	}

	mockClient.EXPECT().
		GetConversionRulesByAccountID(gomock.Any(), "conta").
		Return(rules, nil)

	selectable, err := service.SelectableRules(context.Background(), "conta")

	assert.NoError(t, err)
	assert.Len(t, selectable, 2)
	assert.Equal(t, "ok-purchase", selectable[0].ID)
	assert.Equal(t, "ok-lead", selectable[1].ID)
}

func TestSavePrimaryRule(t *testing.T) {
	goodGoal := 50.0
	fractionalGoal := 50.5
	lowGoal := 9.0
	highGoal := 1000.0

	tests := []struct {
		name     string
		rule     *domain.ConversionRule
		goal     *float64
		saves    bool
		wantErr  error
		wantCode string
	}{
		{
			name:  "Regra selecionável sem meta",
			rule:  selectableRule("1"),
			saves: true,
		},
		{
			name:  "Meta válida",
			rule:  selectableRule("1"),
			goal:  &goodGoal,
			saves: true,
		},
		{
			name:     "Regra ausente",
			wantErr:  ErrRuleRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Regra pausada não pode ser primária",
			rule:     &domain.ConversionRule{ID: "1", Category: "LEAD", Status: "PAUSED", IncludeInTotalConversions: true},
			wantErr:  ErrRuleNotSelectable,
			wantCode: apiErrors.ErrRuleNotSelectable,
		},
		{
			name:     "Meta fracionária",
			rule:     selectableRule("1"),
			goal:     &fractionalGoal,
			wantErr:  ErrInvalidCPAGoal,
			wantCode: apiErrors.ErrInvalidCPAGoal,
		},
		{
			name:     "Meta abaixo do mínimo",
			rule:     selectableRule("1"),
			goal:     &lowGoal,
			wantErr:  ErrInvalidCPAGoal,
			wantCode: apiErrors.ErrInvalidCPAGoal,
		},
		{
			name:     "Meta no limite superior é rejeitada",
			rule:     selectableRule("1"),
			goal:     &highGoal,
			wantErr:  ErrInvalidCPAGoal,
			wantCode: apiErrors.ErrInvalidCPAGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockPrimaryRuleRepository(ctrl)
			service := NewService(nil, mockRepo).(*Service)

			if tt.rule != nil {
				tt.rule.CPAGoal = tt.goal
			}
			if tt.saves {
				mockRepo.EXPECT().Save("conta", tt.rule).Return(nil)
			}

			err := service.SavePrimaryRule(context.Background(), "conta", tt.rule)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			var ruleErr *RuleError
			assert.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tt.wantCode, ruleErr.Code)
		})
	}
}

func TestLoadPrimaryRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrimaryRuleRepository(ctrl)
	service := NewService(nil, mockRepo).(*Service)

	stored := selectableRule("1")
	mockRepo.EXPECT().Load("conta").Return(stored, nil)

	rule, err := service.LoadPrimaryRule(context.Background(), "conta")

	assert.NoError(t, err)
	assert.Equal(t, stored, rule)
}

func TestLoadPrimaryRule_AbsentIsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrimaryRuleRepository(ctrl)
	service := NewService(nil, mockRepo).(*Service)

	mockRepo.EXPECT().Load("conta").Return(nil, nil)

	rule, err := service.LoadPrimaryRule(context.Background(), "conta")

	assert.NoError(t, err)
	assert.Nil(t, rule)
}

func TestClearPrimaryRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPrimaryRuleRepository(ctrl)
	service := NewService(nil, mockRepo).(*Service)

	mockRepo.EXPECT().Clear("conta").Return(nil)

	assert.NoError(t, service.ClearPrimaryRule(context.Background(), "conta"))
}

func TestValidateCPAGoal(t *testing.T) {
	assert.NoError(t, ValidateCPAGoal(10))
	assert.NoError(t, ValidateCPAGoal(999))
	assert.Error(t, ValidateCPAGoal(9))
	assert.Error(t, ValidateCPAGoal(1000))
	assert.Error(t, ValidateCPAGoal(50.5))
}
