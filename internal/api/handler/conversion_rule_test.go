package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/realize-report-api/internal/api/handler/router"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/internal/usecases/mocks"
	"github.com/vfg2006/realize-report-api/internal/usecases/rules"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newRuleRouter(service rules.RuleService, accounts account.AccountService) router.Router {
	return router.New(router.WithRoutes(ConversionRules(service, accounts)...))
}

func TestListConversionRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().
		FetchConversionRules(gomock.Any(), "conta").
		Return([]*domain.ConversionRule{{ID: "1", DisplayName: "Compra"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/conta/conversion-rules", nil)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"Compra"`)
}

func TestListConversionRules_SelectableFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().
		SelectableRules(gomock.Any(), "conta").
		Return([]*domain.ConversionRule{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/conta/conversion-rules?selectable=true", nil)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPrimaryRule_AbsentIsNoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().LoadPrimaryRule(gomock.Any(), "conta").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/conta/primary-rule", nil)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSavePrimaryRule_EchoesRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().
		SavePrimaryRule(gomock.Any(), "conta", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, rule *domain.ConversionRule) error {
			assert.Equal(t, "7", rule.ID)
			assert.Equal(t, 50.0, *rule.CPAGoal)
			return nil
		})

	body := strings.NewReader(`{"id": "7", "display_name": "Compra", "cpaGoal": 50}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/accounts/conta/primary-rule", body)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cpaGoal":50`)
}

func TestSavePrimaryRule_InvalidGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().
		SavePrimaryRule(gomock.Any(), "conta", gomock.Any()).
		Return(rules.NewRuleError(rules.ErrInvalidCPAGoal, apiErrors.ErrInvalidCPAGoal, "a meta de CPA deve ser um inteiro entre 10 e 999"))

	body := strings.NewReader(`{"id": "7", "cpaGoal": 5000}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/accounts/conta/primary-rule", body)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidCPAGoal)
}

func TestClearPrimaryRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockRules.EXPECT().ClearPrimaryRule(gomock.Any(), "conta").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/accounts/conta/primary-rule", nil)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSelectRule_FetchesSubAccountsWhenBodyOmitsThem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockAccounts := mocks.NewMockAccountService(ctrl)

	sub := &domain.Account{ID: 77, AccountID: "sub", Name: "Sub"}
	mockAccounts.EXPECT().
		ListSubAccounts(gomock.Any(), gomock.Any()).
		Return([]*domain.Account{sub}, nil)

	mockRules.EXPECT().
		SelectRule(gomock.Any(), gomock.Any(), gomock.Any(), []*domain.Account{sub}).
		Return(&rules.SelectionOutcome{Account: sub, Switched: true, Guidance: "troca de conta"}, nil)

	body := strings.NewReader(`{
		"account": {"id": 42, "account_id": "rede"},
		"rule": {"id": "1", "advertiser_id": "sub"}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/conversion-rules/select", body)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, mockAccounts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"switched":true`)
	assert.Contains(t, rec.Body.String(), "troca de conta")
}

func TestSelectRule_SubAccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRules := mocks.NewMockRuleService(ctrl)
	mockAccounts := mocks.NewMockAccountService(ctrl)

	mockRules.EXPECT().
		SelectRule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, rules.NewRuleErrorWithIDs(rules.ErrSubAccountNotFound, apiErrors.ErrAccountNotFound, "rede", "1", "anunciante desconhecido"))

	body := strings.NewReader(`{
		"account": {"id": 42, "account_id": "rede"},
		"rule": {"id": "1", "advertiser_id": "desconhecida"},
		"sub_accounts": [{"id": 77, "account_id": "sub"}]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/conversion-rules/select", body)
	rec := httptest.NewRecorder()

	newRuleRouter(mockRules, mockAccounts).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrAccountNotFound)
}
