package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/realize-report-api/internal/api/handler/router"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/internal/usecases/mocks"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newAccountRouter(service account.AccountService) router.Router {
	return router.New(router.WithRoutes(Accounts(service)...))
}

func TestSearchAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	result := &domain.AccountSearchResult{
		Accounts: []*domain.Account{{ID: 1, AccountID: "conta", Name: "Conta"}},
		Metadata: &domain.AccountSearchMetadata{Total: 1, Count: 1},
	}
	mockService.EXPECT().SearchAccounts(gomock.Any(), "conta").Return(result, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/search?q=conta", nil)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"account_id":"conta"`)
}

func TestSearchAccounts_UpstreamErrorIsBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	mockService.EXPECT().
		SearchAccounts(gomock.Any(), gomock.Any()).
		Return(nil, account.NewAccountError(account.ErrSearchAccounts, apiErrors.ErrUpstreamAPI, "boom"))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/search?q=conta", nil)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrUpstreamAPI)
}

func TestListRecentAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	mockService.EXPECT().
		ListRecentAccounts(gomock.Any()).
		Return([]*domain.Account{{ID: 1, AccountID: "conta"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/recents", nil)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":"conta"`)
}

func TestTouchRecentAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	mockService.EXPECT().
		TouchRecentAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, acc *domain.Account) error {
			assert.Equal(t, "conta", acc.AccountID)
			return nil
		})

	body := strings.NewReader(`{"account_id": "conta", "name": "Conta"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/recents", body)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTouchRecentAccount_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/recents", strings.NewReader("{invalido"))
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
}

func TestListSubAccounts_NetworkFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	mockService.EXPECT().
		ListSubAccounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, acc *domain.Account) ([]*domain.Account, error) {
			assert.Equal(t, "rede", acc.AccountID)
			assert.True(t, acc.IsNetwork)
			return []*domain.Account{{ID: 2, AccountID: "sub"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/rede/sub-accounts?network=true", nil)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"account_id":"sub"`)
}

func TestListActiveCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAccountService(ctrl)
	mockService.EXPECT().
		ListActiveCampaigns(gomock.Any(), "conta").
		Return([]*domain.Campaign{{ID: "1", Status: "RUNNING", IsActive: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/conta/campaigns", nil)
	rec := httptest.NewRecorder()

	newAccountRouter(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"RUNNING"`)
}

func TestWriteAccountError_FallbackSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"Conta obrigatória", account.ErrAccountRequired, http.StatusBadRequest, apiErrors.ErrMissingRequiredData},
		{"Conta não encontrada", account.ErrAccountNotFound, http.StatusNotFound, apiErrors.ErrAccountNotFound},
		{"Falha upstream", account.ErrFetchSubAccounts, http.StatusBadGateway, apiErrors.ErrUpstreamAPI},
		{"Falha de banco", account.ErrSaveRecents, http.StatusInternalServerError, apiErrors.ErrDatabaseOperation},
		{"Erro desconhecido", errors.New("boom"), http.StatusInternalServerError, apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeAccountError(rec, tt.err, "fallback")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}
