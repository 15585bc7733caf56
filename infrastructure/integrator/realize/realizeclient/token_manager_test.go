package realizeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func tokenTestNow() time.Time {
	return time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
}

func newTokenServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "token-novo", "token_type": "Bearer", "expires_in": 3600}`)
	}))
}

func tokenConfig(tokenURL string) *config.Config {
	return &config.Config{
		Realize: config.Realize{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			TokenURL:     tokenURL,
		},
	}
}

func TestAuthHeader_UsesValidInMemoryToken(t *testing.T) {
	manager := NewTokenManager(tokenConfig("http://unused"), nil)
	manager.now = tokenTestNow
	manager.inMemory = &domain.StoredToken{
		Value:   "token-memoria",
		Expires: tokenTestNow().Add(time.Hour),
	}

	header, err := manager.AuthHeader(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-memoria", header)
}

func TestAuthHeader_PromotesPersistedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTokenRepository(ctrl)
	stored := &domain.StoredToken{
		Value:   "token-persistido",
		Expires: tokenTestNow().Add(30 * time.Minute),
	}
	store.EXPECT().Load(gomock.Any()).Return(stored, nil).Times(1)

	manager := NewTokenManager(tokenConfig("http://unused"), store)
	manager.now = tokenTestNow

	header, err := manager.AuthHeader(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-persistido", header)

	// A segunda chamada usa a cópia em memória, sem novo Load
	header, err = manager.AuthHeader(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-persistido", header)
}

func TestAuthHeader_ExchangesAndPersistsNewToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls int32
	server := newTokenServer(t, &calls)
	defer server.Close()

	expired := &domain.StoredToken{
		Value:   "token-vencido",
		Expires: tokenTestNow().Add(-time.Minute),
	}

	store := mocks.NewMockTokenRepository(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(expired, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, token *domain.StoredToken) error {
			assert.Equal(t, "token-novo", token.Value)
			// A expiração carrega a margem de segurança descontada
			assert.True(t, token.Expires.Before(time.Now().Add(time.Hour)))
			return nil
		})

	manager := NewTokenManager(tokenConfig(server.URL), store)
	manager.now = tokenTestNow

	header, err := manager.AuthHeader(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-novo", header)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAuthHeader_StoreFailureFallsBackToExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls int32
	server := newTokenServer(t, &calls)
	defer server.Close()

	store := mocks.NewMockTokenRepository(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("banco indisponível"))
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	manager := NewTokenManager(tokenConfig(server.URL), store)
	manager.now = tokenTestNow

	header, err := manager.AuthHeader(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-novo", header)
}

func TestAuthHeader_MissingCredentials(t *testing.T) {
	cfg := &config.Config{}
	manager := NewTokenManager(cfg, nil)
	manager.now = tokenTestNow

	_, err := manager.AuthHeader(context.Background())

	assert.ErrorIs(t, err, realizedomain.ErrMissingCredentials)
}

func TestStoredTokenValid(t *testing.T) {
	now := tokenTestNow()

	var nilToken *domain.StoredToken
	assert.False(t, nilToken.Valid(now))
	assert.False(t, (&domain.StoredToken{Value: "", Expires: now.Add(time.Hour)}).Valid(now))
	assert.False(t, (&domain.StoredToken{Value: "tok", Expires: now.Add(-time.Second)}).Valid(now))
	assert.True(t, (&domain.StoredToken{Value: "tok", Expires: now.Add(time.Second)}).Valid(now))
}
