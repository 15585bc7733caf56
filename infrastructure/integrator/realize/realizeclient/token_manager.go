package realizeclient

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// tokenSafety é a margem descontada da expiração informada pela API, para
// que um token nunca seja usado em cima da hora
const tokenSafety = 60 * time.Second

// TokenStore persiste o token de acesso entre execuções
type TokenStore interface {
	Load(ctx context.Context) (*domain.StoredToken, error)
	Save(ctx context.Context, token *domain.StoredToken) error
}

// TokenManager gerencia tokens de acesso da API do Realize via
// client_credentials, com cache em memória e persistência local
type TokenManager struct {
	cfg      *config.Config
	store    TokenStore
	exchange *clientcredentials.Config

	mutex    sync.Mutex
	inMemory *domain.StoredToken

	now func() time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config, store TokenStore) *TokenManager {
	return &TokenManager{
		cfg:   cfg,
		store: store,
		exchange: &clientcredentials.Config{
			ClientID:     cfg.Realize.ClientID,
			ClientSecret: cfg.Realize.ClientSecret,
			TokenURL:     cfg.Realize.TokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		now: time.Now,
	}
}

// AuthHeader devolve o valor do header Authorization para uma requisição,
// renovando o token quando necessário
func (tm *TokenManager) AuthHeader(ctx context.Context) (string, error) {
	token, err := tm.ensureToken(ctx)
	if err != nil {
		return "", err
	}
	return "Bearer " + token.Value, nil
}

func (tm *TokenManager) ensureToken(ctx context.Context) (*domain.StoredToken, error) {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	now := tm.now()
	if tm.inMemory.Valid(now) {
		return tm.inMemory, nil
	}

	if tm.store != nil {
		cached, err := tm.store.Load(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Falha ao carregar token persistido. Obtendo um novo...")
		} else if cached.Valid(now) {
			// Promove o token persistido para a memória
			tm.inMemory = cached
			return cached, nil
		}
	}

	if tm.cfg.Realize.ClientID == "" || tm.cfg.Realize.ClientSecret == "" {
		return nil, realizedomain.ErrMissingCredentials
	}

	logrus.Info("Obtendo novo token de acesso do Realize...")
	raw, err := tm.exchange.Token(ctx)
	if err != nil {
		transport := &realizedomain.TransportError{Op: "token", Err: err}
		if transport.HostNotFound() {
			return nil, transport
		}
		return nil, errors.Wrap(err, "erro ao obter token de acesso")
	}

	token := &domain.StoredToken{
		Value:   raw.AccessToken,
		Expires: raw.Expiry.Add(-tokenSafety),
	}
	if raw.Expiry.IsZero() {
		// A API sempre informa expires_in, mas um token sem expiração
		// conhecida recebe uma validade conservadora de uma hora
		token.Expires = now.Add(time.Hour - tokenSafety)
	}

	tm.inMemory = token

	if tm.store != nil {
		if err := tm.store.Save(ctx, token); err != nil {
			logrus.WithError(err).Warn("Falha ao persistir token de acesso")
		}
	}

	logrus.Infof("Novo token de acesso obtido. Expira em: %s", token.Expires.Format(time.RFC3339))

	return token, nil
}
