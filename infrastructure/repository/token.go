package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

const accessTokenKey = "access_token_json"

// TokenRepository persiste o token de acesso entre execuções, para que um
// reinício do serviço não force uma nova troca de credenciais
type TokenRepository interface {
	Load(ctx context.Context) (*domain.StoredToken, error)
	Save(ctx context.Context, token *domain.StoredToken) error
}

type tokenRepository struct {
	store LocalStoreRepository
}

func NewTokenRepository(store LocalStoreRepository) TokenRepository {
	return &tokenRepository{
		store: store,
	}
}

// Load devolve o token persistido, ou nil quando não há token salvo
func (r *tokenRepository) Load(_ context.Context) (*domain.StoredToken, error) {
	value, err := r.store.Get(accessTokenKey)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar token persistido: %w", err)
	}
	if value == nil {
		return nil, nil
	}

	token := &domain.StoredToken{}
	if err := json.Unmarshal(value, token); err != nil {
		logrus.WithError(err).Warn("Token persistido ilegível. Ignorando")
		return nil, nil
	}

	return token, nil
}

func (r *tokenRepository) Save(_ context.Context, token *domain.StoredToken) error {
	value, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("erro ao serializar token: %w", err)
	}

	if err := r.store.Set(accessTokenKey, value); err != nil {
		return fmt.Errorf("erro ao persistir token: %w", err)
	}

	return nil
}
