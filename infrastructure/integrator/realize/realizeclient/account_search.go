package realizeclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

func emptySearchResult() *domain.AccountSearchResult {
	return &domain.AccountSearchResult{
		Accounts: []*domain.Account{},
		Metadata: &domain.AccountSearchMetadata{},
	}
}

// SearchAccounts busca anunciantes da rede configurada pelo termo dado.
// Termos com menos de dois caracteres não geram chamada; 400/404 da API
// significam "nenhuma conta encontrada", não erro.
func (c *RealizeClient) SearchAccounts(ctx context.Context, term string) (*domain.AccountSearchResult, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return emptySearchResult(), nil
	}

	params := url.Values{}
	params.Add("search_text", term)
	params.Add("page_size", "10")
	params.Add("page", "1")

	endpoint := fmt.Sprintf("%s/api/1.0/%s/advertisers?%s",
		c.Cfg.Realize.BaseURL, c.Cfg.Realize.NetworkSlug, params.Encode())

	var response realizedomain.AccountSearchResponse
	if err := c.getJSON(ctx, "searchAccounts", endpoint, &response); err != nil {
		var apiErr *realizedomain.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusNotFound) {
			return emptySearchResult(), nil
		}
		return nil, err
	}

	result := emptySearchResult()
	for _, payload := range response.Results {
		result.Accounts = append(result.Accounts, payload.ToDomain())
	}
	if response.Metadata != nil {
		result.Metadata = &domain.AccountSearchMetadata{
			Total: response.Metadata.Total,
			Count: response.Metadata.Count,
		}
	}

	logrus.Debugf("Busca de contas por %q retornou %d resultados", term, len(result.Accounts))

	return result, nil
}

// GetSubAccountsByNetwork lista os anunciantes filhos de uma conta de rede
// usando o filtro network_account_id da busca. 400/404 viram lista vazia.
func (c *RealizeClient) GetSubAccountsByNetwork(ctx context.Context, networkAccountID string) ([]*domain.Account, error) {
	params := url.Values{}
	params.Add("network_account_id", networkAccountID)
	params.Add("page_size", "100")
	params.Add("page", "1")

	endpoint := fmt.Sprintf("%s/api/1.0/%s/advertisers?%s",
		c.Cfg.Realize.BaseURL, c.Cfg.Realize.NetworkSlug, params.Encode())

	var response realizedomain.AccountSearchResponse
	if err := c.getJSON(ctx, "fetchSubAccountsByNetwork", endpoint, &response); err != nil {
		var apiErr *realizedomain.APIError
		if errors.As(err, &apiErr) &&
			(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusNotFound) {
			return []*domain.Account{}, nil
		}
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(response.Results))
	for _, payload := range response.Results {
		accounts = append(accounts, payload.ToDomain())
	}

	return accounts, nil
}

// GetAdvertisersByAccountID lista os anunciantes diretamente abaixo de uma
// conta, pelo endpoint de advertisers da própria conta
func (c *RealizeClient) GetAdvertisersByAccountID(ctx context.Context, accountID string) ([]*domain.Account, error) {
	endpoint := fmt.Sprintf("%s/api/1.0/%s/advertisers", c.Cfg.Realize.BaseURL, accountID)

	var response realizedomain.AccountSearchResponse
	if err := c.getJSON(ctx, "fetchSubAccounts", endpoint, &response); err != nil {
		return nil, err
	}

	if response.Results == nil {
		return nil, errors.New("a API não retornou uma lista de resultados")
	}

	accounts := make([]*domain.Account, 0, len(response.Results))
	for _, payload := range response.Results {
		accounts = append(accounts, payload.ToDomain())
	}

	return accounts, nil
}
