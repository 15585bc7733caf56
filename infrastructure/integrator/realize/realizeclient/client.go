package realizeclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// maxResponseBytes é o teto de tamanho de resposta aceito antes do parse.
// Respostas maiores falham com ErrPayloadTooLarge em vez de serem
// interpretadas.
const maxResponseBytes = 20 << 20

// ReportOptions carrega os parâmetros opcionais de uma chamada de
// relatório. IncludeMultiConversions só tem efeito quando ConversionRuleID
// está presente.
type ReportOptions struct {
	ConversionRuleID        string
	IncludeMultiConversions bool
}

type Client interface {
	SearchAccounts(ctx context.Context, term string) (*domain.AccountSearchResult, error)
	GetSubAccountsByNetwork(ctx context.Context, networkAccountID string) ([]*domain.Account, error)
	GetAdvertisersByAccountID(ctx context.Context, accountID string) ([]*domain.Account, error)
	GetCampaignsByAccountID(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	GetConversionRulesByAccountID(ctx context.Context, accountID string) ([]*domain.ConversionRule, error)
	GetReport(ctx context.Context, accountID string, breakdown domain.Breakdown, filters *domain.ReportFilters, opts *ReportOptions) (*domain.ReportResult, error)
	GetSubAccountSpend(ctx context.Context, networkAccountID string, filters *domain.ReportFilters) ([]*domain.SubAccountSpend, error)
	GetSiteBreakdownPage(ctx context.Context, accountID string, filters *domain.ReportFilters, page int) ([]*domain.ReportRow, error)
}

type RealizeClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager

	httpClient *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &RealizeClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
	return client
}

// get faz uma requisição GET autenticada e devolve a resposta aberta para
// leitura. Falhas de rede viram TransportError; status não-2xx vira
// APIError com o corpo lido para diagnóstico.
func (c *RealizeClient) get(ctx context.Context, op, url string) (*http.Response, error) {
	header, err := c.TokenManager.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &realizedomain.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &realizedomain.APIError{
			StatusCode: resp.StatusCode,
			Op:         op,
			Body:       string(body),
		}
	}

	return resp, nil
}

// getJSON faz um GET autenticado e decodifica o corpo em out, respeitando
// o teto de bytes
func (c *RealizeClient) getJSON(ctx context.Context, op, url string, out any) error {
	resp, err := c.get(ctx, op, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &realizedomain.TransportError{Op: op, Err: err}
	}

	if len(body) > maxResponseBytes {
		return errors.Wrapf(realizedomain.ErrPayloadTooLarge, "%s: corpo maior que %d bytes", op, maxResponseBytes)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar JSON (%s)", op)
	}

	return nil
}
