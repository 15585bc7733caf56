package realizeclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// GetCampaignsByAccountID lista as campanhas de uma conta. A API ora
// devolve {results: [...]}, ora um array puro; os dois formatos são aceitos.
func (c *RealizeClient) GetCampaignsByAccountID(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	if accountID == "" {
		return nil, errors.New("accountID é obrigatório para listar campanhas")
	}

	endpoint := fmt.Sprintf("%s/api/1.0/%s/campaigns/", c.Cfg.Realize.BaseURL, accountID)

	var raw json.RawMessage
	if err := c.getJSON(ctx, "fetchCampaigns", endpoint, &raw); err != nil {
		return nil, err
	}

	payloads, err := decodeCampaignPayloads(raw)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(payloads))
	for _, payload := range payloads {
		campaigns = append(campaigns, payload.ToDomain())
	}

	logrus.Debugf("Conta %s possui %d campanhas", accountID, len(campaigns))

	return campaigns, nil
}

func decodeCampaignPayloads(raw json.RawMessage) ([]*realizedomain.CampaignPayload, error) {
	var wrapper struct {
		Results []*realizedomain.CampaignPayload `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Results != nil {
		return wrapper.Results, nil
	}

	var bare []*realizedomain.CampaignPayload
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	logrus.Warn("Resposta de campanhas em formato inesperado. Tratando como vazia")

	return []*realizedomain.CampaignPayload{}, nil
}
