package realizeclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// GetConversionRulesByAccountID lista as regras de conversão do pixel
// universal de uma conta. Um 404 significa "conta sem regras" e devolve
// lista vazia em vez de erro. A resposta pode vir como {results: [...]} ou
// como array puro.
func (c *RealizeClient) GetConversionRulesByAccountID(ctx context.Context, accountID string) ([]*domain.ConversionRule, error) {
	endpoint := fmt.Sprintf("%s/api/1.0/%s/universal_pixel/conversion_rule/data",
		c.Cfg.Realize.BaseURL, accountID)

	var raw json.RawMessage
	if err := c.getJSON(ctx, "fetchConversionRules", endpoint, &raw); err != nil {
		if realizedomain.IsNotFound(err) {
			logrus.Debugf("Conta %s não possui regras de conversão (404)", accountID)
			return []*domain.ConversionRule{}, nil
		}
		return nil, err
	}

	items := decodeRuleItems(raw)

	rules := make([]*domain.ConversionRule, 0, len(items))
	for _, item := range items {
		rules = append(rules, item.ToDomain())
	}

	logrus.Debugf("Conta %s possui %d regras de conversão", accountID, len(rules))

	return rules, nil
}

func decodeRuleItems(raw json.RawMessage) []*realizedomain.ConversionRuleItem {
	var bare []*realizedomain.ConversionRuleItem
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}

	var wrapper struct {
		Results []*realizedomain.ConversionRuleItem `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Results != nil {
		return wrapper.Results
	}

	logrus.Warn("Resposta de regras de conversão em formato inesperado. Tratando como vazia")

	return []*realizedomain.ConversionRuleItem{}
}
