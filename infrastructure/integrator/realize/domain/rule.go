package realizedomain

import (
	"encoding/json"
	"strconv"

	"github.com/vfg2006/realize-report-api/internal/domain"
)

// FlexibleID aceita identificadores que a API devolve ora como número, ora
/// como string (ex.: advertiser_id)
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		*f = FlexibleID(v)
	case float64:
		*f = FlexibleID(strconv.FormatInt(int64(v), 10))
	case nil:
		*f = ""
	}

	return nil
}

// UnipConversionRule é a regra de conversão como descrita pela API do
// pixel universal
type UnipConversionRule struct {
	ID                        int64      `json:"id"`
	DisplayName               string     `json:"display_name"`
	Category                  string     `json:"category"`
	Status                    string     `json:"status"`
	Type                      string     `json:"type"`
	EventName                 string     `json:"event_name"`
	IncludeInTotalConversions bool       `json:"include_in_total_conversions"`
	AdvertiserID              FlexibleID `json:"advertiser_id"`
}

// ConversionRuleItem é o envelope de cada regra na resposta, carregando os
// contadores de recebimento ao lado da regra em si
type ConversionRuleItem struct {
	LastReceived       *string            `json:"last_received"`
	TotalReceived      *int64             `json:"total_received"`
	UnipConversionRule UnipConversionRule `json:"unip_conversion_rule"`
}

// ToDomain converte o item cru para o modelo de domínio
func (i *ConversionRuleItem) ToDomain() *domain.ConversionRule {
	return &domain.ConversionRule{
		ID:                        strconv.FormatInt(i.UnipConversionRule.ID, 10),
		DisplayName:               i.UnipConversionRule.DisplayName,
		Category:                  i.UnipConversionRule.Category,
		Status:                    i.UnipConversionRule.Status,
		RuleType:                  i.UnipConversionRule.Type,
		EventName:                 i.UnipConversionRule.EventName,
		LastReceived:              i.LastReceived,
		TotalReceived:             i.TotalReceived,
		IncludeInTotalConversions: i.UnipConversionRule.IncludeInTotalConversions,
		AdvertiserID:              string(i.UnipConversionRule.AdvertiserID),
	}
}
