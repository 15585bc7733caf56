package realizedomain

import (
	"encoding/json"
	"strconv"

	"github.com/vfg2006/realize-report-api/internal/domain"
)

// DynamicFieldValue é o par {id, value} anexado a cada linha de resultado
type DynamicFieldValue struct {
	ID    string `json:"id"`
	Value any    `json:"value"`
}

// DynamicFieldMeta é o esquema autodescritivo das métricas dinâmicas,
// presente no metadata da resposta quando uma regra de conversão contribui
// colunas para o relatório
type DynamicFieldMeta struct {
	ID       string `json:"id"`
	Caption  string `json:"caption"`
	Format   string `json:"format"`
	DataType string `json:"data_type"`
}

// ReportMetadata é o metadata da resposta de relatório
type ReportMetadata struct {
	Total         int                `json:"total"`
	Count         int                `json:"count"`
	DynamicFields []DynamicFieldMeta `json:"dynamic_fields"`
}

// ReportRowPayload é uma linha crua da API. Campos de dimensão conhecidos
// são tipados; qualquer outro campo numérico plano vai para Metrics, de onde
// o fallback de reconciliação pode lê-lo.
type ReportRowPayload struct {
	Date          string
	Campaign      string
	CampaignName  string
	Item          string
	ItemName      string
	Site          string
	SiteName      string
	Country       string
	Platform      string
	HourOfDay     string
	URL           string
	ThumbnailURL  string
	Currency      string
	Spent         *float64
	Metrics       map[string]float64
	DynamicFields []DynamicFieldValue
}

func (p *ReportRowPayload) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Metrics = make(map[string]float64)

	for key, value := range raw {
		switch key {
		case "spent":
			if f, ok := value.(float64); ok {
				spent := f
				p.Spent = &spent
			}
		case "date":
			p.Date = asString(value)
		case "campaign":
			p.Campaign = asString(value)
		case "campaign_name":
			p.CampaignName = asString(value)
		case "item":
			p.Item = asString(value)
		case "item_name":
			p.ItemName = asString(value)
		case "site":
			p.Site = asString(value)
		case "site_name":
			p.SiteName = asString(value)
		case "country":
			p.Country = asString(value)
		case "platform":
			p.Platform = asString(value)
		case "hour_of_day":
			p.HourOfDay = asString(value)
		case "url":
			p.URL = asString(value)
		case "thumbnail_url":
			p.ThumbnailURL = asString(value)
		case "currency":
			p.Currency = asString(value)
		case "dynamic_fields":
			entries, ok := value.([]any)
			if !ok {
				continue
			}
			for _, entry := range entries {
				m, ok := entry.(map[string]any)
				if !ok {
					continue
				}
				p.DynamicFields = append(p.DynamicFields, DynamicFieldValue{
					ID:    asString(m["id"]),
					Value: m["value"],
				})
			}
		default:
			if f, ok := value.(float64); ok {
				p.Metrics[key] = f
			}
		}
	}

	return nil
}

// ToDomain converte a linha crua para o modelo de domínio, achatando
// dynamic_fields no mapa dynamic_metrics. O segundo retorno é false quando
// a linha falha a validação de forma (spent numérico ausente) e deve ser
// descartada, não transformada em erro.
func (p *ReportRowPayload) ToDomain() (*domain.ReportRow, bool) {
	if p.Spent == nil {
		return nil, false
	}

	row := &domain.ReportRow{
		Date:         p.Date,
		Campaign:     p.Campaign,
		CampaignName: p.CampaignName,
		Item:         p.Item,
		ItemName:     p.ItemName,
		Site:         p.Site,
		SiteName:     p.SiteName,
		Country:      p.Country,
		Platform:     p.Platform,
		HourOfDay:    p.HourOfDay,
		URL:          p.URL,
		ThumbnailURL: p.ThumbnailURL,
		Currency:     p.Currency,
		Spent:        *p.Spent,
		Metrics:      p.Metrics,
	}

	if len(p.DynamicFields) > 0 {
		row.DynamicMetrics = make(map[string]any, len(p.DynamicFields))
		for _, df := range p.DynamicFields {
			row.DynamicMetrics[df.ID] = df.Value
		}
	}

	return row, true
}

// ReportResponse é o envelope de resposta dos endpoints de relatório
type ReportResponse struct {
	Timezone string              `json:"timezone,omitempty"`
	Results  []*ReportRowPayload `json:"results"`
	Metadata *ReportMetadata     `json:"metadata,omitempty"`
}

// SubAccountSpendResponse é o envelope do breakdown por content provider
type SubAccountSpendResponse struct {
	Results []*domain.SubAccountSpend `json:"results"`
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// IDs numéricos chegam como float64 no decode genérico
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
