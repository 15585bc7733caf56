package domain

import (
	"strconv"
	"strings"
	"time"
)

// Breakdown é a dimensão pela qual um relatório é agrupado
type Breakdown string

const (
	BreakdownDay             Breakdown = "day"
	BreakdownWeek            Breakdown = "week"
	BreakdownMonth           Breakdown = "month"
	BreakdownHourOfDay       Breakdown = "by_hour_of_day"
	BreakdownCampaign        Breakdown = "campaign_breakdown"
	BreakdownSite            Breakdown = "site_breakdown"
	BreakdownCountry         Breakdown = "country_breakdown"
	BreakdownPlatform        Breakdown = "platform_breakdown"
	BreakdownItem            Breakdown = "item_breakdown"
	BreakdownContentProvider Breakdown = "content_provider_breakdown"
)

// Breakdowns disponíveis para o operador, na ordem exibida pela interface
var AvailableBreakdowns = []Breakdown{
	BreakdownDay,
	BreakdownWeek,
	BreakdownMonth,
	BreakdownCampaign,
	BreakdownItem,
	BreakdownSite,
	BreakdownCountry,
	BreakdownPlatform,
}

// PrettyDimension mapeia o breakdown para o rótulo exibido ao operador
var PrettyDimension = map[Breakdown]string{
	BreakdownDay:       "Day",
	BreakdownWeek:      "Week",
	BreakdownMonth:     "Month",
	BreakdownHourOfDay: "Hour of Day",
	BreakdownCampaign:  "Campaign",
	BreakdownSite:      "Site",
	BreakdownCountry:   "Country",
	BreakdownPlatform:  "Platform",
	BreakdownItem:      "Ad",
}

// linkID mapeia o breakdown para o reportId usado no deep link da interface
var linkID = map[Breakdown]string{
	BreakdownDay:       "day",
	BreakdownWeek:      "week",
	BreakdownMonth:     "month",
	BreakdownHourOfDay: "hour-of-day",
	BreakdownCampaign:  "campaigns",
	BreakdownSite:      "sites",
	BreakdownCountry:   "country",
	BreakdownPlatform:  "platform",
	BreakdownItem:      "creative",
}

func (b Breakdown) IsValid() bool {
	_, ok := PrettyDimension[b]
	return ok
}

// IsTimeSeries informa se o breakdown agrupa por datas (day/week/month)
func (b Breakdown) IsTimeSeries() bool {
	return b == BreakdownDay || b == BreakdownWeek || b == BreakdownMonth
}

// DimensionKey devolve a chave da coluna de dimensão: o sufixo "_breakdown"
// é removido e o resultado é normalizado para minúsculas
func (b Breakdown) DimensionKey() string {
	return strings.ToLower(strings.TrimSuffix(string(b), "_breakdown"))
}

// Pretty devolve o rótulo do breakdown, caindo para o próprio nome quando
// a dimensão não é conhecida
func (b Breakdown) Pretty() string {
	if pretty, ok := PrettyDimension[b]; ok {
		return pretty
	}
	return string(b)
}

// LinkID devolve o reportId do deep link; "campaigns" é o fallback da interface
func (b Breakdown) LinkID() string {
	if id, ok := linkID[b]; ok {
		return id
	}
	return "campaigns"
}

// ReportRow é uma linha de relatório normalizada. Os campos de dimensão
// conhecidos ficam tipados; métricas planas numéricas adicionais ficam em
// Metrics e as métricas dinâmicas (dependentes da regra de conversão
// selecionada) ficam em DynamicMetrics, chaveadas pelo id do metric.
// Linhas nunca são mutadas depois de criadas.
type ReportRow struct {
	Date         string  `json:"date,omitempty"`
	Campaign     string  `json:"campaign,omitempty"`
	CampaignName string  `json:"campaign_name,omitempty"`
	Item         string  `json:"item,omitempty"`
	ItemName     string  `json:"item_name,omitempty"`
	Site         string  `json:"site,omitempty"`
	SiteName     string  `json:"site_name,omitempty"`
	Country      string  `json:"country,omitempty"`
	Platform     string  `json:"platform,omitempty"`
	HourOfDay    string  `json:"hour_of_day,omitempty"`
	URL          string  `json:"url,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Currency     string  `json:"currency,omitempty"`
	Spent        float64 `json:"spent"`

	// Métricas planas adicionais retornadas pela API (clicks, impressions,
	// cpa_actions_num_from_clicks, vctr, ...)
	Metrics map[string]float64 `json:"metrics,omitempty"`

	// Métricas dinâmicas achatadas de dynamic_fields: metric_id -> valor
	DynamicMetrics map[string]any `json:"dynamic_metrics,omitempty"`
}

// DimensionValue devolve o valor da dimensão da linha para o breakdown
// informado. O projetor decide a coluna pelo enum, nunca sondando chaves
// arbitrárias da linha.
func (r *ReportRow) DimensionValue(b Breakdown) string {
	switch b {
	case BreakdownDay, BreakdownWeek, BreakdownMonth:
		// A API devolve "2024-01-15 00:00:00"; só a porção de data interessa
		if idx := strings.IndexByte(r.Date, ' '); idx > 0 {
			return r.Date[:idx]
		}
		return r.Date
	case BreakdownCampaign:
		return r.Campaign
	case BreakdownItem:
		return r.Item
	case BreakdownSite:
		return r.Site
	case BreakdownCountry:
		return r.Country
	case BreakdownPlatform:
		return r.Platform
	case BreakdownHourOfDay:
		return r.HourOfDay
	default:
		return ""
	}
}

// MetricValue resolve um valor numérico pelo id do metric: primeiro em
// DynamicMetrics, depois nos campos planos da linha. Ausência é distinta de
// zero, então o segundo retorno informa se o valor existe.
func (r *ReportRow) MetricValue(id string) (float64, bool) {
	if raw, ok := r.DynamicMetrics[id]; ok && raw != nil {
		if v, ok := toFloat(raw); ok {
			return v, true
		}
	}

	if v, ok := r.Metrics[id]; ok {
		return v, true
	}

	return 0, false
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		// Valores de CPA podem vir formatados ("$12.34")
		cleaned := strings.Map(func(ch rune) rune {
			if ch >= '0' && ch <= '9' || ch == '.' || ch == '-' {
				return ch
			}
			return -1
		}, v)

		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ReportResult é o artefato produzido pelo fetch de relatório, consumido
// pelo reconciliador de métricas e pelo projetor
type ReportResult struct {
	Rows []*ReportRow

	// DynamicFieldCaptions mapeia metric_id -> caption; DynamicFieldOrder
	// preserva a ordem em que a API declarou os campos, para que o
	// reconciliador tenha semântica determinística de primeiro-match
	DynamicFieldCaptions map[string]string
	DynamicFieldOrder    []string

	// Truncated indica que o resultado excedeu o teto de linhas e foi
	// cortado; DroppedRows conta linhas descartadas por falha de forma
	Truncated   bool
	DroppedRows int
}

// ReportFilters carrega o período de um relatório, sempre em datas de
// calendário (sem hora)
type ReportFilters struct {
	StartDate time.Time
	EndDate   time.Time
}

// SubAccountSpend é uma linha do breakdown por content provider de uma rede
type SubAccountSpend struct {
	ContentProvider   string  `json:"content_provider"`
	ContentProviderID string  `json:"content_provider_id"`
	Spent             float64 `json:"spent"`
}
