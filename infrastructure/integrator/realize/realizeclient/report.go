package realizeclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// maxReportRows é o teto de linhas aceito por relatório. Resultados acima
// do teto são truncados e sinalizados, não rejeitados.
const maxReportRows = 10000

const dateLayout = "2006-01-02"

// GetReport busca um relatório e normaliza o resultado. O breakdown
// item_breakdown roteia para o endpoint de conteúdo e ganha o parâmetro
// dimensions; os demais roteiam para o sumário de campanhas com o breakdown
// embutido no path.
func (c *RealizeClient) GetReport(ctx context.Context, accountID string, breakdown domain.Breakdown, filters *domain.ReportFilters, opts *ReportOptions) (*domain.ReportResult, error) {
	if !breakdown.IsValid() {
		return nil, errors.Errorf("breakdown inválido: %s", breakdown)
	}
	if filters == nil {
		return nil, errors.New("filters é obrigatório para buscar relatório")
	}

	byAd := breakdown == domain.BreakdownItem

	endpoint := "campaign-summary"
	if byAd {
		endpoint = "top-campaign-content"
	}

	params := url.Values{}
	params.Add("start_date", filters.StartDate.Format(dateLayout))
	params.Add("end_date", filters.EndDate.Format(dateLayout))
	if byAd {
		params.Add("dimensions", string(breakdown))
	}
	if opts != nil && opts.ConversionRuleID != "" {
		params.Add("conversion_rule_id", opts.ConversionRuleID)
		if opts.IncludeMultiConversions {
			params.Add("include_multi_conversions", "true")
		}
	}

	reportURL := fmt.Sprintf("%s/api/1.0/%s/reports/%s/dimensions/%s?%s",
		c.Cfg.Realize.BaseURL, accountID, endpoint, breakdown, params.Encode())

	var response realizedomain.ReportResponse
	if err := c.getJSON(ctx, "fetchReport", reportURL, &response); err != nil {
		return nil, err
	}

	result := &domain.ReportResult{
		Rows:                 []*domain.ReportRow{},
		DynamicFieldCaptions: map[string]string{},
	}

	if response.Metadata != nil {
		for _, meta := range response.Metadata.DynamicFields {
			result.DynamicFieldCaptions[meta.ID] = meta.Caption
			result.DynamicFieldOrder = append(result.DynamicFieldOrder, meta.ID)
		}
	}

	for _, payload := range response.Results {
		if len(result.Rows) >= maxReportRows {
			result.Truncated = true
			logrus.Warnf("Relatório da conta %s excedeu %d linhas. Resultado truncado", accountID, maxReportRows)
			break
		}

		row, ok := payload.ToDomain()
		if !ok {
			result.DroppedRows++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	if result.DroppedRows > 0 {
		logrus.Debugf("Relatório da conta %s descartou %d linhas sem spent numérico", accountID, result.DroppedRows)
	}

	return result, nil
}

// GetSubAccountSpend busca o gasto por content provider de uma conta de
// rede, ordenado da API por gasto decrescente
func (c *RealizeClient) GetSubAccountSpend(ctx context.Context, networkAccountID string, filters *domain.ReportFilters) ([]*domain.SubAccountSpend, error) {
	if filters == nil {
		return nil, errors.New("filters é obrigatório para buscar gasto por sub-conta")
	}

	params := url.Values{}
	params.Add("start_date", filters.StartDate.Format(dateLayout))
	params.Add("end_date", filters.EndDate.Format(dateLayout))
	params.Add("orderBy", "-spent")

	spendURL := fmt.Sprintf("%s/api/1.0/%s/reports/campaign-summary/dimensions/%s?%s",
		c.Cfg.Realize.BaseURL, networkAccountID, domain.BreakdownContentProvider, params.Encode())

	var response realizedomain.SubAccountSpendResponse
	if err := c.getJSON(ctx, "fetchSubAccountBreakdown", spendURL, &response); err != nil {
		return nil, err
	}

	if response.Results == nil {
		return []*domain.SubAccountSpend{}, nil
	}

	return response.Results, nil
}
