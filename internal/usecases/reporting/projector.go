package reporting

import (
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// Ids padrão das métricas de cliques e impressões na resposta da API
const (
	defaultClicksMetricID      = "clicks"
	defaultImpressionsMetricID = "impressions"
)

// Chaves internas das colunas projetadas
const (
	ColumnDimension   = "dimension"
	ColumnName        = "name"
	ColumnSpent       = "spent"
	ColumnClicks      = "clicks"
	ColumnCTR         = "ctr"
	ColumnURL         = "url"
	ColumnThumbnail   = "thumbnail"
	ColumnConversions = "conversions"
	ColumnCPA         = "cpa"
)

// CPAFlag é a sinalização de CPA contra a meta definida pelo operador
type CPAFlag int

const (
	CPAFlagNone CPAFlag = iota
	CPAFlagGood
	CPAFlagBad
)

// ProjectionOptions parametriza a projeção de um resultado de relatório
type ProjectionOptions struct {
	Currency         string
	IncludeClicks    bool
	IncludeCTR       bool
	IncludeURL       bool
	IncludeThumbnail bool

	// Métricas resolvidas pela reconciliação; colunas de conversão e CPA
	// só existem quando os ids correspondentes foram resolvidos
	Resolved *ResolvedMetrics
	CPAGoal  *float64

	// Ids alternativos para cliques/impressões, quando a API os devolve
	// sob outra chave
	ClicksMetricID      string
	ImpressionsMetricID string
}

// Column descreve uma coluna do esquema projetado
type Column struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Numeric bool   `json:"numeric"`
}

// Cell é um valor projetado. Number é nil quando o valor não foi reportado
// pela API, o que é distinto de zero. Flag só é usada na coluna de CPA.
type Cell struct {
	Text   string   `json:"text,omitempty"`
	Number *float64 `json:"number,omitempty"`
	Flag   CPAFlag  `json:"flag,omitempty"`
}

// ProjectedRow é uma linha projetada, com as células alinhadas ao esquema
// de colunas da tabela
type ProjectedRow struct {
	Cells []Cell `json:"cells"`
}

// ProjectedTable é a saída do projetor: o mesmo artefato alimenta tanto a
// renderização em texto quanto a planilha, garantindo números idênticos
// nas duas saídas
type ProjectedTable struct {
	Breakdown domain.Breakdown `json:"breakdown"`
	Currency  string           `json:"currency"`
	Columns   []Column         `json:"columns"`
	Rows      []ProjectedRow   `json:"rows"`

	TotalSpent       float64 `json:"total_spent"`
	TotalConversions float64 `json:"total_conversions"`
	ActiveCount      int     `json:"active_count"`
	HasActiveCount   bool    `json:"has_active_count"`
}

// Project projeta as linhas de um resultado no esquema de colunas do
// breakdown. Valores ausentes nunca são convertidos em zero nas linhas; o
// zero só entra nos agregados.
func Project(breakdown domain.Breakdown, rows []*domain.ReportRow, opts *ProjectionOptions) *ProjectedTable {
	if opts == nil {
		opts = &ProjectionOptions{}
	}

	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}

	table := &ProjectedTable{
		Breakdown: breakdown,
		Currency:  currency,
		Columns:   buildColumns(breakdown, opts),
		Rows:      make([]ProjectedRow, 0, len(rows)),
	}

	clicksID := opts.ClicksMetricID
	if clicksID == "" {
		clicksID = defaultClicksMetricID
	}
	impressionsID := opts.ImpressionsMetricID
	if impressionsID == "" {
		impressionsID = defaultImpressionsMetricID
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, projectRow(breakdown, row, table.Columns, opts, clicksID, impressionsID))

		table.TotalSpent += row.Spent
		if row.Spent > 0 {
			table.ActiveCount++
		}

		if opts.Resolved != nil && opts.Resolved.ConversionMetricID != "" {
			// Valores irresolvíveis valem zero apenas no agregado
			if conversions, ok := row.MetricValue(opts.Resolved.ConversionMetricID); ok {
				table.TotalConversions += conversions
			}
		}
	}

	// A contagem de ativos só faz sentido para breakdowns de entidade
	table.HasActiveCount = breakdown == domain.BreakdownCampaign ||
		breakdown == domain.BreakdownSite ||
		breakdown == domain.BreakdownItem

	return table
}

func buildColumns(breakdown domain.Breakdown, opts *ProjectionOptions) []Column {
	columns := []Column{}

	switch {
	case breakdown == domain.BreakdownItem:
		columns = append(columns,
			Column{Key: ColumnDimension, Title: "Item ID"},
			Column{Key: ColumnName, Title: "Item Name"},
			Column{Key: ColumnSpent, Title: "Spent", Numeric: true},
		)
		if opts.IncludeClicks {
			columns = append(columns, Column{Key: ColumnClicks, Title: "Clicks", Numeric: true})
		}
		if opts.IncludeCTR {
			columns = append(columns, Column{Key: ColumnCTR, Title: "CTR", Numeric: true})
		}
		if opts.IncludeURL {
			columns = append(columns, Column{Key: ColumnURL, Title: "URL"})
		}
		if opts.IncludeThumbnail {
			columns = append(columns, Column{Key: ColumnThumbnail, Title: "Thumbnail"})
		}
	case breakdown == domain.BreakdownCampaign:
		columns = append(columns,
			Column{Key: ColumnDimension, Title: "Campaign ID"},
			Column{Key: ColumnName, Title: "Campaign Name"},
			Column{Key: ColumnSpent, Title: "Spent", Numeric: true},
		)
		if opts.IncludeClicks {
			columns = append(columns, Column{Key: ColumnClicks, Title: "Clicks", Numeric: true})
		}
		if opts.IncludeCTR {
			columns = append(columns, Column{Key: ColumnCTR, Title: "CTR", Numeric: true})
		}
	case breakdown.IsTimeSeries():
		columns = append(columns,
			Column{Key: ColumnDimension, Title: "Date"},
			Column{Key: ColumnSpent, Title: "Spent", Numeric: true},
		)
		if opts.IncludeClicks {
			columns = append(columns, Column{Key: ColumnClicks, Title: "Clicks", Numeric: true})
		}
		if opts.IncludeCTR {
			columns = append(columns, Column{Key: ColumnCTR, Title: "CTR", Numeric: true})
		}
	default:
		columns = append(columns,
			Column{Key: ColumnDimension, Title: breakdown.Pretty()},
			Column{Key: ColumnSpent, Title: "Spent", Numeric: true},
		)
	}

	if opts.Resolved != nil {
		if opts.Resolved.ConversionMetricID != "" {
			columns = append(columns, Column{Key: ColumnConversions, Title: opts.Resolved.ConversionCaption, Numeric: true})
		}
		if opts.Resolved.CPAMetricID != "" {
			columns = append(columns, Column{Key: ColumnCPA, Title: opts.Resolved.CPACaption, Numeric: true})
		}
	}

	return columns
}

func projectRow(breakdown domain.Breakdown, row *domain.ReportRow, columns []Column, opts *ProjectionOptions, clicksID, impressionsID string) ProjectedRow {
	projected := ProjectedRow{Cells: make([]Cell, 0, len(columns))}

	var conversions *float64
	if opts.Resolved != nil && opts.Resolved.ConversionMetricID != "" {
		if v, ok := row.MetricValue(opts.Resolved.ConversionMetricID); ok {
			conversions = &v
		}
	}

	for _, column := range columns {
		switch column.Key {
		case ColumnDimension:
			projected.Cells = append(projected.Cells, Cell{Text: row.DimensionValue(breakdown)})
		case ColumnName:
			name := row.CampaignName
			if breakdown == domain.BreakdownItem {
				name = row.ItemName
			}
			projected.Cells = append(projected.Cells, Cell{Text: name})
		case ColumnSpent:
			spent := row.Spent
			projected.Cells = append(projected.Cells, Cell{Number: &spent})
		case ColumnClicks:
			projected.Cells = append(projected.Cells, numberCell(row, clicksID))
		case ColumnCTR:
			projected.Cells = append(projected.Cells, ctrCell(row, clicksID, impressionsID))
		case ColumnURL:
			projected.Cells = append(projected.Cells, Cell{Text: row.URL})
		case ColumnThumbnail:
			projected.Cells = append(projected.Cells, Cell{Text: row.ThumbnailURL})
		case ColumnConversions:
			if conversions != nil {
				value := *conversions
				projected.Cells = append(projected.Cells, Cell{Number: &value})
			} else {
				projected.Cells = append(projected.Cells, Cell{})
			}
		case ColumnCPA:
			projected.Cells = append(projected.Cells, cpaCell(row, opts, conversions))
		default:
			projected.Cells = append(projected.Cells, Cell{})
		}
	}

	return projected
}

func numberCell(row *domain.ReportRow, metricID string) Cell {
	if v, ok := row.MetricValue(metricID); ok {
		return Cell{Number: &v}
	}
	return Cell{}
}

// ctrCell calcula cliques/impressões, somente quando ambos resolvem e há
// impressões; nunca divide por zero nem assume zero
func ctrCell(row *domain.ReportRow, clicksID, impressionsID string) Cell {
	clicks, clicksOK := row.MetricValue(clicksID)
	impressions, impressionsOK := row.MetricValue(impressionsID)
	if !clicksOK || !impressionsOK || impressions <= 0 {
		return Cell{}
	}

	ctr := clicks / impressions
	return Cell{Number: &ctr}
}

// cpaCell resolve o CPA da linha e aplica a sinalização contra a meta: bom
// quando estritamente menor que a meta, ruim quando maior que 1,5x a meta.
// A sinalização exige conversões positivas e meta válida.
func cpaCell(row *domain.ReportRow, opts *ProjectionOptions, conversions *float64) Cell {
	if opts.Resolved == nil || opts.Resolved.CPAMetricID == "" {
		return Cell{}
	}

	cpa, ok := row.MetricValue(opts.Resolved.CPAMetricID)
	if !ok {
		return Cell{}
	}

	cell := Cell{Number: &cpa}

	if conversions != nil && *conversions > 0 && opts.CPAGoal != nil {
		goal := *opts.CPAGoal
		if cpa < goal {
			cell.Flag = CPAFlagGood
		} else if cpa > goal*1.5 {
			cell.Flag = CPAFlagBad
		}
	}

	return cell
}
