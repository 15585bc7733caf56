package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestProject_CampaignColumns(t *testing.T) {
	rows := []*domain.ReportRow{
		{
			Campaign:     "101",
			CampaignName: "Campanha A",
			Spent:        1200.50,
			Metrics:      map[string]float64{"clicks": 300, "impressions": 10000},
		},
	}

	table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{
		Currency:      "BRL",
		IncludeClicks: true,
		IncludeCTR:    true,
	})

	keys := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{ColumnDimension, ColumnName, ColumnSpent, ColumnClicks, ColumnCTR}, keys)
	assert.Equal(t, "BRL", table.Currency)

	assert.Len(t, table.Rows, 1)
	cells := table.Rows[0].Cells
	assert.Equal(t, "101", cells[0].Text)
	assert.Equal(t, "Campanha A", cells[1].Text)
	assert.Equal(t, 1200.50, *cells[2].Number)
	assert.Equal(t, 300.0, *cells[3].Number)
	assert.InDelta(t, 0.03, *cells[4].Number, 1e-9)
}

func TestProject_MissingMetricIsNotZero(t *testing.T) {
	rows := []*domain.ReportRow{
		{Campaign: "101", Spent: 10},
	}

	table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{
		IncludeClicks: true,
		IncludeCTR:    true,
	})

	cells := table.Rows[0].Cells
	// Sem clicks reportados a célula fica vazia, nunca zero
	assert.Nil(t, cells[3].Number)
	assert.Nil(t, cells[4].Number)
}

func TestProject_CTRRequiresImpressions(t *testing.T) {
	tests := []struct {
		name    string
		metrics map[string]float64
		wantNil bool
		want    float64
	}{
		{
			name:    "Com cliques e impressões calcula a fração",
			metrics: map[string]float64{"clicks": 50, "impressions": 1000},
			want:    0.05,
		},
		{
			name:    "Impressões zeradas não dividem",
			metrics: map[string]float64{"clicks": 50, "impressions": 0},
			wantNil: true,
		},
		{
			name:    "Sem impressões não calcula",
			metrics: map[string]float64{"clicks": 50},
			wantNil: true,
		},
		{
			name:    "Sem cliques não calcula",
			metrics: map[string]float64{"impressions": 1000},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []*domain.ReportRow{{Campaign: "1", Metrics: tt.metrics}}
			table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{IncludeCTR: true})

			ctr := table.Rows[0].Cells[3]
			if tt.wantNil {
				assert.Nil(t, ctr.Number)
			} else {
				assert.InDelta(t, tt.want, *ctr.Number, 1e-9)
			}
		})
	}
}

func TestProject_CPAFlags(t *testing.T) {
	resolved := &ResolvedMetrics{
		ConversionMetricID: "m_conv",
		ConversionCaption:  "Compra: conversions (clicks)",
		CPAMetricID:        "m_cpa",
		CPACaption:         "Compra: cpa (clicks)",
	}

	tests := []struct {
		name        string
		cpa         float64
		conversions float64
		goal        *float64
		want        CPAFlag
	}{
		{"Abaixo da meta é bom", 40, 5, floatPtr(50), CPAFlagGood},
		{"Igual à meta fica neutro", 50, 5, floatPtr(50), CPAFlagNone},
		{"Pouco acima da meta fica neutro", 60, 5, floatPtr(50), CPAFlagNone},
		{"Acima de 1,5x a meta é ruim", 76, 5, floatPtr(50), CPAFlagBad},
		{"Sem conversões não sinaliza", 40, 0, floatPtr(50), CPAFlagNone},
		{"Sem meta não sinaliza", 40, 5, nil, CPAFlagNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []*domain.ReportRow{{
				Campaign: "1",
				Spent:    200,
				DynamicMetrics: map[string]any{
					"m_conv": tt.conversions,
					"m_cpa":  tt.cpa,
				},
			}}

			table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{
				Resolved: resolved,
				CPAGoal:  tt.goal,
			})

			cells := table.Rows[0].Cells
			cpaCell := cells[len(cells)-1]
			assert.Equal(t, tt.cpa, *cpaCell.Number)
			assert.Equal(t, tt.want, cpaCell.Flag)
		})
	}
}

func TestProject_Aggregates(t *testing.T) {
	resolved := &ResolvedMetrics{ConversionMetricID: "m_conv"}

	rows := []*domain.ReportRow{
		{Campaign: "1", Spent: 100, DynamicMetrics: map[string]any{"m_conv": 4.0}},
		{Campaign: "2", Spent: 0, DynamicMetrics: map[string]any{"m_conv": 2.0}},
		{Campaign: "3", Spent: 50},
	}

	table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{Resolved: resolved})

	assert.Equal(t, 150.0, table.TotalSpent)
	// Linhas sem a métrica contribuem com zero apenas no agregado
	assert.Equal(t, 6.0, table.TotalConversions)
	assert.Equal(t, 2, table.ActiveCount)
	assert.True(t, table.HasActiveCount)
}

func TestProject_ActiveCountOnlyForEntityBreakdowns(t *testing.T) {
	rows := []*domain.ReportRow{{Date: "2024-01-15 00:00:00", Spent: 10}}

	table := Project(domain.BreakdownDay, rows, nil)

	assert.False(t, table.HasActiveCount)
	assert.Equal(t, "2024-01-15", table.Rows[0].Cells[0].Text)
}

func TestProject_ItemColumnsWithURLAndThumbnail(t *testing.T) {
	rows := []*domain.ReportRow{
		{
			Item:         "it-9",
			ItemName:     "Anúncio X",
			Spent:        5,
			URL:          "https://example.com/landing",
			ThumbnailURL: "https://cdn.example.com/thumb.png",
		},
	}

	table := Project(domain.BreakdownItem, rows, &ProjectionOptions{
		IncludeURL:       true,
		IncludeThumbnail: true,
	})

	keys := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{ColumnDimension, ColumnName, ColumnSpent, ColumnURL, ColumnThumbnail}, keys)

	cells := table.Rows[0].Cells
	assert.Equal(t, "Anúncio X", cells[1].Text)
	assert.Equal(t, "https://example.com/landing", cells[3].Text)
	assert.Equal(t, "https://cdn.example.com/thumb.png", cells[4].Text)
}

func TestProject_CustomMetricIDs(t *testing.T) {
	rows := []*domain.ReportRow{
		{Campaign: "1", Metrics: map[string]float64{"clicks_total": 10, "imps_total": 100}},
	}

	table := Project(domain.BreakdownCampaign, rows, &ProjectionOptions{
		IncludeClicks:       true,
		IncludeCTR:          true,
		ClicksMetricID:      "clicks_total",
		ImpressionsMetricID: "imps_total",
	})

	cells := table.Rows[0].Cells
	assert.Equal(t, 10.0, *cells[3].Number)
	assert.InDelta(t, 0.1, *cells[4].Number, 1e-9)
}
