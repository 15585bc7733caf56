package reporting

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/realize-report-api/internal/domain"
)

// markdownRowLimit é o número de linhas exibidas na tabela renderizada
const markdownRowLimit = 10

// missingValue é o marcador de valor não reportado pela API
const missingValue = "–"

// MarkdownConfig parametriza a renderização de uma tabela projetada
type MarkdownConfig struct {
	AccountName string
	AccountID   int64
	Breakdown   domain.Breakdown
	StartDate   string
	EndDate     string

	Table    *ProjectedTable
	Resolved *ResolvedMetrics

	RuleName string
	CPAGoal  *float64

	// GuiBaseURL é a raiz da interface do Realize usada no deep link
	GuiBaseURL string
}

// BuildMarkdown renderiza a tabela projetada em markdown, com cabeçalho por
// breakdown, as dez primeiras linhas, linha de totais e deep link para a
// interface. Os números vêm verbatim da projeção.
func BuildMarkdown(cfg *MarkdownConfig) (string, string) {
	table := cfg.Table

	var b strings.Builder

	fmt.Fprintf(&b, "## %s Report for %s\n\n", cfg.Breakdown.Pretty(), cfg.AccountName)

	if cfg.RuleName != "" {
		fmt.Fprintf(&b, "**Using Conversion Rule:** %s\n", escapePipes(cfg.RuleName))
		if cfg.CPAGoal != nil {
			fmt.Fprintf(&b, "**CPA Goal:** %s\n", formatCurrency(*cfg.CPAGoal, table.Currency))
		}
		if cfg.Resolved != nil {
			switch {
			case cfg.Resolved.ConversionMetricID != "" && cfg.Resolved.CPAMetricID != "":
				fmt.Fprintf(&b, "*(Metrics: %q & %q)*\n", cfg.Resolved.ConversionCaption, cfg.Resolved.CPACaption)
			case cfg.Resolved.ConversionMetricID != "":
				fmt.Fprintf(&b, "*(Metric: %q)*\n", cfg.Resolved.ConversionCaption)
			}
			for _, warning := range cfg.Resolved.Warnings {
				b.WriteString(warning)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}

	writeTable(&b, table)

	if table.HasActiveCount {
		label := strings.ToLower(cfg.Breakdown.Pretty())
		fmt.Fprintf(&b, "Total active %s (w/ spend > $0): %s\n", label, formatCount(float64(table.ActiveCount)))
	}

	fmt.Fprintf(&b, "\n**Totals:** Spent: %s", formatCurrency(table.TotalSpent, table.Currency))
	if cfg.Resolved != nil && cfg.Resolved.ConversionMetricID != "" && cfg.RuleName != "" {
		caption := cfg.Resolved.ConversionCaption
		if caption == "" {
			caption = "Conversions"
		}
		fmt.Fprintf(&b, ", %s: %s", caption, formatCount(table.TotalConversions))
	}
	b.WriteString("\n")

	guiLink := buildGuiLink(cfg)
	fmt.Fprintf(&b, "\n[See more in Realize ↗](%s)", guiLink)

	return b.String(), guiLink
}

func writeTable(b *strings.Builder, table *ProjectedTable) {
	headers := make([]string, 0, len(table.Columns))
	separators := make([]string, 0, len(table.Columns))
	for _, column := range table.Columns {
		title := escapePipes(column.Title)
		headers = append(headers, title)

		width := len(title)
		if width < 3 {
			width = 3
		}
		separator := strings.Repeat("-", width)
		if column.Numeric {
			separator += ":"
		}
		separators = append(separators, separator)
	}

	fmt.Fprintf(b, "| %s |\n| %s |\n", strings.Join(headers, " | "), strings.Join(separators, " | "))

	limit := len(table.Rows)
	if limit > markdownRowLimit {
		limit = markdownRowLimit
	}

	for _, row := range table.Rows[:limit] {
		values := make([]string, 0, len(row.Cells))
		for i, cell := range row.Cells {
			values = append(values, formatCell(cell, table.Columns[i], table.Currency))
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(values, " | "))
	}
}

func formatCell(cell Cell, column Column, currency string) string {
	if cell.Number == nil {
		if cell.Text == "" {
			return missingValue
		}
		return escapePipes(cell.Text)
	}

	var display string
	switch column.Key {
	case ColumnSpent:
		display = formatCurrency(*cell.Number, currency)
	case ColumnCPA:
		display = formatCurrency(*cell.Number, currency)
	case ColumnCTR:
		display = formatPercent(*cell.Number)
	default:
		display = formatCount(*cell.Number)
	}

	switch cell.Flag {
	case CPAFlagGood:
		return fmt.Sprintf("**%s** 🟢", display)
	case CPAFlagBad:
		return fmt.Sprintf("**%s** 🔴", display)
	default:
		return display
	}
}

func buildGuiLink(cfg *MarkdownConfig) string {
	link := fmt.Sprintf("%s/campaigns?accountId=%d&reportId=%s&startDate=%s&endDate=%s",
		cfg.GuiBaseURL, cfg.AccountID, cfg.Breakdown.LinkID(), cfg.StartDate, cfg.EndDate)
	if cfg.RuleName != "" {
		link += "&conversionRuleName=" + url.QueryEscape(cfg.RuleName)
	}
	return link
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

// currencySymbols cobre as moedas das contas atendidas; moedas fora do
// mapa são prefixadas pelo próprio código
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
}

// formatCurrency formata um valor monetário sem casas decimais, com
// separador de milhar
func formatCurrency(value float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}

	negative := value < 0
	if negative {
		value = -value
	}

	formatted := symbol + groupThousands(strconv.FormatFloat(math.Round(value), 'f', 0, 64))
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// formatCount formata uma contagem sem casas decimais, com separador de
// milhar
func formatCount(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	formatted := groupThousands(strconv.FormatFloat(math.Round(value), 'f', 0, 64))
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}

// formatPercent formata uma fração como percentual com duas casas
func formatPercent(value float64) string {
	return strconv.FormatFloat(value*100, 'f', 2, 64) + "%"
}

func groupThousands(s string) string {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}

	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
