package reporting

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
)

// Assinaturas textuais que a API embute nos captions das métricas
// dinâmicas de uma regra de conversão. A comparação por substring é
// intencional: os captions não têm formato garantido.
const (
	conversionCaptionMark = ": conversions (clicks)"
	cpaCaptionMark        = ": cpa (clicks)"
)

// Ordem de prioridade dos campos planos usados quando o metadata de
// métricas dinâmicas vem vazio
var (
	conversionFallbacks = []fallbackField{
		{"cpa_actions_num_from_clicks", "Conversions (Clicks)"},
		{"cpa_actions_num", "Conversions"},
		{"actions_num_from_clicks", "Actions (Clicks)"},
		{"actions", "Actions"},
	}
	cpaFallbacks = []fallbackField{
		{"cpa_clicks", "CPA (Clicks)"},
		{"cpa", "CPA"},
	}
)

type fallbackField struct {
	id      string
	caption string
}

// ResolvedMetrics é o resultado da reconciliação: quais ids de metric
// representam contagem de conversões e CPA para a regra selecionada.
// Warnings carrega avisos não-fatais quando uma das métricas não foi
// resolvida.
type ResolvedMetrics struct {
	ConversionMetricID string
	ConversionCaption  string
	CPAMetricID        string
	CPACaption         string
	Warnings           []string
}

// ResolveMetrics localiza as métricas de conversão e de CPA da regra no
// resultado de um fetch. Primeiro varre os captions das métricas
// dinâmicas, na ordem declarada pela API, procurando o display_name da
// regra junto das assinaturas conhecidas; o primeiro match vence. Quando o
// metadata não resolve a contagem de conversões, a primeira linha do
// resultado é inspecionada por uma lista fixa de campos padrão.
func ResolveMetrics(rule *domain.ConversionRule, result *domain.ReportResult) *ResolvedMetrics {
	resolved := &ResolvedMetrics{}
	if rule == nil || result == nil {
		return resolved
	}

	displayName := strings.ToLower(rule.DisplayName)

	if len(result.DynamicFieldCaptions) > 0 && displayName != "" {
		for _, id := range result.DynamicFieldOrder {
			caption := result.DynamicFieldCaptions[id]
			lowered := strings.ToLower(caption)
			if caption != "" && strings.Contains(lowered, displayName) && strings.Contains(lowered, conversionCaptionMark) {
				resolved.ConversionMetricID = id
				resolved.ConversionCaption = caption
				break
			}
		}

		for _, id := range result.DynamicFieldOrder {
			caption := result.DynamicFieldCaptions[id]
			lowered := strings.ToLower(caption)
			if caption != "" && strings.Contains(lowered, displayName) && strings.Contains(lowered, cpaCaptionMark) {
				resolved.CPAMetricID = id
				resolved.CPACaption = caption
				break
			}
		}
	}

	// O fallback inteiro é condicionado à métrica de conversões: quando os
	// captions a resolvem, o CPA não é procurado nos campos planos
	if resolved.ConversionMetricID == "" && len(result.Rows) > 0 {
		firstRow := result.Rows[0]

		for _, field := range conversionFallbacks {
			if _, ok := firstRow.MetricValue(field.id); ok {
				resolved.ConversionMetricID = field.id
				resolved.ConversionCaption = field.caption
				break
			}
		}

		for _, field := range cpaFallbacks {
			if _, ok := firstRow.MetricValue(field.id); ok {
				resolved.CPAMetricID = field.id
				resolved.CPACaption = field.caption
				break
			}
		}
	}

	if resolved.ConversionMetricID == "" {
		resolved.Warnings = append(resolved.Warnings,
			fmt.Sprintf("⚠️ No \"Conversions (Clicks)\" metric found for %q. Please check API mapping.", rule.DisplayName))
	}
	if resolved.CPAMetricID == "" {
		resolved.Warnings = append(resolved.Warnings,
			fmt.Sprintf("⚠️ No \"CPA\" metric found for %q. Please check API mapping.", rule.DisplayName))
	}

	logrus.WithFields(logrus.Fields{
		"rule":              rule.ID,
		"conversion_metric": resolved.ConversionMetricID,
		"cpa_metric":        resolved.CPAMetricID,
	}).Debug("Reconciliação de métricas concluída")

	return resolved
}
