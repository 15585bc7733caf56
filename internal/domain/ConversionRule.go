package domain

// Categorias de regra consideradas relevantes para seleção
var RelevantRuleCategories = []string{"MAKE_PURCHASE", "LEAD", "APP_INSTALL"}

const RuleStatusActive = "ACTIVE"

// ConversionRule representa uma regra de conversão (pixel universal) de uma
// conta. CPAGoal é o único campo mutado localmente: ele é persistido junto
// com a regra primária da conta.
type ConversionRule struct {
	ID                        string   `json:"id"`
	DisplayName               string   `json:"display_name"`
	Category                  string   `json:"category,omitempty"`
	Status                    string   `json:"status,omitempty"`
	RuleType                  string   `json:"rule_type,omitempty"`
	EventName                 string   `json:"event_name,omitempty"`
	LastReceived              *string  `json:"last_received,omitempty"`
	TotalReceived             *int64   `json:"total_received,omitempty"`
	IncludeInTotalConversions bool     `json:"include_in_total_conversions"`
	AdvertiserID              string   `json:"advertiser_id,omitempty"`
	CPAGoal                   *float64 `json:"cpaGoal,omitempty"`
}

// IsSelectable informa se a regra pode ser oferecida ao operador: apenas
// regras ativas, de categoria relevante e incluídas no total de conversões.
func (r *ConversionRule) IsSelectable() bool {
	if r.Status != RuleStatusActive || !r.IncludeInTotalConversions {
		return false
	}

	for _, category := range RelevantRuleCategories {
		if r.Category == category {
			return true
		}
	}

	return false
}
