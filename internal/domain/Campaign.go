package domain

// CampaignTargeting representa um alvo INCLUDE/EXCLUDE genérico de campanha
type CampaignTargeting struct {
	Type  string   `json:"type"`
	Value []string `json:"value"`
}

// Campaign é o subconjunto das configurações de campanha exibido pela
// listagem de campanhas ativas. A API devolve dezenas de outros campos de
// segmentação que não interessam a esta superfície.
type Campaign struct {
	ID                 string             `json:"id"`
	AdvertiserID       string             `json:"advertiser_id"`
	Name               string             `json:"name"`
	BrandingText       string             `json:"branding_text,omitempty"`
	CPC                *float64           `json:"cpc,omitempty"`
	DailyCap           *float64           `json:"daily_cap,omitempty"`
	SpendingLimit      *float64           `json:"spending_limit,omitempty"`
	CPAGoal            *float64           `json:"cpa_goal,omitempty"`
	Spent              *float64           `json:"spent,omitempty"`
	Status             string             `json:"status"`
	IsActive           bool               `json:"is_active"`
	StartDate          string             `json:"start_date,omitempty"`
	EndDate            *string            `json:"end_date,omitempty"`
	ApprovalState      string             `json:"approval_state,omitempty"`
	MarketingObjective string             `json:"marketing_objective,omitempty"`
	PricingModel       string             `json:"pricing_model,omitempty"`
	BidStrategy        string             `json:"bid_strategy,omitempty"`
	CountryTargeting   *CampaignTargeting `json:"country_targeting,omitempty"`
	PlatformTargeting  *CampaignTargeting `json:"platform_targeting,omitempty"`
}

// IsRunning informa se a campanha deve aparecer na listagem de ativas
func (c *Campaign) IsRunning() bool {
	return c.IsActive && c.Status == "RUNNING"
}
