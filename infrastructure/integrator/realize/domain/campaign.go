package realizedomain

import "github.com/vfg2006/realize-report-api/internal/domain"

// TargetingPayload é um alvo include/exclude genérico de campanha
type TargetingPayload struct {
	Type  string   `json:"type"`
	Value []string `json:"value"`
}

// CampaignPayload é o subconjunto das configurações de campanha que a
// listagem consome; o restante do payload da API é ignorado no decode
type CampaignPayload struct {
	ID                 FlexibleID        `json:"id"`
	AdvertiserID       FlexibleID        `json:"advertiser_id"`
	Name               string            `json:"name"`
	BrandingText       string            `json:"branding_text"`
	CPC                *float64          `json:"cpc"`
	DailyCap           *float64          `json:"daily_cap"`
	SpendingLimit      *float64          `json:"spending_limit"`
	CPAGoal            *float64          `json:"cpa_goal"`
	Spent              *float64          `json:"spent"`
	Status             string            `json:"status"`
	IsActive           bool              `json:"is_active"`
	StartDate          string            `json:"start_date"`
	EndDate            *string           `json:"end_date"`
	ApprovalState      string            `json:"approval_state"`
	MarketingObjective string            `json:"marketing_objective"`
	PricingModel       string            `json:"pricing_model"`
	BidStrategy        string            `json:"bid_strategy"`
	CountryTargeting   *TargetingPayload `json:"country_targeting"`
	PlatformTargeting  *TargetingPayload `json:"platform_targeting"`
}

func (p *CampaignPayload) ToDomain() *domain.Campaign {
	campaign := &domain.Campaign{
		ID:                 string(p.ID),
		AdvertiserID:       string(p.AdvertiserID),
		Name:               p.Name,
		BrandingText:       p.BrandingText,
		CPC:                p.CPC,
		DailyCap:           p.DailyCap,
		SpendingLimit:      p.SpendingLimit,
		CPAGoal:            p.CPAGoal,
		Spent:              p.Spent,
		Status:             p.Status,
		IsActive:           p.IsActive,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		ApprovalState:      p.ApprovalState,
		MarketingObjective: p.MarketingObjective,
		PricingModel:       p.PricingModel,
		BidStrategy:        p.BidStrategy,
	}

	if p.CountryTargeting != nil {
		campaign.CountryTargeting = &domain.CampaignTargeting{
			Type:  p.CountryTargeting.Type,
			Value: p.CountryTargeting.Value,
		}
	}

	if p.PlatformTargeting != nil {
		campaign.PlatformTargeting = &domain.CampaignTargeting{
			Type:  p.PlatformTargeting.Type,
			Value: p.PlatformTargeting.Value,
		}
	}

	return campaign
}
