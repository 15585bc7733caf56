package rules

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// SelectionOutcome é o resultado de uma seleção de regra. Quando a regra
// pertence a uma sub-conta, a conta ativa é trocada e a mudança é sempre
// sinalizada em Guidance, nunca aplicada em silêncio.
type SelectionOutcome struct {
	Account  *domain.Account        `json:"account"`
	Rule     *domain.ConversionRule `json:"rule"`
	Switched bool                   `json:"switched"`
	Guidance string                 `json:"guidance,omitempty"`
}

// SelectRule aplica a seleção de uma regra de conversão sobre a conta
// ativa. Uma regra cujo advertiser_id difere da conta ativa pertence a uma
// sub-conta: se ela for resolvível na lista de sub-contas, a conta ativa é
// trocada; caso contrário a seleção falha.
func (s *Service) SelectRule(_ context.Context, active *domain.Account, rule *domain.ConversionRule, subAccounts []*domain.Account) (*SelectionOutcome, error) {
	if active == nil {
		return nil, NewRuleError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta ativa não informada")
	}
	if rule == nil {
		return nil, NewRuleError(ErrRuleRequired, apiErrors.ErrMissingRequiredData, "regra não informada")
	}

	if rule.AdvertiserID == "" || ruleBelongsTo(rule, active) {
		return &SelectionOutcome{Account: active, Rule: rule}, nil
	}

	for _, sub := range subAccounts {
		if ruleBelongsTo(rule, sub) {
			logrus.Infof("Regra %s pertence à sub-conta %s. Trocando a conta ativa de %s",
				rule.ID, sub.AccountID, active.AccountID)

			return &SelectionOutcome{
				Account:  sub,
				Rule:     rule,
				Switched: true,
				Guidance: fmt.Sprintf("A regra %q pertence à sub-conta %s. A conta ativa foi alterada para ela.",
					rule.DisplayName, sub.Name),
			}, nil
		}
	}

	return nil, NewRuleErrorWithIDs(ErrSubAccountNotFound, apiErrors.ErrAccountNotFound, active.AccountID, rule.ID,
		fmt.Sprintf("a regra pertence ao anunciante %s, que não está entre as sub-contas conhecidas", rule.AdvertiserID))
}

// ruleBelongsTo compara o advertiser_id da regra com a conta, aceitando
// tanto o slug quanto o identificador numérico
func ruleBelongsTo(rule *domain.ConversionRule, account *domain.Account) bool {
	if account == nil || rule.AdvertiserID == "" {
		return false
	}

	if rule.AdvertiserID == account.AccountID {
		return true
	}

	return rule.AdvertiserID == strconv.FormatInt(account.ID, 10)
}
