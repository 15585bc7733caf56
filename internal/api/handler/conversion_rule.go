package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/internal/usecases/rules"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// ListConversionRules lista as regras de conversão de uma conta. Com
// ?selectable=true apenas as regras elegíveis para seleção são
// retornadas.
func ListConversionRules(service rules.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var list []*domain.ConversionRule
		var err error
		if r.URL.Query().Get("selectable") == "true" {
			list, err = service.SelectableRules(r.Context(), id)
		} else {
			list, err = service.FetchConversionRules(r.Context(), id)
		}
		if err != nil {
			logrus.Error("Error listing conversion rules:", err)
			writeRuleError(w, err, "Erro ao listar regras de conversão")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(list); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetPrimaryRule retorna a regra primária persistida da conta, ou 204
// quando não há regra selecionada
func GetPrimaryRule(service rules.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		rule, err := service.LoadPrimaryRule(r.Context(), id)
		if err != nil {
			logrus.Error("Error loading primary rule:", err)
			writeRuleError(w, err, "Erro ao carregar regra primária")
			return
		}

		if rule == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SavePrimaryRule persiste a regra primária da conta, incluindo a meta de
// CPA quando informada
func SavePrimaryRule(service rules.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var rule domain.ConversionRule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.SavePrimaryRule(r.Context(), id, &rule); err != nil {
			logrus.Error("Error saving primary rule:", err)
			writeRuleError(w, err, "Erro ao salvar regra primária")
			return
		}

		if err := json.NewEncoder(w).Encode(&rule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ClearPrimaryRule remove a regra primária persistida da conta
func ClearPrimaryRule(service rules.RuleService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		if err := service.ClearPrimaryRule(r.Context(), id); err != nil {
			logrus.Error("Error clearing primary rule:", err)
			writeRuleError(w, err, "Erro ao remover regra primária")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// selectRuleRequest é o corpo do endpoint de seleção de regra. SubAccounts
// é opcional: quando ausente, as sub-contas são buscadas na hora.
type selectRuleRequest struct {
	Account     *domain.Account        `json:"account"`
	Rule        *domain.ConversionRule `json:"rule"`
	SubAccounts []*domain.Account      `json:"sub_accounts,omitempty"`
}

// SelectRule resolve a seleção de uma regra contra a conta ativa. Quando
// a regra pertence a uma sub-conta, o resultado indica a troca de conta
// ativa.
func SelectRule(service rules.RuleService, accounts account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req selectRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		subAccounts := req.SubAccounts
		if len(subAccounts) == 0 && req.Account != nil {
			fetched, err := accounts.ListSubAccounts(r.Context(), req.Account)
			if err != nil {
				logrus.Warn("Não foi possível buscar sub-contas para a seleção de regra:", err)
			} else {
				subAccounts = fetched
			}
		}

		outcome, err := service.SelectRule(r.Context(), req.Account, req.Rule, subAccounts)
		if err != nil {
			logrus.Error("Error selecting rule:", err)
			writeRuleError(w, err, "Erro ao selecionar regra de conversão")
			return
		}

		if err := json.NewEncoder(w).Encode(outcome); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeRuleError traduz um erro do serviço de regras para a resposta
// padronizada da API
func writeRuleError(w http.ResponseWriter, err error, fallback string) {
	// Verificar se é um RuleError para obter detalhes específicos do erro
	var ruleErr *rules.RuleError
	if errors.As(err, &ruleErr) {
		apiErrors.WriteError(w, ruleErr.Code, ruleErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, rules.ErrAccountRequired) || errors.Is(err, rules.ErrRuleRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)

	case errors.Is(err, rules.ErrRuleNotSelectable):
		apiErrors.WriteError(w, apiErrors.ErrRuleNotSelectable, "Regra de conversão não selecionável", nil)

	case errors.Is(err, rules.ErrInvalidCPAGoal):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCPAGoal, "CPA goal must be an integer between 10 and 999", nil)

	case errors.Is(err, rules.ErrSubAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "A regra pertence a outra conta que não pôde ser resolvida", nil)

	case errors.Is(err, rules.ErrFetchRules):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAPI, "Erro ao consultar a API do Realize", nil)

	case errors.Is(err, rules.ErrPersistPrimaryRule):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao persistir a regra primária", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
