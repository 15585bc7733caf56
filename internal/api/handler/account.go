package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// SearchAccounts busca anunciantes na rede pelo termo informado. Termos
// com menos de dois caracteres retornam uma lista vazia sem consultar a
// API.
func SearchAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")

		result, err := service.SearchAccounts(r.Context(), term)
		if err != nil {
			logrus.Error("Error searching accounts:", err)
			writeAccountError(w, err, "Erro ao buscar contas no Realize")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListRecentAccounts lista as contas acessadas recentemente, da mais
// recente para a mais antiga
func ListRecentAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListRecentAccounts(r.Context())
		if err != nil {
			logrus.Error("Error listing recent accounts:", err)
			writeAccountError(w, err, "Erro ao listar contas recentes")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// TouchRecentAccount registra o acesso a uma conta na lista de recentes
func TouchRecentAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var acc domain.Account
		if err := json.NewDecoder(r.Body).Decode(&acc); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.TouchRecentAccount(r.Context(), &acc); err != nil {
			logrus.Error("Error touching recent account:", err)
			writeAccountError(w, err, "Erro ao registrar conta recente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListSubAccounts lista as sub-contas de uma conta. Para contas de rede a
// listagem usa o endpoint de anunciantes da rede; para as demais, o de
// anunciantes da própria conta.
func ListSubAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		acc := &domain.Account{
			AccountID: id,
			IsNetwork: r.URL.Query().Get("network") == "true",
		}

		subAccounts, err := service.ListSubAccounts(r.Context(), acc)
		if err != nil {
			logrus.Error("Error listing sub-accounts:", err)
			writeAccountError(w, err, "Erro ao listar sub-contas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(subAccounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListActiveCampaigns lista as campanhas em veiculação de uma conta
func ListActiveCampaigns(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		campaigns, err := service.ListActiveCampaigns(r.Context(), id)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeAccountError(w, err, "Erro ao listar campanhas")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeAccountError traduz um erro do serviço de contas para a resposta
// padronizada da API
func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	// Verificar se é um AccountError para obter detalhes específicos do erro
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta não informada", nil)

	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)

	case errors.Is(err, account.ErrSearchAccounts) || errors.Is(err, account.ErrFetchSubAccounts) || errors.Is(err, account.ErrFetchCampaigns):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAPI, "Erro ao consultar a API do Realize", nil)

	case errors.Is(err, account.ErrDatabaseOperation) || errors.Is(err, account.ErrSaveRecents):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
