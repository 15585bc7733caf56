package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	realizedomain "github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/domain"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/reporting"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// reportRequest é o corpo do endpoint de geração de relatório
type reportRequest struct {
	Account   *domain.Account  `json:"account"`
	Breakdown domain.Breakdown `json:"breakdown"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`

	Rule                    *domain.ConversionRule `json:"rule,omitempty"`
	IncludeMultiConversions bool                   `json:"include_multi_conversions,omitempty"`

	IncludeClicks    bool `json:"include_clicks,omitempty"`
	IncludeCTR       bool `json:"include_ctr,omitempty"`
	IncludeURL       bool `json:"include_url,omitempty"`
	IncludeThumbnail bool `json:"include_thumbnail,omitempty"`
}

// GenerateReport executa o pipeline completo de relatório e devolve a
// tabela projetada com sua renderização em markdown
func GenerateReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req reportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		report, err := service.GenerateReport(r.Context(), &reporting.ReportInput{
			Account:                 req.Account,
			Breakdown:               req.Breakdown,
			StartDate:               req.StartDate,
			EndDate:                 req.EndDate,
			Rule:                    req.Rule,
			IncludeMultiConversions: req.IncludeMultiConversions,
			IncludeClicks:           req.IncludeClicks,
			IncludeCTR:              req.IncludeCTR,
			IncludeURL:              req.IncludeURL,
			IncludeThumbnail:        req.IncludeThumbnail,
		})
		if err != nil {
			logrus.Error("Error generating report:", err)
			writeReportError(w, err, "Erro ao gerar relatório")
			return
		}

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetSiteBreakdownPage serve uma página do breakdown por site de uma
// conta. Apenas as páginas 1 a 5 são servidas, com dez linhas por página.
func GetSiteBreakdownPage(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Página inválida: "+raw, nil)
				return
			}
			page = parsed
		}

		rows, err := service.GetSiteBreakdownPage(
			r.Context(),
			&domain.Account{AccountID: id},
			r.URL.Query().Get("start_date"),
			r.URL.Query().Get("end_date"),
			page,
		)
		if err != nil {
			logrus.Error("Error fetching site breakdown page:", err)
			writeReportError(w, err, "Erro ao buscar página de sites")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(rows); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetSubAccountSpend serve o gasto por content provider de uma conta de
// rede, ordenado do maior para o menor
func GetSubAccountSpend(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		spend, err := service.GetSubAccountSpend(
			r.Context(),
			&domain.Account{AccountID: id},
			r.URL.Query().Get("start_date"),
			r.URL.Query().Get("end_date"),
		)
		if err != nil {
			logrus.Error("Error fetching sub-account spend:", err)
			writeReportError(w, err, "Erro ao buscar gasto por sub-conta")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(spend); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeReportError traduz um erro do pipeline de relatório para a
// resposta padronizada da API
func writeReportError(w http.ResponseWriter, err error, fallback string) {
	// Verificar se é um ReportError para obter detalhes específicos do erro
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	// Erros vindos diretamente do integrador
	var transportErr *realizedomain.TransportError
	switch {
	case errors.Is(err, realizedomain.ErrPayloadTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "A resposta da API excedeu o tamanho máximo permitido", nil)

	case errors.Is(err, realizedomain.ErrPageOutOfRange):
		apiErrors.WriteError(w, apiErrors.ErrPageOutOfRange, "Página fora do intervalo permitido", nil)

	case errors.As(err, &transportErr):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamNetwork, transportErr.Error(), nil)

	case errors.Is(err, reporting.ErrFetchReport):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAPI, "Erro ao consultar a API do Realize", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
