package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/exporting"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
)

// exportRequest é o corpo do endpoint de exportação de planilha
type exportRequest struct {
	Account    *domain.Account    `json:"account"`
	Breakdowns []domain.Breakdown `json:"breakdowns"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`

	Rule                    *domain.ConversionRule `json:"rule,omitempty"`
	IncludeMultiConversions bool                   `json:"include_multi_conversions,omitempty"`

	IncludeClicks    bool `json:"include_clicks,omitempty"`
	IncludeCTR       bool `json:"include_ctr,omitempty"`
	IncludeURL       bool `json:"include_url,omitempty"`
	IncludeThumbnail bool `json:"include_thumbnail,omitempty"`
}

// ExportReport gera uma planilha com uma aba por breakdown pedido e
// devolve o caminho do arquivo gravado
func ExportReport(service exporting.ExportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req exportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		artifact, err := service.ExportBreakdowns(r.Context(), &exporting.MultiExportRequest{
			Account:                 req.Account,
			Breakdowns:              req.Breakdowns,
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
			logrus.Error("Error exporting report:", err)
			writeExportError(w, err, "Erro ao exportar planilha")
			return
		}

		if err := json.NewEncoder(w).Encode(artifact); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeExportError traduz um erro do serviço de exportação para a
// resposta padronizada da API
func writeExportError(w http.ResponseWriter, err error, fallback string) {
	// Verificar se é um ExportError para obter detalhes específicos do erro
	var exportErr *exporting.ExportError
	if errors.As(err, &exportErr) {
		apiErrors.WriteError(w, exportErr.Code, exportErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, exporting.ErrAccountRequired) || errors.Is(err, exporting.ErrNoBreakdowns) || errors.Is(err, exporting.ErrEmptyTable):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes", nil)

	case errors.Is(err, exporting.ErrReportGeneration) || errors.Is(err, exporting.ErrWorkbookWrite):
		apiErrors.WriteError(w, apiErrors.ErrExportFailure, "Falha ao gerar planilha", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
