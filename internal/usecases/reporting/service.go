package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/infrastructure/integrator/realize/realizeclient"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"github.com/vfg2006/realize-report-api/pkg/utils"
)

// ReportInput descreve um pedido de relatório já com a conta e a regra
// resolvidas pelo chamador
type ReportInput struct {
	Account   *domain.Account
	Breakdown domain.Breakdown
	StartDate string
	EndDate   string

	// Rule é a regra de conversão anexada ao relatório, quando houver;
	// IncludeMultiConversions só tem efeito com uma regra presente
	Rule                    *domain.ConversionRule
	IncludeMultiConversions bool

	IncludeClicks    bool
	IncludeCTR       bool
	IncludeURL       bool
	IncludeThumbnail bool
}

// Report é o artefato final de um pedido de relatório: a tabela projetada
// e sua renderização em markdown, com os mesmos números
type Report struct {
	Breakdown   domain.Breakdown `json:"breakdown"`
	Table       *ProjectedTable  `json:"table"`
	Resolved    *ResolvedMetrics `json:"resolved,omitempty"`
	Markdown    string           `json:"markdown"`
	GuiLink     string           `json:"gui_link"`
	Truncated   bool             `json:"truncated,omitempty"`
	DroppedRows int              `json:"dropped_rows,omitempty"`
}

type ReportService interface {
	BuildFilters(startDate, endDate string) (*domain.ReportFilters, error)
	GenerateReport(ctx context.Context, input *ReportInput) (*Report, error)
	GetSiteBreakdownPage(ctx context.Context, account *domain.Account, startDate, endDate string, page int) ([]*domain.ReportRow, error)
	GetSubAccountSpend(ctx context.Context, account *domain.Account, startDate, endDate string) ([]*domain.SubAccountSpend, error)
}

type Service struct {
	realizeClient realizeclient.Client
	cfg           *config.Config

	now func() time.Time
}

func NewService(realizeClient realizeclient.Client, cfg *config.Config) ReportService {
	return &Service{
		realizeClient: realizeClient,
		cfg:           cfg,
		now:           time.Now,
	}
}

// BuildFilters valida o período pedido antes de qualquer chamada de rede:
// datas obrigatórias, início não posterior ao fim e fim não posterior a
// ontem. Datas inválidas nunca são corrigidas silenciosamente.
func (s *Service) BuildFilters(startDate, endDate string) (*domain.ReportFilters, error) {
	if startDate == "" || endDate == "" {
		return nil, NewReportError(ErrMissingDates, apiErrors.ErrMissingRequiredData, "Please select start and end dates")
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, NewReportError(ErrMissingDates, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD")
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, NewReportError(ErrMissingDates, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD")
	}

	if end.After(utils.Yesterday(s.now())) {
		return nil, NewReportError(ErrEndAfterYesterday, apiErrors.ErrInvalidDateRange, "End date cannot be later than yesterday")
	}

	if start.After(end) {
		return nil, NewReportError(ErrStartAfterEnd, apiErrors.ErrInvalidDateRange, "Start date cannot be after end date")
	}

	return &domain.ReportFilters{StartDate: start, EndDate: end}, nil
}

// GenerateReport executa o pipeline completo de um relatório: valida,
// busca, reconcilia métricas, projeta e renderiza
func (s *Service) GenerateReport(ctx context.Context, input *ReportInput) (*Report, error) {
	if input == nil || input.Account == nil {
		return nil, NewReportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}
	if !input.Breakdown.IsValid() {
		return nil, NewReportError(ErrInvalidBreakdown, apiErrors.ErrInvalidRequest, string(input.Breakdown))
	}

	filters, err := s.BuildFilters(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	var opts *realizeclient.ReportOptions
	if input.Rule != nil {
		opts = &realizeclient.ReportOptions{
			ConversionRuleID:        input.Rule.ID,
			IncludeMultiConversions: input.IncludeMultiConversions,
		}
	}

	result, err := s.realizeClient.GetReport(ctx, input.Account.AccountID, input.Breakdown, filters, opts)
	if err != nil {
		return nil, NewReportErrorWithID(ErrFetchReport, apiErrors.ErrUpstreamAPI, input.Account.AccountID, err.Error())
	}

	var resolved *ResolvedMetrics
	var cpaGoal *float64
	if input.Rule != nil {
		resolved = ResolveMetrics(input.Rule, result)
		cpaGoal = input.Rule.CPAGoal
	}

	table := Project(input.Breakdown, result.Rows, &ProjectionOptions{
		Currency:         input.Account.Currency,
		IncludeClicks:    input.IncludeClicks,
		IncludeCTR:       input.IncludeCTR,
		IncludeURL:       input.IncludeURL,
		IncludeThumbnail: input.IncludeThumbnail,
		Resolved:         resolved,
		CPAGoal:          cpaGoal,
	})

	ruleName := ""
	if input.Rule != nil {
		ruleName = input.Rule.DisplayName
	}

	markdown, guiLink := BuildMarkdown(&MarkdownConfig{
		AccountName: input.Account.Name,
		AccountID:   input.Account.ID,
		Breakdown:   input.Breakdown,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Table:       table,
		Resolved:    resolved,
		RuleName:    ruleName,
		CPAGoal:     cpaGoal,
		GuiBaseURL:  s.cfg.Realize.GuiURL,
	})

	if result.Truncated {
		logrus.Warnf("Relatório %s da conta %s foi truncado no teto de linhas",
			input.Breakdown, input.Account.AccountID)
	}

	return &Report{
		Breakdown:   input.Breakdown,
		Table:       table,
		Resolved:    resolved,
		Markdown:    markdown,
		GuiLink:     guiLink,
		Truncated:   result.Truncated,
		DroppedRows: result.DroppedRows,
	}, nil
}

// GetSiteBreakdownPage serve uma página do breakdown por site, validando o
// período antes da chamada
func (s *Service) GetSiteBreakdownPage(ctx context.Context, account *domain.Account, startDate, endDate string, page int) ([]*domain.ReportRow, error) {
	if account == nil {
		return nil, NewReportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}

	filters, err := s.BuildFilters(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.realizeClient.GetSiteBreakdownPage(ctx, account.AccountID, filters, page)
}

// GetSubAccountSpend serve o gasto por content provider de uma conta de rede
func (s *Service) GetSubAccountSpend(ctx context.Context, account *domain.Account, startDate, endDate string) ([]*domain.SubAccountSpend, error) {
	if account == nil {
		return nil, NewReportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}

	filters, err := s.BuildFilters(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.realizeClient.GetSubAccountSpend(ctx, account.AccountID, filters)
}
