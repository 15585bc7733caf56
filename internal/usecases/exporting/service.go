package exporting

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/reporting"
	"github.com/vfg2006/realize-report-api/pkg/apiErrors"
	"github.com/vfg2006/realize-report-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// cpaHighlightColor é o preenchimento aplicado às células de CPA abaixo
// da meta (verde claro)
const cpaHighlightColor = "B6FFB6"

// defaultColumnWidth é a largura padrão das colunas da planilha
const defaultColumnWidth = 18.0

// ExportRequest descreve a exportação de uma tabela já projetada para
// uma planilha de aba única
type ExportRequest struct {
	Account   *domain.Account
	Table     *reporting.ProjectedTable
	StartDate string
	EndDate   string
	CPAGoal   *float64
}

// MultiExportRequest descreve a exportação de vários breakdowns de uma
// conta em uma única planilha, uma aba por breakdown
type MultiExportRequest struct {
	Account    *domain.Account
	Breakdowns []domain.Breakdown
	StartDate  string
	EndDate    string

	Rule                    *domain.ConversionRule
	IncludeMultiConversions bool

	IncludeClicks    bool
	IncludeCTR       bool
	IncludeURL       bool
	IncludeThumbnail bool
}

// ExportArtifact identifica a planilha gravada em disco
type ExportArtifact struct {
	RunID  string   `json:"run_id"`
	Path   string   `json:"path"`
	Sheets []string `json:"sheets"`
	Rows   int      `json:"rows"`
}

type ExportService interface {
	ExportTable(ctx context.Context, req *ExportRequest) (*ExportArtifact, error)
	ExportBreakdowns(ctx context.Context, req *MultiExportRequest) (*ExportArtifact, error)
}

type Service struct {
	reports reporting.ReportService
	cfg     *config.Config
}

func NewService(reports reporting.ReportService, cfg *config.Config) ExportService {
	return &Service{
		reports: reports,
		cfg:     cfg,
	}
}

// ExportTable grava uma tabela projetada como planilha de aba única. Os
// números da planilha são exatamente os da projeção que alimenta o
// markdown.
func (s *Service) ExportTable(ctx context.Context, req *ExportRequest) (*ExportArtifact, error) {
	if req == nil || req.Account == nil {
		return nil, NewExportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}
	if req.Table == nil || len(req.Table.Columns) == 0 {
		return nil, NewExportErrorWithID(ErrEmptyTable, apiErrors.ErrMissingRequiredData, req.Account.AccountID, "tabela projetada vazia")
	}

	fileName := buildFileName(req.Account.Name, string(req.Table.Breakdown), req.StartDate, req.EndDate)

	return s.writeWorkbook(ctx, req.Account, []*reporting.ProjectedTable{req.Table}, req.CPAGoal, fileName)
}

// ExportBreakdowns executa o pipeline de exportação multiabas: para cada
// breakdown pedido gera o relatório completo e acumula a tabela
// projetada; a planilha só é gravada uma vez, ao final.
func (s *Service) ExportBreakdowns(ctx context.Context, req *MultiExportRequest) (*ExportArtifact, error) {
	if req == nil || req.Account == nil {
		return nil, NewExportError(ErrAccountRequired, apiErrors.ErrMissingRequiredData, "conta não informada")
	}
	if len(req.Breakdowns) == 0 {
		return nil, NewExportErrorWithID(ErrNoBreakdowns, apiErrors.ErrMissingRequiredData, req.Account.AccountID, "nenhum breakdown informado")
	}

	tables := make([]*reporting.ProjectedTable, 0, len(req.Breakdowns))
	for _, breakdown := range req.Breakdowns {
		report, err := s.reports.GenerateReport(ctx, &reporting.ReportInput{
			Account:                 req.Account,
			Breakdown:               breakdown,
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
			return nil, NewExportErrorWithID(ErrReportGeneration, apiErrors.ErrExportFailure, req.Account.AccountID,
				string(breakdown)+": "+err.Error())
		}

		tables = append(tables, report.Table)
	}

	var cpaGoal *float64
	if req.Rule != nil {
		cpaGoal = req.Rule.CPAGoal
	}

	breakdownName := ""
	if len(req.Breakdowns) == 1 {
		breakdownName = string(req.Breakdowns[0])
	}
	fileName := buildFileName(req.Account.Name, breakdownName, req.StartDate, req.EndDate)

	return s.writeWorkbook(ctx, req.Account, tables, cpaGoal, fileName)
}

// writeWorkbook monta o workbook em memória, uma aba por tabela, e grava
// em disco uma única vez
func (s *Service) writeWorkbook(ctx context.Context, account *domain.Account, tables []*reporting.ProjectedTable, cpaGoal *float64, fileName string) (*ExportArtifact, error) {
	runID := newRunID()

	workbook := excelize.NewFile()
	defer workbook.Close()

	artifact := &ExportArtifact{RunID: runID}

	for i, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, NewExportErrorWithID(ErrWorkbookWrite, apiErrors.ErrExportFailure, account.AccountID, err.Error())
		}

		sheet := string(table.Breakdown)
		if i == 0 {
			if err := workbook.SetSheetName(workbook.GetSheetName(0), sheet); err != nil {
				return nil, NewExportErrorWithID(ErrWorkbookWrite, apiErrors.ErrExportFailure, account.AccountID, err.Error())
			}
		} else {
			if _, err := workbook.NewSheet(sheet); err != nil {
				return nil, NewExportErrorWithID(ErrWorkbookWrite, apiErrors.ErrExportFailure, account.AccountID, err.Error())
			}
		}

		if err := writeSheet(workbook, sheet, table, cpaGoal); err != nil {
			return nil, NewExportErrorWithID(ErrWorkbookWrite, apiErrors.ErrExportFailure, account.AccountID, err.Error())
		}

		artifact.Sheets = append(artifact.Sheets, sheet)
		artifact.Rows += len(table.Rows)
	}

	path := filepath.Join(s.exportDir(), fileName)

	logrus.Infof("Exportação %s: gravando planilha da conta %s em %s", runID, account.AccountID, path)

	if err := workbook.SaveAs(path); err != nil {
		logrus.Errorf("Exportação %s: falha ao gravar %s: %v", runID, path, err)
		return nil, NewExportErrorWithID(ErrWorkbookWrite, apiErrors.ErrExportFailure, account.AccountID, err.Error())
	}

	artifact.Path = path
	return artifact, nil
}

// writeSheet preenche uma aba com o cabeçalho e as linhas da tabela.
// Células sem valor reportado ficam vazias, nunca zeradas.
func writeSheet(workbook *excelize.File, sheet string, table *reporting.ProjectedTable, cpaGoal *float64) error {
	headers := make([]interface{}, len(table.Columns))
	cpaColumn := -1
	for i, column := range table.Columns {
		headers[i] = column.Title
		if column.Key == reporting.ColumnCPA {
			cpaColumn = i
		}
	}

	if err := workbook.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	highlight := 0
	if cpaColumn >= 0 && cpaGoal != nil {
		style, err := workbook.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cpaHighlightColor}},
		})
		if err != nil {
			return err
		}
		highlight = style
	}

	for r, row := range table.Rows {
		values := make([]interface{}, len(row.Cells))
		for i, cell := range row.Cells {
			if cell.Number != nil {
				values[i] = *cell.Number
			} else if cell.Text != "" {
				values[i] = cell.Text
			}
		}

		anchor, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheet, anchor, &values); err != nil {
			return err
		}

		// Destaca o CPA abaixo da meta
		if highlight != 0 && cpaColumn >= 0 {
			if cpa := row.Cells[cpaColumn].Number; cpa != nil && *cpa < *cpaGoal {
				name, err := excelize.CoordinatesToCellName(cpaColumn+1, r+2)
				if err != nil {
					return err
				}
				if err := workbook.SetCellStyle(sheet, name, name, highlight); err != nil {
					return err
				}
			}
		}
	}

	lastColumn, err := excelize.ColumnNumberToName(len(table.Columns))
	if err != nil {
		return err
	}
	return workbook.SetColWidth(sheet, "A", lastColumn, defaultColumnWidth)
}

// exportDir resolve o diretório de destino: o configurado, quando existe
// e é um diretório, senão ~/Downloads
func (s *Service) exportDir() string {
	dir := strings.TrimSpace(s.cfg.Export.Directory)
	fallback := fallbackExportDir()

	if dir == "" {
		return fallback
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logrus.Warnf("Diretório de exportação inválido (%s), usando %s", dir, fallback)
		return fallback
	}

	return dir
}

func fallbackExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, "Downloads")
}

var (
	unsafeFileChars  = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	repeatUnderscore = regexp.MustCompile(`_+`)
)

// sanitizeFilePart normaliza um trecho do nome do arquivo para caracteres
// seguros em qualquer sistema de arquivos
func sanitizeFilePart(s string) string {
	s = unsafeFileChars.ReplaceAllString(s, "_")
	s = repeatUnderscore.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

func buildFileName(accountName, breakdown, startDate, endDate string) string {
	parts := []string{"RealizeReport"}

	if account := sanitizeFilePart(accountName); account != "" {
		parts = append(parts, account)
	}
	if breakdown != "" {
		parts = append(parts, breakdown)
	}

	start := sanitizeFilePart(startDate)
	end := sanitizeFilePart(endDate)
	if start != "" && end != "" {
		parts = append(parts, start+"_to_"+end)
	}

	return strings.Join(parts, "-") + ".xlsx"
}

// newRunID gera o identificador da execução usado nos logs e na resposta
func newRunID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return id
}
