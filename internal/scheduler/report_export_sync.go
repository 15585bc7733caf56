package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realize-report-api/infrastructure/repository"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/exporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/rules"
)

// exportSyncBreakdowns são os breakdowns exportados em cada ciclo
var exportSyncBreakdowns = []domain.Breakdown{
	domain.BreakdownCampaign,
	domain.BreakdownDay,
}

// ReportExportSyncConfig representa a configuração do agendador de exportação de relatórios
type ReportExportSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// ReportExportSyncService gerencia o agendamento e execução da exportação
// periódica de relatórios das contas recentes
type ReportExportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportExportSyncConfig
	appConfig           *config.Config
	recentsRepo         repository.RecentAccountRepository
	ruleService         rules.RuleService
	exportService       exporting.ExportService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportExportSyncService cria uma nova instância do serviço de exportação periódica
func NewReportExportSyncService(
	recentsRepo repository.RecentAccountRepository,
	ruleService rules.RuleService,
	exportService exporting.ExportService,
	appConfig *config.Config,
) *ReportExportSyncService {
	// Criar a configuração com base na config global
	syncConfig := ReportExportSyncConfig{
		CronSchedule:        appConfig.ExportSync.CronSchedule,
		LookbackDays:        appConfig.ExportSync.LookbackDays,
		RequestDelaySeconds: appConfig.ExportSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.ExportSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de exportação de relatórios carregada")

	return &ReportExportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		recentsRepo:   recentsRepo,
		ruleService:   ruleService,
		exportService: exportService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportExportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Exportação periódica de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação de relatórios")

	// Agendar a exportação
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllRecentAccounts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllRecentAccounts exporta os relatórios do período configurado para
// todas as contas recentes
func (s *ReportExportSyncService) syncAllRecentAccounts() {
	startTime := time.Now()

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando exportação de relatórios para as contas recentes")

	accounts, err := s.recentsRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contas recentes para exportação")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta recente encontrada para exportação")
		return
	}

	startDate, endDate := s.syncPeriod()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": startDate,
		"end_date":   endDate,
	}).Info("Período para exportação de relatórios")

	exported := s.processAccounts(accounts, startDate, endDate)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(accounts),
		"exported": exported,
	}).Info("Exportação de relatórios concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// syncPeriod calcula o período exportado: do início da janela de lookback
// até ontem
func (s *ReportExportSyncService) syncPeriod() (string, string) {
	yesterday := time.Now().AddDate(0, 0, -1)
	start := yesterday.AddDate(0, 0, -(s.config.LookbackDays - 1))
	return start.Format(time.DateOnly), yesterday.Format(time.DateOnly)
}

// processAccounts exporta cada conta em sequência, com um intervalo entre
// requisições para não saturar a API
func (s *ReportExportSyncService) processAccounts(accounts []*domain.Account, startDate, endDate string) int {
	ctx := context.Background()
	delay := time.Duration(s.config.RequestDelaySeconds) * time.Second

	exported := 0
	for i, account := range accounts {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		if err := s.exportAccount(ctx, account, startDate, endDate); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":   account.AccountID,
				"account_name": account.Name,
			}).Error("Erro ao exportar relatórios da conta")
			continue
		}

		exported++
	}

	return exported
}

// exportAccount gera a planilha de uma conta com a regra primária
// persistida, quando houver
func (s *ReportExportSyncService) exportAccount(ctx context.Context, account *domain.Account, startDate, endDate string) error {
	rule, err := s.ruleService.LoadPrimaryRule(ctx, account.AccountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", account.AccountID).
			Warn("Erro ao carregar regra primária da conta, exportando sem regra")
		rule = nil
	}

	artifact, err := s.exportService.ExportBreakdowns(ctx, &exporting.MultiExportRequest{
		Account:       account,
		Breakdowns:    exportSyncBreakdowns,
		StartDate:     startDate,
		EndDate:       endDate,
		Rule:          rule,
		IncludeClicks: true,
		IncludeCTR:    true,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.AccountID,
		"run_id":     artifact.RunID,
		"path":       artifact.Path,
		"rows":       artifact.Rows,
	}).Info("Relatórios da conta exportados")

	return nil
}

// TriggerManualSync dispara manualmente a exportação de relatórios
func (s *ReportExportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando exportação manual de relatórios")
	go s.syncAllRecentAccounts()
}

// GetStatus retorna o status atual do agendador
func (s *ReportExportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
