package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/realize-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/realize-report-api/internal/config"
	"github.com/vfg2006/realize-report-api/internal/domain"
	"github.com/vfg2006/realize-report-api/internal/usecases/exporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(ctrl *gomock.Controller, lookbackDays int) (*ReportExportSyncService, *repomocks.MockRecentAccountRepository, *mocks.MockRuleService, *mocks.MockExportService) {
	recents := repomocks.NewMockRecentAccountRepository(ctrl)
	ruleService := mocks.NewMockRuleService(ctrl)
	exportService := mocks.NewMockExportService(ctrl)

	cfg := &config.Config{
		ExportSync: config.ExportSync{
			CronSchedule: "0 7 * * *",
			LookbackDays: lookbackDays,
			Enabled:      true,
		},
	}

	return NewReportExportSyncService(recents, ruleService, exportService, cfg), recents, ruleService, exportService
}

func TestSyncPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl, 7)

	start, end := service.syncPeriod()

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), end)
	assert.Equal(t, yesterday.AddDate(0, 0, -6).Format(time.DateOnly), start)
}

func TestProcessAccounts_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, ruleService, exportService := newTestSyncService(ctrl, 7)

	accounts := []*domain.Account{
		{AccountID: "conta-a", Name: "Conta A"},
		{AccountID: "conta-b", Name: "Conta B"},
		{AccountID: "conta-c", Name: "Conta C"},
	}

	ruleService.EXPECT().LoadPrimaryRule(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)

	exportService.EXPECT().
		ExportBreakdowns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *exporting.MultiExportRequest) (*exporting.ExportArtifact, error) {
			if req.Account.AccountID == "conta-b" {
				return nil, errors.New("falha upstream")
			}
			return &exporting.ExportArtifact{RunID: "run", Path: "/tmp/x.xlsx"}, nil
		}).
		Times(3)

	exported := service.processAccounts(accounts, "2024-01-01", "2024-01-07")

	assert.Equal(t, 2, exported)
}

func TestExportAccount_UsesPrimaryRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, ruleService, exportService := newTestSyncService(ctrl, 7)

	goal := 50.0
	rule := &domain.ConversionRule{ID: "7", DisplayName: "Compra", CPAGoal: &goal}
	ruleService.EXPECT().LoadPrimaryRule(gomock.Any(), "conta").Return(rule, nil)

	exportService.EXPECT().
		ExportBreakdowns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *exporting.MultiExportRequest) (*exporting.ExportArtifact, error) {
			assert.Equal(t, rule, req.Rule)
			assert.Equal(t, []domain.Breakdown{domain.BreakdownCampaign, domain.BreakdownDay}, req.Breakdowns)
			assert.True(t, req.IncludeClicks)
			assert.True(t, req.IncludeCTR)
			return &exporting.ExportArtifact{RunID: "run", Path: "/tmp/x.xlsx"}, nil
		})

	err := service.exportAccount(context.Background(), &domain.Account{AccountID: "conta"}, "2024-01-01", "2024-01-07")

	assert.NoError(t, err)
}

func TestExportAccount_RuleLoadFailureExportsWithoutRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, ruleService, exportService := newTestSyncService(ctrl, 7)

	ruleService.EXPECT().
		LoadPrimaryRule(gomock.Any(), "conta").
		Return(nil, errors.New("banco indisponível"))

	exportService.EXPECT().
		ExportBreakdowns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *exporting.MultiExportRequest) (*exporting.ExportArtifact, error) {
			assert.Nil(t, req.Rule)
			return &exporting.ExportArtifact{RunID: "run", Path: "/tmp/x.xlsx"}, nil
		})

	err := service.exportAccount(context.Background(), &domain.Account{AccountID: "conta"}, "2024-01-01", "2024-01-07")

	assert.NoError(t, err)
}

func TestSyncAllRecentAccounts_NoAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, recents, _, _ := newTestSyncService(ctrl, 7)

	recents.EXPECT().List().Return([]*domain.Account{}, nil)

	service.syncAllRecentAccounts()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestSyncService(ctrl, 14)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, 14, status["sync_lookback_days"])
}

func TestGetStatus_ConcurrentWithSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, recents, _, _ := newTestSyncService(ctrl, 7)

	recents.EXPECT().List().Return([]*domain.Account{}, nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.syncAllRecentAccounts()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := service.GetStatus()
			assert.Contains(t, status, "last_sync_started_at")
		}()
	}
	wg.Wait()

	assert.False(t, service.GetStatus()["last_sync_started_at"].(time.Time).IsZero())
}
