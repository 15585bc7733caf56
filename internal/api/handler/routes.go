package handler

import (
	"net/http"

	"github.com/vfg2006/realize-report-api/internal/api/handler/router"
	"github.com/vfg2006/realize-report-api/internal/usecases/account"
	"github.com/vfg2006/realize-report-api/internal/usecases/exporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/reporting"
	"github.com/vfg2006/realize-report-api/internal/usecases/rules"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/search",
			Method:  http.MethodGet,
			Handler: SearchAccounts(service),
		},
		{
			Path:    "/v1/accounts/recents",
			Method:  http.MethodGet,
			Handler: ListRecentAccounts(service),
		},
		{
			Path:    "/v1/accounts/recents",
			Method:  http.MethodPost,
			Handler: TouchRecentAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/sub-accounts",
			Method:  http.MethodGet,
			Handler: ListSubAccounts(service),
		},
		{
			Path:    "/v1/accounts/:id/campaigns",
			Method:  http.MethodGet,
			Handler: ListActiveCampaigns(service),
		},
	}
}

func ConversionRules(service rules.RuleService, accounts account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/conversion-rules",
			Method:  http.MethodGet,
			Handler: ListConversionRules(service),
		},
		{
			Path:    "/v1/accounts/:id/primary-rule",
			Method:  http.MethodGet,
			Handler: GetPrimaryRule(service),
		},
		{
			Path:    "/v1/accounts/:id/primary-rule",
			Method:  http.MethodPut,
			Handler: SavePrimaryRule(service),
		},
		{
			Path:    "/v1/accounts/:id/primary-rule",
			Method:  http.MethodDelete,
			Handler: ClearPrimaryRule(service),
		},
		{
			Path:    "/v1/conversion-rules/select",
			Method:  http.MethodPost,
			Handler: SelectRule(service, accounts),
		},
	}
}

func Reports(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: GenerateReport(service),
		},
		{
			Path:    "/v1/accounts/:id/reports/sites",
			Method:  http.MethodGet,
			Handler: GetSiteBreakdownPage(service),
		},
		{
			Path:    "/v1/accounts/:id/reports/sub-account-spend",
			Method:  http.MethodGet,
			Handler: GetSubAccountSpend(service),
		},
	}
}

func Exports(service exporting.ExportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodPost,
			Handler: ExportReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
