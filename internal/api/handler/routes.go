package handler

import (
	"net/http"

	"github.com/lupamkt/backoffice-api/internal/api/handler/router"
	"github.com/lupamkt/backoffice-api/internal/usecases/account"
	"github.com/lupamkt/backoffice-api/internal/usecases/dashboarding"
	"github.com/lupamkt/backoffice-api/pkg/metrics"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/accounts",
			Method:  http.MethodGet,
			Handler: DashboardAccounts(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: DashboardSummary(service),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodGet,
			Handler: GetAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/campaigns",
			Method:  http.MethodGet,
			Handler: GetAccountCampaigns(service),
		},
		{
			Path:    "/v1/accounts/:id/creatives/rollup",
			Method:  http.MethodGet,
			Handler: GetCreativeRollup(service),
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
