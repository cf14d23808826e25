package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/usecases/directory"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/middleware"
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

// Metrics expõe o registry do Prometheus no caminho configurado
func Metrics(path string, handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Me() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/categories",
			Method:      http.MethodGet,
			Handler:     GetMyCategories(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Directory(service directory.DirectoryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/actors",
			Method:      http.MethodGet,
			Handler:     ListActors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/teams",
			Method:      http.MethodGet,
			Handler:     ListTeams(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/teams/eligible",
			Method:      http.MethodGet,
			Handler:     ListEligibleTeams(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     CreateTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targets/batch/:request_id",
			Method:      http.MethodGet,
			Handler:     GetTargetBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/targets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Performance(service performance.PerformanceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance",
			Method:      http.MethodGet,
			Handler:     GetPerformanceOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/:category",
			Method:      http.MethodGet,
			Handler:     GetPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ActorRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/:category",
			Method:      http.MethodGet,
			Handler:     GetActorRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Periods(service periods.DiscoveryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/periods/years",
			Method:      http.MethodGet,
			Handler:     GetAvailableYears(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/periods/normalize",
			Method:      http.MethodGet,
			Handler:     NormalizePeriod(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
