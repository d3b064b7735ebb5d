package handler

import (
	"net/http"

	"github.com/vfg2006/creator-pricing-api/internal/api/handler/router"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/analytics"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/community"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/negotiating"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/pricing"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/profiling"
	"github.com/vfg2006/creator-pricing-api/internal/usecases/reporting"
	"github.com/vfg2006/creator-pricing-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Profile retorna as rotas do perfil do criador logado
func Profile(service profiling.Profiler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/profile",
			Method:      http.MethodGet,
			Handler:     GetMyProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/profile",
			Method:      http.MethodPut,
			Handler:     UpdateMyProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Catalog retorna as rotas das tabelas de códigos canônicos
func Catalog() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/catalog",
			Method:      http.MethodGet,
			Handler:     GetCatalogOptions(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Calculator(service pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calculator/recommend",
			Method:      http.MethodPost,
			Handler:     Recommend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculator/history",
			Method:      http.MethodGet,
			Handler:     ListCalculations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calculator/quota",
			Method:      http.MethodGet,
			Handler:     GetCalculationQuota(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Deals(service community.CommunityPricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/deals",
			Method:      http.MethodPost,
			Handler:     SubmitDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals",
			Method:      http.MethodGet,
			Handler:     ListDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodGet,
			Handler:     GetDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/community/pricing",
			Method:      http.MethodGet,
			Handler:     GetCohortPricing(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Negotiations(service negotiating.Negotiator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/negotiations/assess",
			Method:      http.MethodPost,
			Handler:     AssessOffer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/negotiations",
			Method:      http.MethodGet,
			Handler:     ListNegotiations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/negotiations/:id",
			Method:      http.MethodGet,
			Handler:     GetNegotiation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/negotiations/:id/close",
			Method:      http.MethodPost,
			Handler:     CloseNegotiation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/niche",
			Method:      http.MethodGet,
			Handler:     GetQuarterlyNicheReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/analytics",
			Method:      http.MethodGet,
			Handler:     GetUserAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/insights",
			Method:      http.MethodGet,
			Handler:     GetCreatorInsights(service),
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
