package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// scopeFor interpreta ?scope=. Sem escopo, colaboradores comuns consultam o próprio desempenho.
func scopeFor(claims *domain.Claims, raw string) (performance.Scope, error) {
	if raw == "" && !domain.CanManageTargets(claims.UserRoleID) {
		return performance.Scope{Kind: performance.ScopeActor, ID: claims.UserActorID}, nil
	}
	return performance.ParseScope(raw)
}

// summaryQuery monta a consulta de resumo a partir do caminho e da query string
func summaryQuery(w http.ResponseWriter, r *http.Request, claims *domain.Claims) (performance.SummaryQuery, bool) {
	category, ok := categoryParam(w, claims, httprouter.ParamsFromContext(r.Context()).ByName("category"))
	if !ok {
		return performance.SummaryQuery{}, false
	}

	filter, err := periods.ParsePeriodFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err, "Erro ao interpretar filtro de período")
		return performance.SummaryQuery{}, false
	}

	scope, err := scopeFor(claims, r.URL.Query().Get("scope"))
	if err != nil {
		writeServiceError(w, r, err, "Erro ao interpretar escopo")
		return performance.SummaryQuery{}, false
	}

	if err := performance.Authorize(claims, category, scope); err != nil {
		writeServiceError(w, r, err, "Erro ao autorizar consulta")
		return performance.SummaryQuery{}, false
	}

	return performance.SummaryQuery{Category: category, Filter: filter, Scope: scope}, true
}

// GetPerformance devolve o resumo realizado vs. meta de uma categoria
func GetPerformance(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query, ok := summaryQuery(w, r, claims)
		if !ok {
			return
		}

		summary, err := service.GetSummary(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular desempenho")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, summary); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de desempenho")
		}
	}
}

// GetPerformanceOverview devolve um resumo por categoria visível ao usuário
func GetPerformanceOverview(service performance.PerformanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		categories := claims.VisibleCategories()
		if len(categories) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Nenhuma categoria disponível para o usuário", nil)
			return
		}

		filter, err := periods.ParsePeriodFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao interpretar filtro de período")
			return
		}

		scope, err := scopeFor(claims, r.URL.Query().Get("scope"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao interpretar escopo")
			return
		}

		for _, category := range categories {
			if err := performance.Authorize(claims, category, scope); err != nil {
				writeServiceError(w, r, err, "Erro ao autorizar consulta")
				return
			}
		}

		overview, err := service.GetOverview(r.Context(), filter, scope, categories)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular desempenho")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, overview); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de desempenho")
		}
	}
}
