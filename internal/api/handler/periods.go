package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// GetAvailableYears devolve os anos oferecidos no filtro de período
func GetAvailableYears(service periods.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available := service.AvailablePeriods(r.Context())

		if err := utils.WriteJSON(w, http.StatusOK, available); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de períodos")
		}
	}
}

// NormalizePeriod converte a escolha de período em intervalo canônico e texto de status.
// Ex: ?filter=year_range&start_year=2023&end_year=2025
func NormalizePeriod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := periods.ParsePeriodFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao interpretar filtro de período")
			return
		}

		normalized, err := periods.Normalize(filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao normalizar período")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, normalized); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de período")
		}
	}
}
