package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/directory"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// ListActors lista os colaboradores ativos, opcionalmente filtrados por ?category=
func ListActors(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category *domain.Category
		if raw := r.URL.Query().Get("category"); raw != "" {
			parsed, err := domain.ParseCategory(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), fieldDetails{Field: "category"})
				return
			}
			category = &parsed
		}

		actors, err := service.ListActors(r.Context(), category)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar colaboradores")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, actors); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de colaboradores")
		}
	}
}

func ListTeams(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := service.ListTeams(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar times")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, teams); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de times")
		}
	}
}

// ListEligibleTeams lista os times com ao menos um membro apto para a categoria informada
func ListEligibleTeams(service directory.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := domain.ParseCategory(r.URL.Query().Get("category"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), fieldDetails{Field: "category"})
			return
		}

		teams, err := service.EligibleTeams(r.Context(), category)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar times elegíveis")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, teams); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de times elegíveis")
		}
	}
}
