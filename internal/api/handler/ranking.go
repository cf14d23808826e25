package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// GetActorRanking retorna o ranking dos colaboradores pelo realizado na categoria
func GetActorRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query, ok := summaryQuery(w, r, claims)
		if !ok {
			return
		}

		response, err := service.GetActorRanking(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar ranking dos colaboradores")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, response); err != nil {
			logrus.Error("Erro ao enviar resposta do ranking:", err)
		}
	}
}
