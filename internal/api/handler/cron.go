package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePeriodDiscovery = "period-discovery"
	CronJobTypeAll             = "all"
)

// SyncJob é um agendador que aceita execução manual e expõe seu status
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PeriodDiscoverySyncService SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}
		if userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePeriodDiscovery, CronJobTypeAll:
			if services.PeriodDiscoverySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de descoberta de períodos não disponível", nil)
				return
			}
			services.PeriodDiscoverySyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: period-discovery, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := utils.WriteJSON(w, http.StatusAccepted, response); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta da cron job")
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}
		if userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{}
		if services.PeriodDiscoverySyncService != nil {
			status[CronJobTypePeriodDiscovery] = services.PeriodDiscoverySyncService.GetStatus()
		}

		if err := utils.WriteJSON(w, http.StatusOK, status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status das cron jobs")
		}
	}
}
