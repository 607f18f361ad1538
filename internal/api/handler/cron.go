package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lupamkt/backoffice-api/internal/scheduler"
	"github.com/lupamkt/backoffice-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCreatives = "creatives"
	CronJobTypeReports   = "reports"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CreativeSyncService   *scheduler.CreativeSyncService
	ReportDispatchService *scheduler.ReportDispatchService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCreatives:
			if services.CreativeSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de criativos não disponível", nil)
				return
			}
			services.CreativeSyncService.TriggerManualSync()

		case CronJobTypeReports:
			if services.ReportDispatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de despacho de relatórios não disponível", nil)
				return
			}
			services.ReportDispatchService.TriggerManualDispatch()

		case CronJobTypeAll:
			if services.CreativeSyncService != nil {
				services.CreativeSyncService.TriggerManualSync()
			}
			if services.ReportDispatchService != nil {
				services.ReportDispatchService.TriggerManualDispatch()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: creatives, reports, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"creatives": services.CreativeSyncService.GetStatus(),
			"reports":   services.ReportDispatchService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
