package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lupamkt/backoffice-api/internal/usecases/account"
	"github.com/lupamkt/backoffice-api/pkg/apiErrors"
	"github.com/lupamkt/backoffice-api/pkg/log"
	"github.com/pkg/errors"
)

const defaultDatePreset = "last_30d"

var validDatePresets = map[string]struct{}{
	"today":      {},
	"yesterday":  {},
	"last_7d":    {},
	"last_14d":   {},
	"last_30d":   {},
	"last_90d":   {},
	"this_month": {},
	"last_month": {},
	"maximum":    {},
}

func GetAccountCampaigns(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		datePreset := r.URL.Query().Get("date_preset")
		if datePreset == "" {
			datePreset = defaultDatePreset
		}

		if _, ok := validDatePresets[datePreset]; !ok {
			logger.WithFields(log.Fields{
				"account_id":  id,
				"date_preset": datePreset,
			}).Warn("campaigns: invalid date_preset parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "date_preset inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id":  id,
			"date_preset": datePreset,
		}).Info("campaigns: fetching campaigns for account")

		campaigns, err := service.GetAccountCampaigns(id, datePreset)
		if err != nil {
			switch {
			case errors.Is(err, account.ErrAccountNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
			case errors.Is(err, account.ErrAccountWithoutMeta):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta sem vínculo com o Meta", nil)
			default:
				logger.WithFields(log.Fields{
					"account_id": id,
					"error":      err.Error(),
				}).Error("campaigns: failed to fetch campaigns")

				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar campanhas no Meta", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("campaigns: failed to encode response")
		}
	})
}
