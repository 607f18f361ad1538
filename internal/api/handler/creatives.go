package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/lupamkt/backoffice-api/internal/usecases/account"
	"github.com/lupamkt/backoffice-api/pkg/apiErrors"
	"github.com/lupamkt/backoffice-api/pkg/log"
	"github.com/lupamkt/backoffice-api/pkg/utils"
	"github.com/pkg/errors"
)

// parseRollupWindow resolve a janela em dias a partir de days ou de uma
// data since (YYYY-MM-DD). days vence quando ambos forem enviados.
func parseRollupWindow(r *http.Request) (int, error) {
	if rawDays := r.URL.Query().Get("days"); rawDays != "" {
		parsed, err := strconv.Atoi(rawDays)
		if err != nil || parsed <= 0 {
			return 0, errors.New("days deve ser um inteiro positivo")
		}
		return parsed, nil
	}

	if rawSince := r.URL.Query().Get("since"); rawSince != "" {
		since, err := utils.ParseDate(rawSince)
		if err != nil {
			return 0, errors.New("since deve estar no formato YYYY-MM-DD")
		}

		days := int(time.Since(*since).Hours() / 24)
		if days <= 0 {
			return 0, errors.New("since deve ser uma data passada")
		}
		return days, nil
	}

	return 0, nil
}

func GetCreativeRollup(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseRollupWindow(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"days":       r.URL.Query().Get("days"),
				"since":      r.URL.Query().Get("since"),
			}).Warn("creatives: invalid window parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		rollup, err := service.GetCreativeRollup(id, days)
		if err != nil {
			if errors.Is(err, account.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("creatives: failed to compute rollup")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consolidar criativos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rollup); err != nil {
			logger.WithError(err).Error("creatives: failed to encode response")
		}
	})
}
