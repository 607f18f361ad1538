package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/lupamkt/backoffice-api/internal/usecases/account"
	"github.com/lupamkt/backoffice-api/pkg/apiErrors"
	"github.com/lupamkt/backoffice-api/pkg/log"
	"github.com/pkg/errors"
)

func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := service.ListAccounts()
		if err != nil {
			logger.WithError(err).Error("accounts: failed to list accounts")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas", nil)
			return
		}

		logger.WithField("accounts", len(accounts)).Info("accounts: listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
		}
	})
}

func GetAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		acc, err := service.GetAccount(id)
		if err != nil {
			if errors.Is(err, account.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conta não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("accounts: failed to get account")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(acc); err != nil {
			logger.WithError(err).Error("accounts: failed to encode response")
		}
	})
}
