package handler

import (
	"net/http"

	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/internal/usecases/dashboarding"
	"github.com/lupamkt/backoffice-api/pkg/apiErrors"
	"github.com/lupamkt/backoffice-api/pkg/log"
)

// parseAccountFilter monta o filtro do painel a partir da query string.
// Todos os parâmetros são opcionais e combinados em conjunção.
func parseAccountFilter(r *http.Request) (domain.AccountFilter, error) {
	filter := domain.AccountFilter{
		Search: r.URL.Query().Get("search"),
	}

	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		status, err := domain.ParseAccountStatus(rawStatus)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if gestorID := r.URL.Query().Get("gestor_id"); gestorID != "" {
		filter.GestorID = &gestorID
	}

	if clienteID := r.URL.Query().Get("cliente_id"); clienteID != "" {
		filter.ClienteID = &clienteID
	}

	return filter, nil
}

func DashboardAccounts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseAccountFilter(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"status": r.URL.Query().Get("status"),
				"error":  err.Error(),
			}).Warn("dashboard: invalid filter parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		accounts, err := service.GetAccounts(filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to list enriched accounts")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar contas do painel", nil)
			return
		}

		logger.WithField("accounts", len(accounts)).Info("dashboard: enriched accounts listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}

func DashboardSummary(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseAccountFilter(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"status": r.URL.Query().Get("status"),
				"error":  err.Error(),
			}).Warn("dashboard: invalid filter parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summary, err := service.GetSummary(filter)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compute summary")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular resumo do painel", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
		}
	})
}
