package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores Prometheus da aplicação
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	DashboardRecomputes prometheus.Counter
	CreativeSyncRuns    *prometheus.CounterVec
	CreativeSyncedRows  prometheus.Counter
	ReportsDispatched   prometheus.Counter
	MetaAPIErrors       prometheus.Counter
}

// DefaultMetrics é a instância global usada pelo middleware e serviços
var DefaultMetrics *Metrics

func init() {
	DefaultMetrics = New()
}

func New() *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total de requisições HTTP por método, rota e status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "Duração das requisições HTTP",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		DashboardRecomputes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_dashboard_recomputes_total",
				Help: "Total de recomputações do resumo do painel",
			},
		),
		CreativeSyncRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_creative_sync_runs_total",
				Help: "Execuções da sincronização de criativos por resultado",
			},
			[]string{"result"},
		),
		CreativeSyncedRows: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_creative_synced_rows_total",
				Help: "Total de registros de criativos gravados pela sincronização",
			},
		),
		ReportsDispatched: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_reports_dispatched_total",
				Help: "Total de relatórios periódicos despachados",
			},
		),
		MetaAPIErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "backoffice_meta_api_errors_total",
				Help: "Total de erros nas chamadas à Graph API",
			},
		),
	}
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
