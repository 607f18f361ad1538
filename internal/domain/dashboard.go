package domain

import (
	"strings"

	"github.com/lupamkt/backoffice-api/pkg/utils"
)

// AccountFilter é a conjunção de predicados aplicada sobre contas
// enriquecidas. Um filtro nulo/vazio não restringe nada; a conta passa
// apenas se TODOS os filtros ativos casarem.
type AccountFilter struct {
	Status    *AccountStatus
	GestorID  *string
	ClienteID *string
	Search    string
}

func (f AccountFilter) IsEmpty() bool {
	return f.Status == nil && f.GestorID == nil && f.ClienteID == nil && f.Search == ""
}

// Matches avalia a conjunção de predicados para uma conta. A busca
// textual é case-insensitive sobre nome, empresa, telefone e e-mail.
func (f AccountFilter) Matches(acc *EnrichedAccount) bool {
	if f.Status != nil && acc.Status != *f.Status {
		return false
	}

	if f.GestorID != nil && (acc.GestorID == nil || *acc.GestorID != *f.GestorID) {
		return false
	}

	if f.ClienteID != nil && (acc.ClienteID == nil || *acc.ClienteID != *f.ClienteID) {
		return false
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(acc.Nome), term) &&
			!strings.Contains(strings.ToLower(acc.Empresa), term) &&
			!strings.Contains(strings.ToLower(acc.Telefone), term) &&
			!strings.Contains(strings.ToLower(acc.Email), term) {
			return false
		}
	}

	return true
}

// FilterAccounts devolve o subconjunto que satisfaz todos os predicados
func FilterAccounts(accounts []*EnrichedAccount, filter AccountFilter) []*EnrichedAccount {
	filtered := make([]*EnrichedAccount, 0, len(accounts))
	for _, acc := range accounts {
		if filter.Matches(acc) {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}

// DashboardSummary são os escalares exibidos nos cards do painel.
// SaldoTotalMeta já está em reais (convertido de centavos).
type DashboardSummary struct {
	Total          int     `json:"total"`
	Ativas         int     `json:"ativas"`
	Pausadas       int     `json:"pausadas"`
	Arquivadas     int     `json:"arquivadas"`
	ContasMeta     int     `json:"contas_meta"`
	ContasGoogle   int     `json:"contas_google"`
	SaldoTotalMeta float64 `json:"saldo_total_meta"`
	TotalLeads     int     `json:"total_leads"`
}

// CountByStatus conta as contas do conjunto com o status informado
func CountByStatus(accounts []*EnrichedAccount, status AccountStatus) int {
	count := 0
	for _, acc := range accounts {
		if acc.Status == status {
			count++
		}
	}
	return count
}

// CountByChannel conta as contas do conjunto vinculadas ao canal,
// lendo apenas o conjunto canônico produzido no join.
func CountByChannel(accounts []*EnrichedAccount, channel Channel) int {
	count := 0
	for _, acc := range accounts {
		if acc.Channels.Has(channel) {
			count++
		}
	}
	return count
}

// TotalBalance soma o saldo Meta (centavos) de todo o conjunto recebido
// e devolve o valor em reais. Contas arquivadas entram na soma; quem
// quiser excluí-las deve filtrar o conjunto antes.
func TotalBalance(accounts []*EnrichedAccount) float64 {
	var cents int64
	for _, acc := range accounts {
		cents += acc.SaldoMeta
	}
	return utils.CentsToBRL(cents)
}

// Summarize recomputa integralmente os escalares do painel para o
// conjunto recebido. Sem efeitos colaterais e sem cache: entradas novas
// significam uma nova chamada.
func Summarize(accounts []*EnrichedAccount) *DashboardSummary {
	summary := &DashboardSummary{
		Total:          len(accounts),
		Ativas:         CountByStatus(accounts, AccountStatusAtivo),
		Pausadas:       CountByStatus(accounts, AccountStatusPausado),
		Arquivadas:     CountByStatus(accounts, AccountStatusArquivado),
		ContasMeta:     CountByChannel(accounts, ChannelMeta),
		ContasGoogle:   CountByChannel(accounts, ChannelGoogle),
		SaldoTotalMeta: TotalBalance(accounts),
	}

	for _, acc := range accounts {
		if acc.Stats != nil {
			summary.TotalLeads += acc.Stats.TotalLeads
		}
	}

	return summary
}
