package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statusPtr(s AccountStatus) *AccountStatus {
	return &s
}

func enrichedFixture() []*EnrichedAccount {
	accounts := []*Account{
		{
			ID:         "ACC1",
			Nome:       "Clínica Sorriso",
			Empresa:    "Sorriso Odontologia LTDA",
			Telefone:   "11999990001",
			Email:      "contato@sorriso.com.br",
			Status:     AccountStatusAtivo,
			GestorID:   stringPtr("MGR1"),
			ClienteID:  stringPtr("CLI1"),
			UsaMetaAds: true,
			SaldoMeta:  20000,
		},
		{
			ID:           "ACC2",
			Nome:         "Academia Forte",
			Empresa:      "Forte Fitness",
			Telefone:     "11999990002",
			Email:        "forte@academia.com",
			Status:       AccountStatusPausado,
			GestorID:     stringPtr("MGR1"),
			UsaGoogleAds: true,
			SaldoMeta:    15000,
		},
		{
			ID:        "ACC3",
			Nome:      "Loja Antiga",
			Status:    AccountStatusArquivado,
			Canais:    []string{"Meta"},
			SaldoMeta: 0,
		},
	}

	stats := []*LeadsStats{
		{AccountID: "ACC1", TotalLeads: 30},
		{AccountID: "ACC2", TotalLeads: 12},
	}

	return EnrichAccounts(accounts, []*Manager{{ID: "MGR1", Nome: "Ana"}}, []*Cliente{{ID: "CLI1", Nome: "Sorriso"}}, stats)
}

func TestAccountFilterMatches(t *testing.T) {
	accounts := enrichedFixture()

	tests := []struct {
		name     string
		filter   AccountFilter
		expected []string
	}{
		{
			name:     "Filtro vazio não restringe nada",
			filter:   AccountFilter{},
			expected: []string{"ACC1", "ACC2", "ACC3"},
		},
		{
			name:     "Filtro por status",
			filter:   AccountFilter{Status: statusPtr(AccountStatusAtivo)},
			expected: []string{"ACC1"},
		},
		{
			name:     "Filtro por gestor",
			filter:   AccountFilter{GestorID: stringPtr("MGR1")},
			expected: []string{"ACC1", "ACC2"},
		},
		{
			name:     "Busca case-insensitive por nome",
			filter:   AccountFilter{Search: "sorriso"},
			expected: []string{"ACC1"},
		},
		{
			name:     "Busca por telefone",
			filter:   AccountFilter{Search: "11999990002"},
			expected: []string{"ACC2"},
		},
		{
			name:     "Conjunção - status E busca devem casar juntos",
			filter:   AccountFilter{Status: statusPtr(AccountStatusPausado), Search: "sorriso"},
			expected: []string{},
		},
		{
			name:     "Gestor nulo na conta não casa filtro de gestor",
			filter:   AccountFilter{GestorID: stringPtr("MGR1"), Status: statusPtr(AccountStatusArquivado)},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterAccounts(accounts, tt.filter)

			ids := make([]string, 0, len(filtered))
			for _, acc := range filtered {
				ids = append(ids, acc.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(enrichedFixture())

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Ativas)
	assert.Equal(t, 1, summary.Pausadas)
	assert.Equal(t, 1, summary.Arquivadas)
	// ACC1 por flag, ACC3 por array: o canal conta pelas duas fontes
	assert.Equal(t, 2, summary.ContasMeta)
	assert.Equal(t, 1, summary.ContasGoogle)
	// 20000 + 15000 + 0 centavos, arquivadas incluídas
	assert.Equal(t, 350.0, summary.SaldoTotalMeta)
	assert.Equal(t, 42, summary.TotalLeads)
}

func TestSummarizeConjuntoVazio(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.SaldoTotalMeta)
	assert.Equal(t, 0, summary.TotalLeads)
}

func TestTotalBalanceIncluiArquivadas(t *testing.T) {
	accounts := EnrichAccounts([]*Account{
		{ID: "A", Status: AccountStatusAtivo, SaldoMeta: 100000},
		{ID: "B", Status: AccountStatusArquivado, SaldoMeta: 50000},
	}, nil, nil, nil)

	assert.Equal(t, 1500.0, TotalBalance(accounts))
}
