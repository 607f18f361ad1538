package domain

// Literais de fallback para relações não resolvidas. Uma chave
// estrangeira sem correspondência nunca gera erro: degrada para o
// rótulo de exibição.
const (
	GestorNaoEncontrado = "Gestor não encontrado"
	ClienteNaoVinculado = "Cliente não vinculado"
)

// EnrichedAccount é a projeção de leitura de uma conta com as relações
// já resolvidas. É produzida a cada requisição e nunca persistida.
type EnrichedAccount struct {
	Account

	GestorNome   string      `json:"gestor_nome"`
	ClienteNome  string      `json:"cliente_nome"`
	Stats        *LeadsStats `json:"stats,omitempty"`
	TotalBudget  int64       `json:"total_budget"`
	Channels     ChannelSet  `json:"-"`
	CanaisAtivos []Channel   `json:"canais_ativos"`
}

// EnrichAccounts combina contas com as coleções auxiliares, resolvendo
// gestor e cliente por ID e anexando as estatísticas de leads quando
// existirem. A saída preserva ordem e tamanho da entrada (mapeamento
// um-para-um, sem filtragem nesta etapa).
func EnrichAccounts(
	accounts []*Account,
	managers []*Manager,
	clientes []*Cliente,
	stats []*LeadsStats,
) []*EnrichedAccount {
	managersByID := make(map[string]*Manager, len(managers))
	for _, m := range managers {
		managersByID[m.ID] = m
	}

	clientesByID := make(map[string]*Cliente, len(clientes))
	for _, c := range clientes {
		clientesByID[c.ID] = c
	}

	statsByAccount := make(map[string]*LeadsStats, len(stats))
	for _, s := range stats {
		statsByAccount[s.AccountID] = s
	}

	enriched := make([]*EnrichedAccount, 0, len(accounts))

	for _, acc := range accounts {
		gestorNome := GestorNaoEncontrado
		if acc.GestorID != nil {
			if m, ok := managersByID[*acc.GestorID]; ok {
				gestorNome = m.Nome
			}
		}

		clienteNome := ClienteNaoVinculado
		if acc.ClienteID != nil {
			if c, ok := clientesByID[*acc.ClienteID]; ok {
				clienteNome = c.Nome
			}
		}

		channels := NormalizeChannels(acc)

		enriched = append(enriched, &EnrichedAccount{
			Account:      *acc,
			GestorNome:   gestorNome,
			ClienteNome:  clienteNome,
			Stats:        statsByAccount[acc.ID],
			TotalBudget:  acc.BudgetMensalMeta + acc.BudgetMensalGoogle,
			Channels:     channels,
			CanaisAtivos: channels.Sorted(),
		})
	}

	return enriched
}
