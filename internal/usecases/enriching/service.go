package enriching

import (
	"sync"

	"github.com/lupamkt/backoffice-api/infrastructure/repository"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// Enricher produz a visão enriquecida das contas (join das coleções)
type Enricher interface {
	// ListEnrichedAccounts busca as coleções, resolve as relações e
	// aplica a conjunção de filtros sobre o resultado
	ListEnrichedAccounts(filter domain.AccountFilter) ([]*domain.EnrichedAccount, error)
}

type Service struct {
	accountRepo    repository.AccountRepository
	managerRepo    repository.ManagerRepository
	clienteRepo    repository.ClienteRepository
	leadsStatsRepo repository.LeadsStatsRepository
}

func NewService(
	accountRepo repository.AccountRepository,
	managerRepo repository.ManagerRepository,
	clienteRepo repository.ClienteRepository,
	leadsStatsRepo repository.LeadsStatsRepository,
) Enricher {
	return &Service{
		accountRepo:    accountRepo,
		managerRepo:    managerRepo,
		clienteRepo:    clienteRepo,
		leadsStatsRepo: leadsStatsRepo,
	}
}

func (s *Service) ListEnrichedAccounts(filter domain.AccountFilter) ([]*domain.EnrichedAccount, error) {
	var (
		accounts []*domain.Account
		managers []*domain.Manager
		clientes []*domain.Cliente
		stats    []*domain.LeadsStats

		accountsErr error
		managersErr error
		clientesErr error
		statsErr    error
	)

	// As quatro coleções são independentes: buscar em paralelo
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		accounts, accountsErr = s.accountRepo.ListAccounts(nil)
	}()

	go func() {
		defer wg.Done()
		managers, managersErr = s.managerRepo.ListManagers()
	}()

	go func() {
		defer wg.Done()
		clientes, clientesErr = s.clienteRepo.ListClientes()
	}()

	go func() {
		defer wg.Done()
		stats, statsErr = s.leadsStatsRepo.ListLeadsStats()
	}()

	wg.Wait()

	// Contas são obrigatórias; as coleções auxiliares degradam para
	// fallback no join em vez de derrubar a listagem inteira
	if accountsErr != nil {
		return nil, accountsErr
	}

	if managersErr != nil {
		logrus.WithError(managersErr).Warn("Erro ao buscar gestores; contas exibirão fallback")
		managers = nil
	}

	if clientesErr != nil {
		logrus.WithError(clientesErr).Warn("Erro ao buscar clientes; contas exibirão fallback")
		clientes = nil
	}

	if statsErr != nil {
		logrus.WithError(statsErr).Warn("Erro ao buscar leads_stats; contas ficarão sem estatísticas")
		stats = nil
	}

	enriched := domain.EnrichAccounts(accounts, managers, clientes, stats)

	if filter.IsEmpty() {
		return enriched, nil
	}

	return domain.FilterAccounts(enriched, filter), nil
}
