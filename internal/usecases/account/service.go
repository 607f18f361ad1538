package account

import (
	"github.com/lupamkt/backoffice-api/infrastructure/integrator/meta"
	"github.com/lupamkt/backoffice-api/infrastructure/repository"
	"github.com/lupamkt/backoffice-api/internal/config"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type AccountService interface {
	ListAccounts() ([]*domain.Account, error)
	GetAccount(accountID string) (*domain.Account, error)
	GetAccountCampaigns(accountID string, datePreset string) ([]*domain.MetaCampaign, error)
	GetCreativeRollup(accountID string, days int) (*domain.CreativeRollup, error)
}

type service struct {
	accountRepo    repository.AccountRepository
	creativeRepo   repository.CampaignCreativeRepository
	metaIntegrator meta.Integrator
	cfg            *config.Config
}

func NewService(
	accountRepo repository.AccountRepository,
	creativeRepo repository.CampaignCreativeRepository,
	metaIntegrator meta.Integrator,
	cfg *config.Config,
) AccountService {
	return &service{
		accountRepo:    accountRepo,
		creativeRepo:   creativeRepo,
		metaIntegrator: metaIntegrator,
		cfg:            cfg,
	}
}

func (s *service) ListAccounts() ([]*domain.Account, error) {
	return s.accountRepo.ListAccounts(nil)
}

func (s *service) GetAccount(accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

// GetAccountCampaigns busca as campanhas ao vivo na Graph API com os
// KPIs já derivados pelo integrador
func (s *service) GetAccountCampaigns(accountID string, datePreset string) ([]*domain.MetaCampaign, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if account.MetaAccountID == nil || *account.MetaAccountID == "" {
		return nil, ErrAccountWithoutMeta
	}

	campaigns, err := s.metaIntegrator.ListCampaigns(*account.MetaAccountID, datePreset)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).Error("Erro ao buscar campanhas no Meta")
		return nil, err
	}

	return campaigns, nil
}

// GetCreativeRollup consolida a janela de criativos sincronizada no
// banco. days limitado à janela configurada na sincronização.
func (s *service) GetCreativeRollup(accountID string, days int) (*domain.CreativeRollup, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if days <= 0 || days > s.cfg.CreativeSync.WindowDays {
		days = s.cfg.CreativeSync.WindowDays
	}

	since := utils.DaysAgo(days)

	creatives, err := s.creativeRepo.ListByAccountSince(account.ID, since)
	if err != nil {
		return nil, err
	}

	return domain.RollupCreatives(account.ID, creatives, since), nil
}
