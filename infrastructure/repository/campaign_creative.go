package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
	"github.com/lupamkt/backoffice-api/pkg/utils"
)

const campaignCreativesTable = "campaign_creatives"

type CampaignCreativeRepository interface {
	ListByAccountSince(accountID string, since time.Time) ([]*domain.CampaignCreative, error)
	SaveOrUpdate(creatives []*domain.CampaignCreative) error
}

type campaignCreativeRepository struct {
	conn postgres.Queryer
}

func NewCampaignCreativeRepository(conn postgres.Queryer) CampaignCreativeRepository {
	return &campaignCreativeRepository{
		conn: conn,
	}
}

func (r *campaignCreativeRepository) ListByAccountSince(accountID string, since time.Time) ([]*domain.CampaignCreative, error) {
	creativesSQL, creativesArgs, err := squirrel.
		Select("id, account_id, campaign_id, campaign_nome, spend, impressions, clicks, leads, first_seen, created_at, updated_at").
		From(campaignCreativesTable).
		Where(squirrel.Eq{"account_id": accountID}).
		Where(squirrel.GtOrEq{"first_seen": since}).
		OrderBy("first_seen DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(creativesSQL, creativesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	creatives := make([]*domain.CampaignCreative, 0)

	for rows.Next() {
		creative := &domain.CampaignCreative{}

		if err := rows.Scan(
			&creative.ID,
			&creative.AccountID,
			&creative.CampaignID,
			&creative.CampaignNome,
			&creative.Spend,
			&creative.Impressions,
			&creative.Clicks,
			&creative.Leads,
			&creative.FirstSeen,
			&creative.CreatedAt,
			&creative.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o criativo: %w", err)
		}

		creatives = append(creatives, creative)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return creatives, nil
}

func (r *campaignCreativeRepository) SaveOrUpdate(creatives []*domain.CampaignCreative) error {
	if len(creatives) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(campaignCreativesTable).
		Columns("id", "account_id", "campaign_id", "campaign_nome", "spend", "impressions", "clicks", "leads", "first_seen").
		PlaceholderFormat(squirrel.Dollar)

	for _, creative := range creatives {
		id := creative.ID
		if id == "" {
			generated, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar ID do criativo: %w", err)
			}
			id = generated
		}

		query = query.Values(
			id,
			creative.AccountID,
			creative.CampaignID,
			creative.CampaignNome,
			creative.Spend,
			creative.Impressions,
			creative.Clicks,
			creative.Leads,
			creative.FirstSeen,
		)
	}

	// A janela é reprocessada a cada sync: contadores são substituídos,
	// first_seen preserva a primeira aparição
	query = query.Suffix(`
			ON CONFLICT (account_id, campaign_id) DO UPDATE SET
				campaign_nome = EXCLUDED.campaign_nome,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				leads = EXCLUDED.leads,
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
