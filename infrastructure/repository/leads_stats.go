package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
)

const leadsStatsTable = "leads_stats"

type LeadsStatsRepository interface {
	ListLeadsStats() ([]*domain.LeadsStats, error)
}

type leadsStatsRepository struct {
	conn postgres.Queryer
}

func NewLeadsStatsRepository(conn postgres.Queryer) LeadsStatsRepository {
	return &leadsStatsRepository{
		conn: conn,
	}
}

func (l *leadsStatsRepository) ListLeadsStats() ([]*domain.LeadsStats, error) {
	statsSQL, statsArgs, err := squirrel.
		Select("account_id, total_leads, leads_convertidos, valor_conversao").
		From(leadsStatsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := l.conn.Query(statsSQL, statsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.LeadsStats, 0)

	for rows.Next() {
		entry := &domain.LeadsStats{}

		if err := rows.Scan(
			&entry.AccountID,
			&entry.TotalLeads,
			&entry.LeadsConvertidos,
			&entry.ValorConversao,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar leads_stats: %w", err)
		}

		stats = append(stats, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return stats, nil
}
