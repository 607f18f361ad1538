package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
)

const reportDispatchTable = "report_dispatch_configs"

type ReportDispatchRepository interface {
	ListEnabled() ([]*domain.ReportDispatchConfig, error)
	UpdateLastSent(configID string, sentAt time.Time) error
}

type reportDispatchRepository struct {
	conn postgres.Queryer
}

func NewReportDispatchRepository(conn postgres.Queryer) ReportDispatchRepository {
	return &reportDispatchRepository{
		conn: conn,
	}
}

func (r *reportDispatchRepository) ListEnabled() ([]*domain.ReportDispatchConfig, error) {
	configsSQL, configsArgs, err := squirrel.
		Select("id, cliente_id, email, periodo, ativo, last_sent_at, created_at, updated_at").
		From(reportDispatchTable).
		Where(squirrel.Eq{"ativo": true}).
		OrderBy("email ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(configsSQL, configsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	configs := make([]*domain.ReportDispatchConfig, 0)

	for rows.Next() {
		cfg := &domain.ReportDispatchConfig{}

		if err := rows.Scan(
			&cfg.ID,
			&cfg.ClienteID,
			&cfg.Email,
			&cfg.Periodo,
			&cfg.Ativo,
			&cfg.LastSentAt,
			&cfg.CreatedAt,
			&cfg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a configuração de relatório: %w", err)
		}

		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return configs, nil
}

func (r *reportDispatchRepository) UpdateLastSent(configID string, sentAt time.Time) error {
	if configID == "" {
		return errors.New("ID is required")
	}

	sqlQuery, args, err := squirrel.
		Update(reportDispatchTable).
		Set("last_sent_at", sentAt).
		Set("updated_at", sentAt).
		Where(squirrel.Eq{"id": configID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("report dispatch config not found")
	}

	return nil
}
