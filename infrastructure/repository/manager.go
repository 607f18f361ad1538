package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
)

const managersTable = "managers"

type ManagerRepository interface {
	ListManagers() ([]*domain.Manager, error)
}

type managerRepository struct {
	conn postgres.Queryer
}

func NewManagerRepository(conn postgres.Queryer) ManagerRepository {
	return &managerRepository{
		conn: conn,
	}
}

func (m *managerRepository) ListManagers() ([]*domain.Manager, error) {
	managersSQL, managersArgs, err := squirrel.
		Select("id, nome, ativo").
		From(managersTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.conn.Query(managersSQL, managersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	managers := make([]*domain.Manager, 0)

	for rows.Next() {
		manager := &domain.Manager{}

		if err := rows.Scan(&manager.ID, &manager.Nome, &manager.Ativo); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o gestor: %w", err)
		}

		managers = append(managers, manager)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return managers, nil
}
