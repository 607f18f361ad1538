package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
)

const clientesTable = "clientes"

type ClienteRepository interface {
	ListClientes() ([]*domain.Cliente, error)
}

type clienteRepository struct {
	conn postgres.Queryer
}

func NewClienteRepository(conn postgres.Queryer) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func (c *clienteRepository) ListClientes() ([]*domain.Cliente, error) {
	clientesSQL, clientesArgs, err := squirrel.
		Select("id, nome, cnpj, telefone, email, instagram, site, created_at, updated_at").
		From(clientesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := c.conn.Query(clientesSQL, clientesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	clientes := make([]*domain.Cliente, 0)

	for rows.Next() {
		cliente := &domain.Cliente{}

		if err := rows.Scan(
			&cliente.ID,
			&cliente.Nome,
			&cliente.CNPJ,
			&cliente.Telefone,
			&cliente.Email,
			&cliente.Instagram,
			&cliente.Site,
			&cliente.CreatedAt,
			&cliente.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o cliente: %w", err)
		}

		clientes = append(clientes, cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return clientes, nil
}
