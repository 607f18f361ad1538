package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/lupamkt/backoffice-api/infrastructure/database/postgres"
	"github.com/lupamkt/backoffice-api/internal/domain"
)

const accountsTable = "accounts a"

const accountColumns = `a.id, a.nome, a.empresa, a.telefone, a.email, a.cliente_id,
	a.gestor_id, a.status, a.usa_meta_ads, a.usa_google_ads, a.canais,
	a.meta_account_id, a.google_ads_id, a.saldo_meta, a.budget_mensal_meta,
	a.budget_mensal_google, a.tracking_ativo, a.created_at, a.updated_at`

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error)
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		OrderBy("a.nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		acc := &domain.Account{}

		if err := rows.Scan(
			&acc.ID,
			&acc.Nome,
			&acc.Empresa,
			&acc.Telefone,
			&acc.Email,
			&acc.ClienteID,
			&acc.GestorID,
			&acc.Status,
			&acc.UsaMetaAds,
			&acc.UsaGoogleAds,
			pq.Array(&acc.Canais),
			&acc.MetaAccountID,
			&acc.GoogleAdsID,
			&acc.SaldoMeta,
			&acc.BudgetMensalMeta,
			&acc.BudgetMensalGoogle,
			&acc.TrackingAtivo,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func deserializeAccount(row *sql.Row) (*domain.Account, error) {
	acc := &domain.Account{}

	if err := row.Scan(
		&acc.ID,
		&acc.Nome,
		&acc.Empresa,
		&acc.Telefone,
		&acc.Email,
		&acc.ClienteID,
		&acc.GestorID,
		&acc.Status,
		&acc.UsaMetaAds,
		&acc.UsaGoogleAds,
		pq.Array(&acc.Canais),
		&acc.MetaAccountID,
		&acc.GoogleAdsID,
		&acc.SaldoMeta,
		&acc.BudgetMensalMeta,
		&acc.BudgetMensalGoogle,
		&acc.TrackingAtivo,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
