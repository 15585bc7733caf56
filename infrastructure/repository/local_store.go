package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/realize-report-api/infrastructure/database/postgres"
)

const localStoreTable = "local_store"

// LocalStoreRepository é o armazenamento chave-valor usado pelos
// repositórios tipados. Chaves são strings com prefixo de namespace e
// valores são JSON serializado.
type LocalStoreRepository interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type localStoreRepository struct {
	conn *postgres.Connection
}

func NewLocalStoreRepository(conn *postgres.Connection) LocalStoreRepository {
	return &localStoreRepository{
		conn: conn,
	}
}

// Get devolve o valor da chave, ou nil quando a chave não existe
func (r *localStoreRepository) Get(key string) ([]byte, error) {
	storeSQL, storeArgs, err := squirrel.
		Select("value").
		From(localStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	if err := r.conn.QueryRow(storeSQL, storeArgs...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return value, nil
}

func (r *localStoreRepository) Set(key string, value []byte) error {
	storeSQL, storeArgs, err := squirrel.StatementBuilder.
		Insert(localStoreTable).
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(storeSQL, storeArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *localStoreRepository) Delete(key string) error {
	storeSQL, storeArgs, err := squirrel.
		Delete(localStoreTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(storeSQL, storeArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
