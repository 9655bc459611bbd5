package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"academy/pkg/domain"
)

// PostgresStore persists ledger accounts in PostgreSQL. One row per account,
// keyed by the derived address; payloads stay in their fixed binary layout so
// memory and postgres deployments share the same encoding.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed account store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, addr domain.Address) (Record, error) {
	var (
		kind int16
		data []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT kind, data FROM ledger_accounts WHERE address = $1`,
		addr.Bytes(),
	).Scan(&kind, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("get %s: %w", addr, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get account: %w", err)
	}
	return Record{Address: addr, Kind: Kind(kind), Data: data}, nil
}

func (s *PostgresStore) Put(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_accounts (address, kind, data, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (address) DO UPDATE SET kind = $2, data = $3, updated_at = now()`,
		rec.Address.Bytes(), int16(rec.Kind), rec.Data,
	)
	if err != nil {
		return fmt.Errorf("put account: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, addr domain.Address) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM ledger_accounts WHERE address = $1`, addr.Bytes())
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", addr, ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ListByKind(ctx context.Context, kind Kind) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT address, data FROM ledger_accounts WHERE kind = $1 ORDER BY address`,
		int16(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var out []Record
	for rows.Next() {
		var (
			raw  []byte
			data []byte
		)
		if err := rows.Scan(&raw, &data); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		if len(raw) != 32 {
			return nil, fmt.Errorf("list accounts: malformed address length %d", len(raw))
		}
		var addr domain.Address
		copy(addr[:], raw)
		out = append(out, Record{Address: addr, Kind: kind, Data: data})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return out, nil
}
