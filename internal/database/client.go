package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

type DatabaseClient struct {
	db *sqlx.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// DB exposes the underlying handle for migrations.
func (d *DatabaseClient) DB() *sql.DB {
	return d.db.DB
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// namedReturning runs an INSERT/UPDATE ... RETURNING statement with named parameters
// and scans the single returned row into dest.
func (d *DatabaseClient) namedReturning(ctx context.Context, query string, arg interface{}, dest interface{}) error {
	stmt, err := d.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	return notFound(stmt.QueryRowxContext(ctx, arg).StructScan(dest))
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
