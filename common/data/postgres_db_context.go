package data

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/common/utils"
	"github.com/golang-migrate/migrate"
	_ "github.com/golang-migrate/migrate/database/postgres"
	_ "github.com/golang-migrate/migrate/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbContextPg *PgDbContext
)

// PgDbContext represents a PostgreSQL database context
type PgDbContext struct {
	*pgxpool.Pool
	connectionString string
}

// QueryRunner interface for both Pool and Tx
type QueryRunner interface {
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

// TxFn is a function that will be called with a QueryRunner that is either the
// pool or an active transaction
type TxFn func(QueryRunner) error

func LoadPostgres(databaseUrl, databaseName string) error {
	u, err := url.Parse(databaseUrl)
	if err != nil {
		return err
	}

	u.Path = "/" + databaseName

	return InitializePostgreDb(u.String())
}

func InitializePostgreDb(connectionString string) error {
	if dbContextPg != nil {
		return nil
	}

	m, err := migrate.New("file://migrations", connectionString)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		utils.Logger.Fatal("Failed to run migrations", utils.Logger.String("error", err.Error()))
	}

	config, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return fmt.Errorf("unable to parse connection string: %v", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %v", err)
	}

	dbContextPg = &PgDbContext{Pool: pool, connectionString: connectionString}
	return nil
}

func NewPgDbContext() (*PgDbContext, error) {
	if dbContextPg == nil || dbContextPg.Pool == nil {
		return nil, errors.New("PostgresDbContext is not initialized")
	}

	return dbContextPg, nil
}

// WithTransaction executes a function within a transaction
func (db *PgDbContext) WithTransaction(ctx context.Context, fn TxFn) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(tx)
	if err != nil {
		tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

func (db *PgDbContext) GenerateNewId() string {
	return uuid.New().String()
}
