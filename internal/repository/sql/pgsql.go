package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"productcatalog/internal/apperr"
	"productcatalog/internal/config"
	"productcatalog/internal/schema"
)

const (
	// PostgreSQL error codes. See https://www.postgresql.org/docs/14/errcodes-appendix.html
	pqForeignKeyViolationErrCode = "23503"
)

// StartDB opens the database connection and, for the default profile, applies
// the shipped migrations. The other profiles bind to pre-existing databases
// whose physical names the mapping resolves.
func StartDB(ctx context.Context, dbConf config.DB, profile schema.Profile) (*sql.DB, error) {
	dbCon, err := startDBConnection(ctx, dbConf)
	if err != nil {
		slog.Error("failed to initialize DB connection", slog.Any("err", err))
		return nil, fmt.Errorf("failed to initialize DB connection: %w", err)
	}
	slog.Info("DB connection done")
	if profile == schema.ProfileSnake {
		if err = RunMigrations(dbCon); err != nil {
			slog.Error("failed to run migrations", slog.Any("err", err))
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		slog.Info("DB migration done")
	}
	return dbCon, nil
}

func startDBConnection(ctx context.Context, conf config.DB) (*sql.DB, error) {
	dsnTmp := "host=%s user=%s password=%s dbname=%s port=%s sslmode=disable"
	dsn := fmt.Sprintf(dsnTmp, conf.Host, conf.User, conf.Password, conf.Name, conf.Port)
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the migrations shipped under ./migrations.
func RunMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// classifyDelete maps a storage failure on a delete path. A foreign-key
// violation means the database itself blocked the delete, which surfaces the
// same way as the explicit restrict check.
func classifyDelete(entity string, id int64, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pqForeignKeyViolationErrCode {
		return apperr.NewReferentialIntegrity(entity, id, "still referenced: "+pgErr.Detail)
	}
	return apperr.NewStorage(op, err)
}
