package pg

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgdriver "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	pingAttempts = 30
	pingBackoff  = 500 * time.Millisecond
)

// RunMigrations applies pending up migrations. The database may still be
// starting, so the connection is pinged until it answers or attempts run out.
func RunMigrations(ctx context.Context, db *DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate src: %w", err)
	}
	sqldb, err := sql.Open("pgx", db.Pool.Config().ConnString())
	if err != nil {
		return fmt.Errorf("open sql db: %w", err)
	}
	defer sqldb.Close()

	if err := waitForDB(ctx, sqldb); err != nil {
		return err
	}
	driver, err := pgdriver.WithInstance(sqldb, &pgdriver.Config{MigrationsTable: "cryptostats_schema_migrations"})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func waitForDB(ctx context.Context, sqldb *sql.DB) error {
	var pingErr error
	for i := 0; i < pingAttempts; i++ {
		if pingErr = sqldb.PingContext(ctx); pingErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping db: %w", ctx.Err())
		case <-time.After(pingBackoff):
		}
	}
	return fmt.Errorf("ping db: %w", pingErr)
}
