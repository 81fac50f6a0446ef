package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"tandoor/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func databaseName(config *config.Config) string {
	name := config.DB.Postgres.Write.Name

	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + name
	}

	return name
}

func newMigrate(config *config.Config) (*migrate.Migrate, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		config.DB.Postgres.Write.Username,
		config.DB.Postgres.Write.Password,
		net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		databaseName(config),
		config.DB.Postgres.Write.SSLMode,
		config.DB.Postgres.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(config *config.Config, step func(*migrate.Migrate) error, message string) error {
	mig, err := newMigrate(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Msg(message)

	return nil
}

// Up applies every pending migration.
func Up(config *config.Config) error {
	return run(config, (*migrate.Migrate).Up, "Database migrations completed successfully")
}

// StepUp applies the next pending migration only.
func StepUp(config *config.Config) error {
	return run(config, func(m *migrate.Migrate) error { return m.Steps(1) }, "Database migration step applied successfully")
}

// Down rolls back the most recent migration.
func Down(config *config.Config) error {
	return run(config, func(m *migrate.Migrate) error { return m.Steps(-1) }, "Database migration rolled back successfully")
}

// Drop rolls back every applied migration.
func Drop(config *config.Config) error {
	return run(config, (*migrate.Migrate).Down, "Database migrations rolled back successfully")
}
