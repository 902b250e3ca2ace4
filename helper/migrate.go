package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"rimbest/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource       = "file://migrations/postgres"
	defaultMigrationTable = "schema_migrations"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionDrop    = "drop"
	ActionStepUp  = "step-up"
	ActionVersion = "version"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// connectionString targets the write pool, which owns the receipt ledger.
func connectionString(config *config.Config) string {
	table := config.DB.Postgres.MigrationTable
	if table == "" {
		table = defaultMigrationTable
	}

	sslMode := config.DB.Postgres.Write.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password),
		Host:   net.JoinHostPort(config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port),
		Path:   getDBName(config, config.DB.Postgres.Write.Name),
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	query.Set("x-migrations-table", table)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationSource, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")
	case ActionVersion:
		version, dirty, err := mig.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("error reading migration version: %w", err)
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}

func Version(config *config.Config) error {
	return Runner(config, ActionVersion)
}
