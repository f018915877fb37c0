package main

import (
	"flag"
	"fmt"
	"os"

	"librarycatalog/internal/config"

	"github.com/spf13/cobra"
)

// Глобальные флаги, перекрывают переменные окружения
type globalFlags struct {
	storage     string
	sqlitePath  string
	databaseDSN string
	envFile     string
}

func NewRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Library catalog administration",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&gf.storage, "storage", "", "storage backend: postgres, sqlite or memory")
	cmd.PersistentFlags().StringVar(&gf.sqlitePath, "sqlite-path", "", "SQLite database file")
	cmd.PersistentFlags().StringVar(&gf.databaseDSN, "database-dsn", "", "Postgres DSN")
	cmd.PersistentFlags().StringVar(&gf.envFile, "env-file", ".env", "dotenv file to load")

	cmd.AddCommand(NewUserCmd(gf))
	cmd.AddCommand(NewTokenCmd(gf))

	return cmd
}

// loadConfig собирает конфиг так же, как сервер: .env, затем окружение.
// Явно заданные флаги записываются в окружение, чтобы пройти ту же валидацию.
func (gf *globalFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(gf.envFile); err != nil {
		return nil, err
	}

	for key, val := range map[string]string{
		config.EnvStorage:     gf.storage,
		config.EnvSQLitePath:  gf.sqlitePath,
		config.EnvDatabaseDSN: gf.databaseDSN,
	} {
		if val == "" {
			continue
		}
		if err := os.Setenv(key, val); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg, err := config.Load(flag.NewFlagSet("catalogctl", flag.ContinueOnError), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	for _, w := range cfg.Warnings {
		cmd.PrintErrln("warning:", w)
	}
	return cfg, nil
}
