package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/reviewhub/accounts/pkg/account"
	"github.com/reviewhub/accounts/pkg/account/api"
	"github.com/reviewhub/accounts/pkg/password"
)

type AccountsDbConfig struct {
	Host     string `env:"ACCOUNTS_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"ACCOUNTS_PG_PORT" env-default:"5432"`
	Database string `env:"ACCOUNTS_PG_DATABASE" env-default:"accounts_db"`
	User     string `env:"ACCOUNTS_PG_USER" env-default:"accounts"`
	Password string `env:"ACCOUNTS_PG_PASSWORD" env-default:"pwd"`
}

func (d AccountsDbConfig) toDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

type PersistenceConfig struct {
	// Type selects the repository backend: postgres or file
	Type    string `env:"ACCOUNTS_PERSISTENCE" env-default:"postgres"`
	DataDir string `env:"ACCOUNTS_DATA_DIR" env-default:"./data"`
}

type PasswordConfig struct {
	Version int `env:"ACCOUNTS_PASSWORD_VERSION" env-default:"2"`
}

type Config struct {
	AccountsDbConfig  AccountsDbConfig
	PersistenceConfig PersistenceConfig
	PasswordConfig    PasswordConfig
}

func main() {
	config := Config{}
	cleanenv.ReadEnv(&config)

	server := app.DefaultApp()

	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	repoConfig := account.RepositoryConfig{
		DataDir: config.PersistenceConfig.DataDir,
	}
	if config.PersistenceConfig.Type == "postgres" || config.PersistenceConfig.Type == "postgresql" {
		dbConfig := config.AccountsDbConfig.toDbConfig()
		pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
		if err != nil {
			slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
			os.Exit(-1)
		}
		repoConfig.DB = pool
	}

	repo, err := account.NewAccountRepository(config.PersistenceConfig.Type, repoConfig)
	if err != nil {
		slog.Error("Failed creating account repository", "type", config.PersistenceConfig.Type, "err", err)
		os.Exit(-1)
	}

	hasherFactory := password.NewDefaultHasherFactory()
	hasher, err := hasherFactory.GetHasher(password.PasswordVersion(config.PasswordConfig.Version))
	if err != nil {
		slog.Error("Failed creating password hasher", "version", config.PasswordConfig.Version, "err", err)
		os.Exit(-1)
	}

	accountService := account.NewAccountService(repo, hasher)
	accountHandle := api.NewHandle(accountService)

	server.R.Route("/api", func(r chi.Router) {
		accountHandle.RegisterRoutes(r)
	})

	server.Run()
}
