package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bizops/internal/model"
	"bizops/pkg/config"
	"bizops/pkg/database"
	"bizops/pkg/logger"
)

var (
	cfg *config.Config
	log *zap.Logger

	rootCmd = &cobra.Command{
		Use:           "bizops",
		Short:         "Business master-data API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var envLoaded bool
			cfg, envLoaded = config.Load()

			l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			log = l
			if envLoaded {
				log.Debug(".env loaded")
			}
			return cfg.Validate()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			log.Info("migration finished")
			return closeDatabase(db)
		},
	}

	autoMigrate bool
)

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "run migrations before serving")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title Business master-data API
// @version 1.0
// @description CRUD for charges, taxes, units, freight, locations, cost codes, projects, item types and purchasing text.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Error("command failed", zap.Error(err))
			_ = log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// openDatabase connects and migrates.
func openDatabase() (*gorm.DB, error) {
	db, err := database.InitDB(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		_ = closeDatabase(db)
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
