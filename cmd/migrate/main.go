package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/recipebox/server/internal/repository"
	"github.com/recipebox/server/internal/services"
	"github.com/recipebox/server/pkg/config"
	"github.com/recipebox/server/pkg/logger"
)

func main() {
	superEmail := flag.String("superuser-email", "", "provision a superuser with this email after migrating")
	superPassword := flag.String("superuser-password", "", "password for the provisioned superuser")
	flag.Parse()

	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	if *superEmail != "" {
		accounts := repository.NewAccountRepository(db)
		svc := services.NewAccountService(accounts, cfg.BcryptCost)
		if _, err := svc.CreateSuperuser(context.Background(), *superEmail, *superPassword); err != nil {
			log.Fatal("superuser provisioning failed", zap.Error(err))
		}
		fmt.Fprintln(os.Stdout, "superuser provisioned")
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}
