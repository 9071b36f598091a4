package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mahakmahak49793/finance-tracker/api"
	"github.com/mahakmahak49793/finance-tracker/internal/auth"
	"github.com/mahakmahak49793/finance-tracker/internal/config"
	"github.com/mahakmahak49793/finance-tracker/internal/logging"
	"github.com/mahakmahak49793/finance-tracker/internal/operator"
	"github.com/mahakmahak49793/finance-tracker/internal/service"
	"github.com/mahakmahak49793/finance-tracker/internal/storage"
)

const numOperatorWorkers = 4

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	// Optional .env for local development, ignored when absent.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, numOperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	sessions := auth.NewSessions(envConfig.SessionSecret, envConfig.SessionTTL)
	svc := service.NewService(dbStorage, delegator, sessions)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Sessions: sessions,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
