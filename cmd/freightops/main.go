package main

import (
	"fmt"
	"os"

	"github.com/nurpe/freightops/internal/auth"
	"github.com/nurpe/freightops/internal/config"
	"github.com/nurpe/freightops/internal/excel"
	"github.com/nurpe/freightops/internal/logger"
	"github.com/nurpe/freightops/internal/repository"
	"github.com/nurpe/freightops/internal/seed"
	"github.com/nurpe/freightops/internal/service"
	"github.com/nurpe/freightops/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	userRepo := repository.NewUserRepository()
	requestRepo := repository.NewRequestRepository()
	documentRepo := repository.NewDocumentRepository()
	activityRepo := repository.NewActivityRepository()

	activityService := service.NewActivityService(activityRepo, log)
	sessions := session.NewStore(cfg.Session.FilePath)
	provider := auth.NewProvider(userRepo, sessions, activityService, log)

	seed.Load(userRepo, requestRepo, documentRepo, activityRepo, provider)

	generator := excel.NewGenerator(cfg.Export.Currency)
	requestService := service.NewRequestService(requestRepo, activityService, generator, log)

	log.Info().
		Int("users", len(userRepo.List())).
		Int("requests", len(requestRepo.List())).
		Int("documents", len(documentRepo.List())).
		Msg("sample dataset loaded")

	if user := provider.CurrentUser(); user != nil {
		stats := requestService.Stats(*user)
		log.Info().
			Str("user", user.Name).
			Int("total", stats.Total).
			Int("in_progress", stats.InProgress).
			Int("completed", stats.Completed).
			Msg("restored session")
		return
	}
	log.Info().Msg("no active session; log in through the dashboard")
}
