package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/config-seeder/internal/app"
	"github.com/MKhiriev/config-seeder/internal/config"
	"github.com/MKhiriev/config-seeder/internal/logger"
	"github.com/MKhiriev/config-seeder/internal/service"
	"github.com/MKhiriev/config-seeder/internal/store"
	"github.com/MKhiriev/config-seeder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("config-seeder")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgErrorGettingConfigs)
	}

	log.Debug().Any("seed", cfg.Seed).Str("driver", cfg.Storage.DB.Driver).Msg(app.MsgReceivedConfigs)

	ctx := context.Background()
	if cfg.Seed.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Seed.Timeout)
		defer cancel()
	}

	report, err := seed(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgSeedingAborted)
	}

	if report.Failed > 0 {
		log.Warn().
			Str("run_id", report.RunID).
			Int("inserted", report.Inserted).
			Int("failed", report.Failed).
			Msg(app.MsgSeedingFinishedWithFailures)
		return
	}

	log.Info().
		Str("run_id", report.RunID).
		Int("inserted", report.Inserted).
		Msg(app.MsgSeedingFinished)
}

func seed(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (models.SeedReport, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return models.SeedReport{}, fmt.Errorf("%s: %w", app.MsgErrorCreatingStorages, err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return models.SeedReport{}, fmt.Errorf("%s: %w", app.MsgErrorCreatingServices, err)
	}

	return services.SeedService.Run(ctx)
}
