package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/ShuleiCao/halotools/adapters/excel"
	"github.com/ShuleiCao/halotools/adapters/postgres"
	"github.com/ShuleiCao/halotools/app"
	"github.com/ShuleiCao/halotools/internal/config"
	"github.com/ShuleiCao/halotools/internal/rng"
	"github.com/ShuleiCao/halotools/internal/testkit"
	"github.com/ShuleiCao/halotools/ports"
	"github.com/ShuleiCao/halotools/ui"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var runs ports.RunRepository
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("schema: %v", err)
		}
		runs = postgres.NewRunRepository(db)
	}

	source := catalogSource(cfg)
	service := app.NewPopulationService(source, rng.NewStreamSource(), runs, excel.NewCatalogExporter())

	httpApp := ui.NewApp(ui.Config{Port: cfg.Server.Port}, service)
	if err := httpApp.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func catalogSource(cfg *config.Config) ports.CatalogSource {
	if cfg.Paths.SnapshotFile != "" {
		return excel.NewCatalogReader(cfg.Paths.SnapshotFile, "snapshot", cfg.Sim.Redshift, 0)
	}
	fakeCfg := testkit.DefaultFakeSimConfig()
	fakeCfg.HaloCount = cfg.Sim.HaloCount
	fakeCfg.Seed = cfg.Sim.Seed
	fakeCfg.Redshift = cfg.Sim.Redshift
	return testkit.NewFakeSim(fakeCfg)
}
