package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vigia/internal/audit"
	auditstore "vigia/internal/audit/store"
	"vigia/internal/availability"
	availabilityhandler "vigia/internal/availability/handler"
	availabilitystore "vigia/internal/availability/store"
	"vigia/internal/platform/config"
	"vigia/internal/platform/httpserver"
	"vigia/internal/platform/logger"
	"vigia/internal/platform/postgres"
	platformredis "vigia/internal/platform/redis"
	"vigia/internal/profile"
	profilehandler "vigia/internal/profile/handler"
	profilestore "vigia/internal/profile/store"
	"vigia/internal/risk"
	riskhandler "vigia/internal/risk/handler"
	riskmetrics "vigia/internal/risk/metrics"
	riskstore "vigia/internal/risk/store"
	"vigia/internal/score"
	scorehandler "vigia/internal/score/handler"
	scoremetrics "vigia/internal/score/metrics"
	scorestore "vigia/internal/score/store"
	httptransport "vigia/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := make(map[string]httptransport.HealthChecker)

	// Stores: Postgres when configured, in-memory otherwise (local dev).
	var (
		auditStore   audit.Store
		coordinators risk.CoordinatorSource
		walks        risk.WalkSource
		ledger       risk.LedgerSource
		scoreProfile score.ProfileSource
		scoreWriter  score.ScoreWriter
		availStore   availability.Store
		skillStore   profile.SkillStore
		geoStore     profile.GeoStore
	)

	if cfg.PostgresURL != "" {
		db, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		sources := riskstore.NewPostgresSources(db)
		coordinators, walks, ledger = sources, sources, sources
		scoreProfile = scorestore.NewPostgresProfile(db)
		scoreWriter = scorestore.NewPostgresScoreWriter(db)
		availStore = availabilitystore.NewPostgresStore(db)
		pgProfile := profilestore.NewPostgresStore(db)
		skillStore, geoStore = pgProfile, pgProfile
		auditStore = auditstore.NewPostgresStore(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		memory := risk.NewMemorySources()
		coordinators, walks, ledger = memory, memory, memory
		memProfile := profilestore.NewMemoryStore()
		skillStore, geoStore = memProfile, memProfile
		availStore = availabilitystore.NewMemoryStore()
		auditStore = auditstore.NewMemoryStore()
		memScore := scorestore.NewMemoryProfile()
		scoreProfile, scoreWriter = memScore, memScore
	}

	// Optional alert-summary cache.
	var summaryCache risk.SummaryCache
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		summaryCache = riskstore.NewRedisSummaryCache(redisClient.Client, cfg.Redis.SummaryTTL, log)
		checks["redis"] = redisClient
	}

	// Audit pipeline: non-blocking publisher, one background worker, an
	// optional Kafka sink.
	var auditSink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		auditSink = kafkaSink
	}

	inbox := make(chan audit.Event, cfg.AuditBuffer)
	publisher := audit.NewPublisher(inbox, log)
	worker := audit.NewWorker(auditStore, auditSink, inbox, log)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	// Services and handlers.
	riskSvc := risk.NewService(coordinators, walks, ledger, summaryCache, log, riskmetrics.New())
	scoreSvc := score.NewService(scoreProfile, scoreWriter, publisher, log, scoremetrics.New())
	availabilitySvc := availability.NewService(availStore, publisher, log)
	profileSvc := profile.NewService(skillStore, geoStore, publisher, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Risk:         riskhandler.New(riskSvc, log),
		Score:        scorehandler.New(scoreSvc, log),
		Availability: availabilityhandler.New(availabilitySvc, log),
		Profile:      profilehandler.New(profileSvc, log),
		Checks:       checks,
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting vigia", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
