package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/joseph-ayodele/docuvault/gen/ent"
	docuvaultpb "github.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1"
	"github.com/joseph-ayodele/docuvault/internal/async"
	"github.com/joseph-ayodele/docuvault/internal/classifier"
	"github.com/joseph-ayodele/docuvault/internal/common"
	"github.com/joseph-ayodele/docuvault/internal/export"
	"github.com/joseph-ayodele/docuvault/internal/ingest"
	"github.com/joseph-ayodele/docuvault/internal/ocr"
	"github.com/joseph-ayodele/docuvault/internal/pipeline"
	repo "github.com/joseph-ayodele/docuvault/internal/repository"
	svc "github.com/joseph-ayodele/docuvault/internal/server"
	"github.com/joseph-ayodele/docuvault/internal/vault"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres when DB_URL is set, embedded sqlite otherwise.
	var (
		entc *ent.Client
		err  error
	)
	if cfg.Database.DSN != "" {
		dbConfig := repo.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}
		client, pool, openErr := repo.Open(ctx, dbConfig, logger)
		if openErr != nil {
			logger.Error("failed to open database", "error", openErr)
			os.Exit(1)
		}
		defer repo.Close(client, pool, logger)
		if err = repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		entc = client
	} else {
		client, openErr := repo.OpenLite(ctx, cfg.Database.LitePath, logger)
		if openErr != nil {
			logger.Error("failed to open embedded database", "error", openErr)
			os.Exit(1)
		}
		defer repo.Close(client, nil, logger)
		entc = client
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	usersRepo := repo.NewUserRepository(entc, logger)
	activityRepo := repo.NewActivityRepository(entc, logger)

	ruleset := classifier.DefaultRuleset()
	if cfg.Classifier.RulesetPath != "" {
		ruleset, err = classifier.LoadRuleset(cfg.Classifier.RulesetPath)
		if err != nil {
			logger.Error("failed to load classifier ruleset", "path", cfg.Classifier.RulesetPath, "error", err)
			os.Exit(1)
		}
	}

	engine := ocr.NewPopplerTesseract(ocr.EngineConfig{
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		DPI:         cfg.OCR.DPI,
		TessdataDir: cfg.OCR.TessdataDir,
	})
	extractor := ocr.NewExtractor(engine, logger)
	docVault := vault.New(cfg.Vault.RootDir, logger)
	cls := classifier.NewClassifier(ruleset, logger)
	processor := pipeline.NewProcessor(docsRepo, extractor, cls, docVault, logger)
	ingestor := ingest.NewIngestor(processor, logger)
	exporter := export.NewService(docsRepo, logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(cfg.Ingest.ProcessTimeout),
	)

	if cfg.Ingest.WatchDir != "" {
		uploaderID, parseErr := uuid.Parse(cfg.Ingest.WatchUploader)
		if parseErr != nil {
			logger.Error("WATCH_UPLOADER_ID must be a UUID", "error", parseErr)
			os.Exit(1)
		}
		drop := ingest.NewDropFolder(queue, uploaderID, logger)
		go func() {
			if err := drop.Run(ctx, ingest.WatchConfig{
				Roots:       []string{cfg.Ingest.WatchDir},
				InitialScan: true,
				Debounce:    500 * time.Millisecond,
			}); err != nil && ctx.Err() == nil {
				logger.Error("drop folder watcher stopped", "error", err)
			}
		}()
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsService := svc.NewDocumentsService(processor, ingestor, docsRepo, activityRepo, logger)
	docuvaultpb.RegisterDocumentsServiceServer(grpcServer, documentsService)
	adminService := svc.NewAdminService(docsRepo, usersRepo, activityRepo, exporter, logger)
	docuvaultpb.RegisterAdminServiceServer(grpcServer, adminService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("docuvault listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
