package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-storyteller/internal/config"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	storytellerv1alpha1 "github.com/KirkDiggler/rpg-storyteller/internal/handlers/storyteller/v1alpha1"
)

var (
	grpcPort   int
	store      string
	sqlitePath string
	contentDir string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the storyteller gRPC server backed by the configured store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides STORYTELLER_GRPC_PORT)")
	addStoreFlags(serverCmd)
}

// addStoreFlags registers the flags shared by every command that opens the store
func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&store, "store", "", "store backend: redis or sqlite (overrides STORYTELLER_STORE)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "sqlite database file (overrides STORYTELLER_SQLITE_PATH)")
	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (overrides STORYTELLER_CONTENT_DIR)")
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("store") {
		cfg.Store = store
	}
	if flags.Changed("content") {
		cfg.ContentDir = contentDir
	}
	if flags.Changed("sqlite") {
		cfg.SQLitePath = sqlitePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.InstallLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	handler, err := storytellerv1alpha1.NewHandler(&storytellerv1alpha1.HandlerConfig{
		AdventureService:    svc.adventure,
		InvestigatorService: svc.investigator,
		ShopService:         svc.shop,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create storyteller handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on port %d", cfg.GRPCPort)
	}

	loggerFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryOpt := grpc_recovery.WithRecoveryHandler(func(p any) error {
		slog.Error("Recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	storytellerv1alpha1.RegisterStorytellerServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(storytellerv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "store", cfg.Store)
		if err := srv.Serve(lis); err != nil {
			return errors.Wrap(err, "failed to serve")
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		timer := time.NewTimer(cfg.ShutdownTimeout)
		defer timer.Stop()

		select {
		case <-timer.C:
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}
