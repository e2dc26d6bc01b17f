package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profast/api"
	"profast/cmd"
	httpin "profast/internal/adapters/in/http"
	"profast/internal/adapters/out/jwtverifier"
	"profast/internal/adapters/out/mongo/trackingrepo"
	"profast/internal/adapters/out/postgres"
	"profast/internal/adapters/out/rabbitmq"
	"profast/internal/adapters/out/stripe"
	"profast/internal/core/application/eventhandlers"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	tokenLeeway     = 30 * time.Second
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenPostgres(ctx, configs)
	mongoClient, trackingRepo := mustOpenTracking(ctx, configs)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	publishers := eventhandlers.Fanout{eventhandlers.NewTrackingRecorder(trackingRepo)}
	if configs.RabbitMQURL != "" {
		conn, publisher := mustOpenRabbitMQ(configs, logger)
		defer func() {
			_ = conn.Close()
		}()
		publishers = append(publishers, publisher)
	}

	verifier, err := jwtverifier.New(configs.JWTSecret, configs.JWTIssuer, tokenLeeway)
	if err != nil {
		log.Fatalf("invalid JWT configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		trackingRepo,
		stripe.New(configs.StripeSecretKey, configs.StripeAPIURL),
		verifier,
		publishers,
		logger,
	)

	jobManager := app.JobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}
	return configs
}

func mustOpenPostgres(ctx context.Context, configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	if err = postgres.Migrate(migrateCtx, gormDB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return gormDB
}

func mustOpenTracking(ctx context.Context, configs cmd.Config) (*mongo.Client, *trackingrepo.MongoTrackingRepository) {
	connectCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect MongoDB: %v", err)
	}
	if err = client.Ping(connectCtx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	repo := trackingrepo.NewMongoTrackingRepository(client.Database(configs.MongoDatabase))
	if err = repo.EnsureIndexes(connectCtx); err != nil {
		log.Fatalf("failed to create tracking indexes: %v", err)
	}
	return client, repo
}

func mustOpenRabbitMQ(configs cmd.Config, logger *slog.Logger) (*rabbitmq.Connection, *rabbitmq.Publisher) {
	conn, err := rabbitmq.Dial(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	publisher, err := rabbitmq.NewPublisher(conn.Channel, configs.RabbitMQExchange, logger)
	if err != nil {
		_ = conn.Close()
		log.Fatalf("failed to declare exchange: %v", err)
	}
	return conn, publisher
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpin.NewServer(app.Handlers())
	e, err := httpin.NewRouter(server, app.Authorizer(), httpin.RouterConfig{
		CORSOrigins:      configs.CORSOriginList(),
		OpenAPISpec:      api.Spec,
		ValidateRequests: configs.OpenAPIValidate,
	}, logger)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	logger.Info("Parcel server listening", "port", configs.HTTPPort)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
