package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/orgdb/internal/api"
	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/config"
	"github.com/dmitrymomot/orgdb/pkg/dbrouter"
	"github.com/dmitrymomot/orgdb/pkg/httpserver"
	"github.com/dmitrymomot/orgdb/pkg/logger"
	"github.com/dmitrymomot/orgdb/pkg/metrics"
	"github.com/dmitrymomot/orgdb/pkg/mongo"
	"github.com/dmitrymomot/orgdb/pkg/requestid"
	"github.com/dmitrymomot/orgdb/pkg/tenant"
)

type appConfig struct {
	Log    logger.Config
	HTTP   httpserver.Config
	Mongo  mongo.Config
	Router dbrouter.Config
	Tenant tenant.Config
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orgdb: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(requestid.LoggerExtractor(), tenant.LoggerExtractor()),
	)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error("mongodb disconnect failed", logger.Error(err))
		}
	}()

	router := dbrouter.NewFromConfig(client, cfg.Router)
	handler := api.Router(api.Deps{
		Store:     users.NewMongoStore(router.Database),
		Database:  router.Name,
		Logger:    log,
		Metrics:   metrics.New(),
		Tenant:    cfg.Tenant,
		Validator: router.ValidateTenant,
		Ready:     []func(context.Context) error{mongo.Healthcheck(client)},
	})
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx, handler) })
	g.Go(func() error {
		logTenantDatabases(ctx, log, client, router)
		return nil
	})
	return g.Wait()
}

// logTenantDatabases reports the tenant databases present at startup.
func logTenantDatabases(ctx context.Context, log *slog.Logger, client *mongodriver.Client, router *dbrouter.Router) {
	names, err := client.ListDatabaseNames(ctx, bson.D{})
	if err != nil {
		log.WarnContext(ctx, "listing databases failed", logger.Error(err))
		return
	}
	tenants := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := router.TenantFromDatabase(name); ok {
			tenants = append(tenants, id)
		}
	}
	log.InfoContext(ctx, "tenant databases discovered",
		slog.Int("count", len(tenants)),
		slog.String("default_database", router.DefaultName()),
	)
}
