package main

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/storefront-orders/internal/app"
	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/SergeyBogomolovv/storefront-orders/internal/payment"
	"github.com/SergeyBogomolovv/storefront-orders/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-orders/internal/repo"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/migrations"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront Orders API
// @version         1.0
// @description     Оформление оплаченных заказов, статусы и отслеживание
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(context.Background(), conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		migrator, err := postgres.NewMigrator(db, migrations.FS)
		panicIfErr("failed to load migrations", err)
		panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), logger, migrator))
	}
	if conf.Postgres.SeedDemo {
		seedFS, err := fs.Sub(migrations.Seed, "seed")
		panicIfErr("failed to open seed", err)
		seeder, err := postgres.NewSeeder(db, seedFS)
		panicIfErr("failed to load seed", err)
		panicIfErr("failed to seed db", postgres.Migrate(context.Background(), logger, seeder))
	}

	handler.RegisterMetrics()

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache, closers := newCache(logger, conf.Cache)
	publisher := notify.NewPublisher(conf.Kafka)
	closers = append(closers, publisher)

	orderService := service.NewOrderService(logger, service.Deps{
		TxManager: txManager,
		Orders:    pgRepo,
		Products:  pgRepo,
		Users:     pgRepo,
		Verifier:  payment.NewVerifier(conf.Payment.Secret),
		Publisher: publisher,
		Cache:     orderCache,
	}, conf.Pricing)
	paymentService := service.NewPaymentService(logger, payment.NewGateway(conf.Payment))

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, newMailer(logger, conf.SMTP))
	httpHandler := handler.NewHTTPHandler(logger, orderService, paymentService, conf.Env == config.EnvDevelopment)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(closers...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type orderCache interface {
	service.Cache
	app.Starter
}

func newCache(logger *slog.Logger, cfg config.Cache) (orderCache, []io.Closer) {
	if cfg.Driver == "redis" {
		c := cache.NewRedisCache(logger, cfg.RedisAddr, "storefront", cfg.TTL)
		return c, []io.Closer{c}
	}
	return cache.NewLRUCache(cfg.Capacity, cfg.TTL), nil
}

func newMailer(logger *slog.Logger, cfg config.SMTP) handler.Mailer {
	if cfg.Host == "" {
		logger.Warn("smtp host is not set, confirmations will only be logged")
		return notify.NewLogMailer(logger)
	}
	mailer, err := notify.NewSMTPMailer(cfg)
	panicIfErr("failed to create mailer", err)
	return mailer
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
