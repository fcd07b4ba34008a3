package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/auth"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/config"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/handler"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/middleware"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/notification"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/obs"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/payment"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/repository"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/router"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

const appName = "StyleDecor"

type App struct {
	cfg            *config.Config
	log            logger.Logger
	client         *mongo.Client
	db             *mongo.Database
	publisher      *notification.Publisher
	shutdownTracer obs.ShutdownFunc
	httpServer     *http.Server
}

func NewLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = app.initTracing(); err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeDB()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initTracing() error {
	shutdown, err := obs.InitTracer(
		context.Background(),
		a.cfg.Tracing.Endpoint,
		a.cfg.Tracing.ServiceName,
		a.cfg.Gin.Mode,
	)
	if err != nil {
		return err
	}
	a.shutdownTracer = shutdown

	if a.cfg.Tracing.Endpoint != "" {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "tracing enabled",
			logger.String("endpoint", a.cfg.Tracing.Endpoint),
		)
	}

	return nil
}

func (a *App) initDB() error {
	ctx := context.Background()

	client, err := repository.Connect(ctx, a.cfg.Mongo)
	if err != nil {
		return err
	}
	a.client = client
	a.db = client.Database(a.cfg.Mongo.Database)

	if err = repository.EnsureIndexes(ctx, a.db); err != nil {
		a.closeDB()
		return fmt.Errorf("ensure indexes: %w", err)
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("database", a.cfg.Mongo.Database),
		logger.Any("transactional_payments", a.cfg.Mongo.TransactionalPayments),
	)

	return nil
}

func (a *App) initNotifier() (notification.Multi, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}

	events := notification.NewEventNotifier(nil, a.log)
	if a.cfg.AMQP.Enabled() {
		pub, err := notification.NewPublisher(a.cfg.AMQP.URL, a.cfg.AMQP.Exchange)
		if err != nil {
			return nil, fmt.Errorf("init amqp: %w", err)
		}
		a.publisher = pub
		events = notification.NewEventNotifier(pub, a.log)

		a.log.LogAttrs(context.Background(), logger.InfoLevel, "event publishing enabled",
			logger.String("exchange", a.cfg.AMQP.Exchange),
		)
	} else {
		a.log.Warn("amqp url is empty, event publishing disabled")
	}

	return notification.Multi{tg, events}, nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	serviceRepo := repository.NewServiceRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	tx := repository.NewTransactor(a.client, a.cfg.Mongo.TransactionalPayments)

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	if a.cfg.Stripe.SecretKey == "" {
		a.log.Warn("stripe secret key is empty, payment intents will fail")
	}
	provider := payment.NewStripeProvider(a.cfg.Stripe.SecretKey, a.cfg.Stripe.Currency)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	bookingService := service.NewBookingService(bookingRepo, userRepo, n, a.log)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, userRepo, provider, tx, n, a.log)
	statsService := service.NewStatsService(userRepo, serviceRepo, bookingRepo, paymentRepo)
	authorizer := service.NewRoleAuthorizer(userRepo)

	tokens := auth.NewManager(a.cfg.Auth.TokenSecret, a.cfg.Auth.TokenTTL)

	h := handler.NewHandler(tokens, userService, catalogService, bookingService, paymentService, statsService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:  middleware.RequireAuth(tokens),
			Admin: middleware.RequireRole(authorizer, domain.RoleAdmin, a.log),
		},
		middleware.RequestID(),
		middleware.CORS(a.cfg.CORS),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		a.closeDB()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "close amqp publisher", logger.String("error", err.Error()))
		}
	}

	if err := a.shutdownTracer(shutdownCtx); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "flush traces", logger.String("error", err.Error()))
	}

	if err := a.client.Disconnect(shutdownCtx); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeDB() {
	if a.client == nil {
		return
	}
	if err := a.client.Disconnect(context.Background()); err != nil {
		a.log.LogAttrs(context.Background(), logger.ErrorLevel, "disconnect mongo", logger.String("error", err.Error()))
	}
}
