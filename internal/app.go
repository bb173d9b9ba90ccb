package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cache_adapter "land-catalog/internal/adapters/cache"
	logger_adapter "land-catalog/internal/adapters/logger"
	"land-catalog/internal/adapters/memory"
	"land-catalog/internal/adapters/notifier"
	postgres_adapter "land-catalog/internal/adapters/postgres"
	rabbitmq_adapter "land-catalog/internal/adapters/rabbitmq"
	"land-catalog/internal/adapters/rest"
	"land-catalog/internal/configs"
	"land-catalog/internal/constants"
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/usecase"
	"land-catalog/internal/seed"
	fluentlogger "land-catalog/pkg/fluent_logger"
	"land-catalog/pkg/postgres"
	"land-catalog/pkg/rabbitmq/rabbitmq_common"
	"land-catalog/pkg/rabbitmq/rabbitmq_producer"
	"land-catalog/pkg/redis"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// stores - исходящие адаптеры хранения, выбранные по STORAGE_DRIVER
type stores struct {
	plots        port.PlotStoragePort
	questions    port.QuizQuestionRepositoryPort
	ledger       port.QuizLedgerPort
	contacts     port.ContactRepositoryPort
	contactCache port.ContactCachePort
	inquiries    port.InquiryRepositoryPort
	requests     port.ContactRequestRepositoryPort
}

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	redisClient  *goredis.Client
	connManager  *rabbitmq_common.ConnectionManager
	leadProducer *rabbitmq_producer.Publisher
	fluentClient *fluent.Fluent
	apiServer    *rest.Server

	stores     stores
	savePlot   *usecase.SavePlotUseCase
	putContact *usecase.PutContactUseCase

	baseLogger port.LoggerPort
	logger     port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp(ctx context.Context, appConfig *configs.AppConfig) (*App, error) {
	a := &App{config: appConfig}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	if err := a.initLoggers(); err != nil {
		return nil, err
	}

	// --- 2. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	if err := a.initStores(ctx); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.initContactCache(ctx); err != nil {
		a.Close()
		return nil, err
	}
	leadNotifier, err := a.initLeadNotifier()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.logger.Info("All outgoing adapters initialized.", port.Fields{"storage_driver": appConfig.StorageDriver})

	// --- 3. USE CASES ---
	promoPolicy := usecase.DefaultPromoPolicy()
	promoPolicy.DiscountPercent = appConfig.Promo.DiscountPercent
	promoPolicy.Validity = appConfig.Promo.Validity

	searchPlotsUseCase := usecase.NewSearchPlotsUseCase(a.stores.plots)
	getPlotDetailsUseCase := usecase.NewGetPlotDetailsUseCase(a.stores.plots)
	listQuestionsUseCase := usecase.NewListQuizQuestionsUseCase(a.stores.questions)
	submitQuizUseCase := usecase.NewSubmitQuizUseCase(a.stores.ledger, leadNotifier, promoPolicy)
	getContactUseCase := usecase.NewGetContactUseCase(a.stores.contacts, a.stores.contactCache, appConfig.ContactCacheTTL)
	a.putContact = usecase.NewPutContactUseCase(a.stores.contacts, a.stores.contactCache)
	createInquiryUseCase := usecase.NewCreateInquiryUseCase(a.stores.inquiries, leadNotifier)
	createRequestUseCase := usecase.NewCreateContactRequestUseCase(a.stores.requests, leadNotifier)
	a.savePlot = usecase.NewSavePlotUseCase(a.stores.plots)
	a.logger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	handlers := rest.Handlers{
		Plots:    rest.NewPlotHandler(searchPlotsUseCase, getPlotDetailsUseCase),
		Quiz:     rest.NewQuizHandler(listQuestionsUseCase, submitQuizUseCase),
		Contacts: rest.NewContactHandler(getContactUseCase, a.putContact),
		Inquiry:  rest.NewInquiryHandler(createInquiryUseCase),
		Requests: rest.NewContactRequestHandler(createRequestUseCase),
	}
	a.apiServer = rest.NewServer(appConfig.Rest.Port, handlers, appConfig.Rest.AllowedOrigins, a.baseLogger)
	a.logger.Info("REST API server configured.", nil)

	return a, nil
}

func (a *App) initLoggers() error {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.JSON,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return err
		}
		a.fluentClient = fluentClient
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return fmt.Errorf("failed to create multi-logger: %w", err)
	}

	a.baseLogger = multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	a.logger = a.baseLogger.WithFields(port.Fields{"component": "app"})
	a.logger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return nil
}

func (a *App) initStores(ctx context.Context) error {
	if a.config.StorageDriver == constants.StorageDriverMemory {
		plots := memory.NewPlotRepo()
		a.stores = stores{
			plots:     plots,
			questions: memory.NewQuizQuestionRepo(),
			ledger:    memory.NewQuizLedger(),
			contacts:  memory.NewContactRepo(),
			inquiries: memory.NewInquiryRepo(plots),
			requests:  memory.NewContactRequestRepo(),
		}
		a.logger.Warn("Using in-memory storage, data will be lost on restart", nil)
		return nil
	}

	dbPool, err := postgres.NewClient(ctx, postgres.Config{
		DatabaseURL:     a.config.Database.URL,
		MaxConns:        a.config.Database.MaxConns,
		MaxConnLifetime: a.config.Database.MaxConnLifetime,
	})
	if err != nil {
		a.logger.Error("Failed to connect to PostgreSQL", err, nil)
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	a.logger.Info("Successfully connected to PostgreSQL pool!", nil)

	plots, err := postgres_adapter.NewPlotStorageAdapter(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create postgres plot storage adapter: %w", err)
	}
	questions, err := postgres_adapter.NewQuizQuestionRepository(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create postgres quiz question repository: %w", err)
	}
	ledger, err := postgres_adapter.NewQuizLedgerRepository(dbPool, a.config.LedgerTxTimeout)
	if err != nil {
		return fmt.Errorf("failed to create postgres quiz ledger: %w", err)
	}
	contacts, err := postgres_adapter.NewContactRepository(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create postgres contact repository: %w", err)
	}
	inquiries, err := postgres_adapter.NewInquiryRepository(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create postgres inquiry repository: %w", err)
	}
	requests, err := postgres_adapter.NewContactRequestRepository(dbPool)
	if err != nil {
		return fmt.Errorf("failed to create postgres contact request repository: %w", err)
	}

	a.stores = stores{
		plots:     plots,
		questions: questions,
		ledger:    ledger,
		contacts:  contacts,
		inquiries: inquiries,
		requests:  requests,
	}
	a.logger.Info("Postgres storage adapters initialized.", nil)
	return nil
}

func (a *App) initContactCache(ctx context.Context) error {
	if a.config.Redis.URL == "" {
		a.stores.contactCache = memory.NewContactCache()
		a.logger.Info("REDIS_URL is not set, contact cache is kept in process memory", nil)
		return nil
	}

	redisClient, err := redis.NewClient(ctx, redis.Config{URL: a.config.Redis.URL})
	if err != nil {
		a.logger.Error("Failed to connect to Redis", err, nil)
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	a.redisClient = redisClient

	contactCache, err := cache_adapter.NewRedisContactCache(redisClient)
	if err != nil {
		return fmt.Errorf("failed to create redis contact cache: %w", err)
	}
	a.stores.contactCache = contactCache
	a.logger.Info("Redis contact cache initialized.", nil)
	return nil
}

func (a *App) initLeadNotifier() (port.LeadNotifierPort, error) {
	if !a.config.RabbitMQ.Enabled {
		a.logger.Info("RabbitMQ is disabled, leads are only logged", nil)
		return notifier.NewLogNotifier(), nil
	}

	connManagerLogger := a.baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.NewConnectionManager(
		rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger),
	)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := a.baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             a.config.RabbitMQ.LeadsExchange,
		ExchangeType:             "topic",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create lead events producer", err, nil)
		return nil, fmt.Errorf("failed to create lead events producer: %w", err)
	}
	a.leadProducer = producer

	leadEvents, err := rabbitmq_adapter.NewLeadEventsAdapter(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ lead events producer initialized.", port.Fields{"exchange": a.config.RabbitMQ.LeadsExchange})
	return leadEvents, nil
}

// Migrate создает схему PostgreSQL. Для хранилища в памяти ничего не делает.
func (a *App) Migrate(ctx context.Context) error {
	if a.dbPool == nil {
		a.logger.Info("Storage driver has no schema, migration skipped", port.Fields{"storage_driver": a.config.StorageDriver})
		return nil
	}
	if err := postgres_adapter.EnsureSchema(ctx, a.dbPool); err != nil {
		a.logger.Error("Schema migration failed", err, nil)
		return err
	}
	a.logger.Info("Schema is up to date.", nil)
	return nil
}

// Seed заполняет хранилище демонстрационными данными.
func (a *App) Seed(ctx context.Context) error {
	ctx = contextkeys.ContextWithLogger(ctx, a.baseLogger)
	seeder := seed.NewSeeder(a.savePlot, a.stores.questions, a.putContact)

	summary, err := seeder.Run(ctx)
	if err != nil {
		a.logger.Error("Seeding failed", err, nil)
		return err
	}
	a.logger.Info("Seeding finished", port.Fields{
		"plots": summary.Plots, "questions": summary.Questions, "contact": summary.Contact,
	})
	return nil
}

// Run запускает HTTP-сервер и ждет сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	defer a.Close()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	a.logger.Info("Shutdown sequence initiated...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// Close освобождает внешние ресурсы. Безопасен для частично собранного App.
func (a *App) Close() {
	if a.leadProducer != nil {
		if err := a.leadProducer.Close(); err != nil {
			a.logger.Error("Error closing lead events producer", err, nil)
		}
		a.leadProducer = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
		a.connManager = nil
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Error closing Redis client", err, nil)
		}
		a.redisClient = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	if a.logger != nil {
		a.logger.Info("Application shut down gracefully.", nil)
	}

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен, пишем в stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}
