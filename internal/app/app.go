// Package app wires configuration, stores and use cases into one container
// shared by the HTTP server and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"estimate_agent/internal/adapter/persistence/repository"
	"estimate_agent/internal/config"
	"estimate_agent/internal/infrastructure/chunker"
	"estimate_agent/internal/infrastructure/database"
	"estimate_agent/internal/infrastructure/events"
	"estimate_agent/internal/infrastructure/llm"
	"estimate_agent/internal/infrastructure/metrics"
	"estimate_agent/internal/infrastructure/seed"
	"estimate_agent/internal/infrastructure/vectorstore"
	"estimate_agent/internal/usecase"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	DB      *gorm.DB
	Metrics *metrics.Metrics

	Estimates    usecase.IEstimateUseCase
	Requirements usecase.IRequirementUseCase
	Questions    usecase.IQuestionUseCase
	RAG          usecase.IRAGUseCase
	Catalog      usecase.ICatalogUseCase
	APIKeys      interfaces.IAPIKeyRepository

	closers []func() error
}

type sessionStores struct {
	estimates interfaces.IEstimateRepository
	items     interfaces.IEstimateItemRepository
	questions interfaces.IQuestionRepository
}

// New opens every store named by cfg and builds the use cases. Optional
// integrations (LLM, pgvector, NATS) are left nil when not configured.
func New(ctx context.Context, cfg *config.Config, verbose bool) (*App, error) {
	db, err := database.OpenGorm(cfg.Database, verbose)
	if err != nil {
		return nil, err
	}
	if err := repository.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	a := &App{Config: cfg, DB: db, Metrics: metrics.New()}
	a.closers = append(a.closers, func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})

	stores, err := a.openSessionStores(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	catalogSeed, err := seed.Catalog()
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load catalog seed: %w", err)
	}

	var llmClient interfaces.ILLMClient
	if cfg.LLM.Enabled() {
		llmClient = llm.NewClient(cfg.LLM, llm.WithMetrics(a.Metrics))
	} else {
		logger.Warn(ctx, "LLM_API_KEY not set, semantic categorization and retrieval are disabled")
	}

	var vectors interfaces.IVectorStore
	if database.SupportsVectors(cfg.Database) {
		vectors = vectorstore.NewPgVectorStore(db)
	} else {
		logger.Warn(ctx, "vector store requires postgres, retrieval is disabled", "driver", cfg.Database.Driver)
	}

	var publisher interfaces.IEventPublisher
	if cfg.NATSURL != "" {
		pub, err := events.Connect(cfg.NATSURL, a.Metrics)
		if err != nil {
			logger.Warn(ctx, "nats unavailable, domain events are disabled", "error", err)
		} else {
			publisher = pub
			a.closers = append(a.closers, pub.Close)
		}
	}

	catalogRepo := repository.NewCatalogGormRepository(db)
	dimension := cfg.LLM.EmbeddingDimension

	estimates := usecase.NewEstimateUseCase(stores.estimates, stores.items, publisher, cfg.Estimate.TTL)
	workflow := usecase.NewWorkflowUseCase(catalogRepo, stores.estimates, stores.questions, llmClient, vectors, publisher, cfg.Estimate.DefaultCategory)

	a.Estimates = estimates
	a.Requirements = usecase.NewRequirementUseCase(estimates, workflow, publisher)
	a.Questions = usecase.NewQuestionUseCase(stores.estimates, stores.questions)
	a.RAG = usecase.NewRAGUseCase(llmClient, vectors, chunker.NewDefault(), dimension)
	catalog := usecase.NewCatalogUseCase(catalogRepo, llmClient, vectors, catalogSeed, dimension)
	catalog.EmbedInterval = cfg.LLM.EmbedInterval
	a.Catalog = catalog
	a.APIKeys = repository.NewAPIKeyGormRepository(db)
	return a, nil
}

func (a *App) openSessionStores(ctx context.Context) (sessionStores, error) {
	if a.Config.Database.SessionStore != config.SessionStoreDynamoDB {
		return sessionStores{
			estimates: repository.NewEstimateGormRepository(a.DB),
			items:     repository.NewEstimateItemGormRepository(a.DB),
			questions: repository.NewQuestionGormRepository(a.DB),
		}, nil
	}

	tables := a.Config.DynamoDB
	ddb, err := database.ConnectDynamoDB(ctx, tables)
	if err != nil {
		return sessionStores{}, err
	}
	logger.Info(ctx, "using dynamodb session store", "estimates_table", tables.EstimatesTable)
	return sessionStores{
		estimates: repository.NewEstimateDynamoRepository(ddb, tables.EstimatesTable, tables.ItemsTable, tables.QuestionsTable),
		items:     repository.NewEstimateItemDynamoRepository(ddb, tables.ItemsTable, tables.EstimatesTable),
		questions: repository.NewQuestionDynamoRepository(ddb, tables.QuestionsTable, tables.EstimatesTable),
	}, nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
