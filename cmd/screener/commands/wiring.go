// ABOUTME: Shared dependency wiring for CLI commands
// ABOUTME: Opens storage and constructs providers according to what each command needs
package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hireloop/screener/internal/config"
	"github.com/hireloop/screener/internal/core"
	"github.com/hireloop/screener/internal/llm"
	"github.com/hireloop/screener/internal/logger"
	"github.com/hireloop/screener/internal/source"
	"github.com/hireloop/screener/internal/storage/sqlite"
)

// wireMode selects how much of the provider stack a command needs.
// Inspection commands must work without any API credentials.
type wireMode int

const (
	wireInspect    wireMode = iota // storage only
	wireRetrieve                   // storage + embedder
	wireSynthesize                 // storage + embedder + oracle
)

// screener bundles the wired dependencies behind a CLI command.
type screener struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *sqlite.DB
	index    *sqlite.Index
	pipeline *core.Pipeline
}

// Close releases the database and flushes buffered log entries.
func (s *screener) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.log != nil {
		_ = s.log.Sync()
	}
}

// openScreener loads configuration, opens the SQLite index, and builds the
// provider stack for the requested mode.
func openScreener(ctx context.Context, mode wireMode) (*screener, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := buildLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	index := sqlite.NewIndex(db)

	var embedder llm.Embedder
	if mode >= wireRetrieve {
		embedder, err = llm.NewEmbedder(cfg)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("building embedder: %w", err)
		}
	}

	var oracle llm.Oracle
	if mode >= wireSynthesize {
		oracle, err = buildOracle(ctx, cfg, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	pipeline := core.NewPipeline(cfg, source.NewTextExtractor(), embedder, index, oracle, log)

	return &screener{
		cfg:      cfg,
		log:      log,
		db:       db,
		index:    index,
		pipeline: pipeline,
	}, nil
}

// buildLogger maps the global verbosity flags onto the configured log level.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}
	return logger.New(level, cfg.LogFormat)
}

// buildOracle constructs the synthesis provider. When the provider cannot be
// reached and LLM_REQUIRED is unset, analysis falls back to extractive
// reports instead of failing.
func buildOracle(ctx context.Context, cfg *config.Config, log *zap.Logger) (llm.Oracle, error) {
	oracle, err := llm.NewOracle(ctx, cfg)
	if err != nil {
		if cfg.LLMRequired {
			return nil, fmt.Errorf("building LLM provider: %w", err)
		}
		log.Warn("LLM provider unavailable, reports will use extractive fallback",
			zap.String("provider", cfg.LLMProvider),
			zap.Error(err))
		return nil, nil
	}

	if p, ok := oracle.(interface{ Ping(context.Context) error }); ok {
		if err := p.Ping(ctx); err != nil {
			if cfg.LLMRequired {
				return nil, fmt.Errorf("LLM provider unreachable: %w", err)
			}
			log.Warn("LLM provider unreachable, reports will use extractive fallback",
				zap.String("provider", cfg.LLMProvider),
				zap.Error(err))
			return nil, nil
		}
	}

	return oracle, nil
}
