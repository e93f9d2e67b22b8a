package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/doniyor117/AdvoAi/ai"
	"github.com/doniyor117/AdvoAi/ai/openai"
	"github.com/doniyor117/AdvoAi/rag"
	"github.com/doniyor117/AdvoAi/scout"
	"github.com/doniyor117/AdvoAi/seed"
	"github.com/doniyor117/AdvoAi/server"
	"github.com/doniyor117/AdvoAi/status"
	"github.com/doniyor117/AdvoAi/store/badger"
)

func main() {
	app := &cli.App{
		Name:  "advoai",
		Usage: "AI assistant for entrepreneur privileges in Uzbekistan legislation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8000",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "./advoai_db",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Expose raw error detail in responses",
					},
					&cli.StringFlag{
						Name:  "cors-origins",
						Usage: "Comma-separated list of allowed CORS origins",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of chunks retrieved per question",
						Value: 5,
					},
					&cli.DurationFlag{
						Name:  "search-delay",
						Usage: "Politeness delay between scout search requests",
						Value: 2 * time.Second,
					},
					&cli.DurationFlag{
						Name:  "judge-delay",
						Usage: "Politeness delay between relevance checks",
						Value: 500 * time.Millisecond,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum search results per keyword",
						Value: 10,
					},
				),
			},
			{
				Name:   "seed",
				Usage:  "Load the bundled sample decrees into the database",
				Action: seedCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory",
						Value:   "./advoai_db",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiFlags returns the flags shared by every command that talks to the AI
// services.
func aiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible host URL for both embedding and generation",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL (overrides ai-host)",
		},
		&cli.StringFlag{
			Name:  "generation-host",
			Usage: "Generation service host URL (overrides ai-host)",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "generation-model",
			Usage: "Generation model name",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "API key for the AI services",
			EnvVars: []string{"ADVOAI_API_KEY"},
		},
	}
}

func buildAIConfig(c *cli.Context) (*ai.Config, error) {
	var opts []ai.ConfigOption
	if host := c.String("ai-host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if host := c.String("embedding-host"); host != "" {
		opts = append(opts, ai.WithEmbeddingHost(host))
	}
	if host := c.String("generation-host"); host != "" {
		opts = append(opts, ai.WithGenerationHost(host))
	}
	opts = append(opts,
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGenerationModel(c.String("generation-model")),
		ai.WithAPIKey(c.String("api-key")),
	)

	config := ai.NewConfig(opts...)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	st, err := badger.NewStore(backend, provider.Embedder())
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	engine, err := rag.NewEngine(st, provider.Generator(), rag.WithTopK(c.Int("top-k")))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	pipeline, err := scout.NewPipeline(st, provider.RelevanceJudge(),
		scout.NewDuckDuckGo(), scout.NewHTTPScraper(),
		scout.WithSearchDelay(c.Duration("search-delay")),
		scout.WithJudgeDelay(c.Duration("judge-delay")),
		scout.WithMaxResults(c.Int("max-results")))
	if err != nil {
		return fmt.Errorf("failed to create scout pipeline: %w", err)
	}

	bus := status.NewBus()

	manager, err := scout.NewManager(pipeline, bus)
	if err != nil {
		return fmt.Errorf("failed to create scout manager: %w", err)
	}
	defer manager.Release()

	srv := server.New(server.Config{
		Addr:            c.String("addr"),
		Debug:           c.Bool("debug"),
		CORSOrigins:     server.ParseCORSOrigins(c.String("cors-origins")),
		EmbeddingModel:  c.String("embedding-model"),
		GenerationModel: c.String("generation-model"),
	}, engine, manager, bus, st)

	return srv.Run(ctx)
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig, err := buildAIConfig(c)
	if err != nil {
		return err
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	st, err := badger.NewStore(backend, embedder)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	report, err := seed.Seed(ctx, st, nil)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d documents (%d chunks)\n", report.Documents, report.Chunks)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
