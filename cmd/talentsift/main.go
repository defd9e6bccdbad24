// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/talentsift"
	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/evaluation"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "talentsift",
		Usage: "Assessment recommendation engine over a semantic catalog index",
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
				Name:   "index",
				Usage:  "Rebuild the vector index from the catalog",
				Action: indexCommand,
				Flags:  engineFlags(),
			},
			{
				Name:      "recommend",
				Usage:     "Recommend assessments for a query",
				ArgsUsage: "<query>",
				Action:    recommendCommand,
				Flags: append(engineFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				),
			},
			{
				Name:   "evaluate",
				Usage:  "Score the recommender against a labeled query set",
				Action: evaluateCommand,
				Flags: append(engineFlags(),
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "Path to labeled queries JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Evaluation cutoff",
						Value:   10,
					},
				),
			},
			{
				Name:   "health",
				Usage:  "Report engine readiness",
				Action: healthCommand,
				Flags:  engineFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"c"},
			Usage:    "Path to assessment catalog JSON file",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "./talentsift_db",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func openEngine(ctx context.Context, c *cli.Context) (*talentsift.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := talentsift.NewEngine(ctx, c.String("catalog"), c.String("db"),
		talentsift.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to start engine: %w", err)
	}
	return engine, nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Rebuild(ctx); err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	status := engine.Health(ctx)
	fmt.Fprintf(os.Stderr, "Indexed %d documents from %d catalog entries\n",
		status.IndexedDocuments, status.CatalogSize)
	return nil
}

func recommendCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	engine, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	results := engine.Recommend(ctx, query, c.Int("top-k"))
	if len(results) == 0 {
		status := engine.Health(ctx)
		if status.LastError != nil {
			return fmt.Errorf("recommendation degraded: %w", status.LastError)
		}
		fmt.Println("No matching assessments found.")
		return nil
	}

	for i, record := range results {
		fmt.Printf("%2d. %s\n", i+1, record.Name)
		fmt.Printf("    %s\n", record.URL)
		fmt.Printf("    type=%s duration=%q remote=%s adaptive=%s\n",
			record.Category, record.Duration,
			record.RemoteSupport, record.AdaptiveSupport)
	}
	return nil
}

func evaluateCommand(c *cli.Context) error {
	ctx := context.Background()

	queries, err := evaluation.LoadQueries(c.String("queries"))
	if err != nil {
		return err
	}

	engine, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	k := c.Int("top-k")
	report := evaluation.Evaluate(ctx, engine.Recommender(), engine.Catalog(), queries, k, slog.Default())

	for _, qr := range report.Queries {
		fmt.Printf("P@%d=%.3f R@%d=%.3f AP=%.3f  %s\n",
			k, qr.Precision, k, qr.Recall, qr.AP, qr.Query)
	}
	fmt.Printf("MAP over %d queries: %.3f\n", len(report.Queries), report.MAP)
	return nil
}

func healthCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	status := engine.Health(ctx)
	fmt.Printf("catalog entries:   %d\n", status.CatalogSize)
	fmt.Printf("indexed documents: %d\n", status.IndexedDocuments)
	fmt.Printf("ready:             %t\n", status.Ready)
	if status.LastError != nil {
		fmt.Printf("last error:        %v\n", status.LastError)
	}
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
