// Copyright 2025 Selekta
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

	"github.com/selekta/selekta"
	"github.com/selekta/selekta/ai"
	"github.com/selekta/selekta/catalog"
	"github.com/selekta/selekta/storage/badger"
	storecsv "github.com/selekta/selekta/store/csv"
	"github.com/selekta/selekta/store/sqlite"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "selekta",
		Usage: "Match Spanish recruiting queries against a candidate pool",
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
				Name:      "search",
				Usage:     "Run one query through the full matching pipeline",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite candidate database",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Directory with catalog JSON files (defaults to the embedded catalog)",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Path to BadgerDB vector cache directory",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "paraphrase-multilingual",
					},
					&cli.BoolFlag{
						Name:  "no-relevance-check",
						Usage: "Skip the job-query gate and interpret any utterance",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Print at most N results",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Load a candidate CSV file into the SQLite database",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite candidate database",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the candidate CSV file",
						Required: true,
					},
				},
			},
			{
				Name:   "warm",
				Usage:  "Precompute candidate embeddings into the vector cache",
				Action: warmCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the SQLite candidate database",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "cache",
						Usage:    "Path to BadgerDB vector cache directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
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
		return fmt.Errorf("invalid log level: %s", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func searchCommand(c *cli.Context) error {
	queryText := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if queryText == "" {
		return fmt.Errorf("a query is required")
	}

	ctx := context.Background()

	candidateStore, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open candidate database: %w", err)
	}
	defer candidateStore.Close()

	opts, err := matcherOptions(c)
	if err != nil {
		return err
	}

	matcher, err := selekta.NewMatcher(ctx, candidateStore, opts...)
	if err != nil {
		return fmt.Errorf("failed to build matcher: %w", err)
	}
	defer matcher.Close()

	results, err := matcher.Search(ctx, queryText)
	if err != nil {
		return err
	}

	if n := c.Int("top"); n > 0 && n < len(results) {
		results = results[:n]
	}

	fmt.Printf("Found %d candidates\n", len(results))
	for i, hit := range results {
		p := hit.Profile
		fmt.Printf("%d: %s - %s (%s, %d años)[%0.3f]\n",
			i+1, p.ID, p.Role, p.Location, p.YearsExperience, hit.Score)
	}
	return nil
}

func matcherOptions(c *cli.Context) ([]selekta.MatcherOption, error) {
	opts := []selekta.MatcherOption{
		selekta.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
	}

	if dir := c.String("catalog"); dir != "" {
		cat, err := catalog.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		opts = append(opts, selekta.WithCatalog(cat))
	}

	if cachePath := c.String("cache"); cachePath != "" {
		cache, err := badger.NewVectorCache(cachePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open vector cache: %w", err)
		}
		opts = append(opts, selekta.WithVectorCache(cache))
	}

	if c.Bool("no-relevance-check") {
		opts = append(opts, selekta.WithoutRelevanceCheck())
	}

	return opts, nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	source, err := storecsv.Open(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer source.Close()

	profiles, err := source.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}

	dest, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open candidate database: %w", err)
	}
	defer dest.Close()

	if err := dest.(*sqlite.Store).Upsert(ctx, profiles...); err != nil {
		return fmt.Errorf("failed to write candidates: %w", err)
	}

	fmt.Printf("Seeded %d candidates\n", len(profiles))
	return nil
}

func warmCommand(c *cli.Context) error {
	ctx := context.Background()

	candidateStore, err := sqlite.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open candidate database: %w", err)
	}
	defer candidateStore.Close()

	cache, err := badger.NewVectorCache(c.String("cache"))
	if err != nil {
		return fmt.Errorf("failed to open vector cache: %w", err)
	}

	matcher, err := selekta.NewMatcher(ctx, candidateStore,
		selekta.WithAIConfig(ai.NewConfig(
			ai.WithEmbeddingHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
		selekta.WithVectorCache(cache),
	)
	if err != nil {
		return fmt.Errorf("failed to build matcher: %w", err)
	}
	defer matcher.Close()

	if err := matcher.Warm(ctx); err != nil {
		return fmt.Errorf("failed to warm vector cache: %w", err)
	}

	fmt.Printf("Warmed vectors for %d candidates\n", len(matcher.Candidates()))
	return nil
}
