// Package main provides the concierge CLI entrypoint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/pipeline"
	"github.com/voyago-ai/concierge-engine/internal/refresh"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

var (
	cfgFile    string
	outputJSON bool
	noColor    bool

	cfg    *config.Config
	logger *observability.Logger
	ui     *UI
)

var rootCmd = &cobra.Command{
	Use:   "concierge-cli",
	Short: "Concierge CLI for catalog seeding, fact refresh, and test queries",
	Long: `Concierge CLI provides commands for administering the concierge engine.

Use this tool to:
- Seed the tour catalog into the document store
- Refresh the company fact collection from the curated dataset
- Send a test message through the full pipeline`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := "console"
		if outputJSON {
			logFormat = "json"
		}
		logger = observability.NewLogger(observability.LogConfig{
			Level:       cfg.Observability.LogLevel,
			Format:      logFormat,
			ServiceName: "concierge-cli",
		})
		ui = NewUI(outputJSON, noColor)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newAskCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect opens the document store for the duration of one command.
func connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	client, err := storage.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, nil, fmt.Errorf("connect storage: %w", err)
	}
	return client, client.Database(cfg.Mongo.Database), nil
}

// newSeedCmd creates the seed subcommand.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the tour catalog when it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			client, db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer storage.Disconnect(ctx, client)

			inserted, err := storage.EnsureSeedTours(ctx, storage.NewTourRepository(db))
			if err != nil {
				return fmt.Errorf("seed tours: %w", err)
			}

			if inserted == 0 {
				ui.Info("Tour catalog already populated, nothing to do")
			} else {
				ui.Success("Seeded %d tours", inserted)
			}
			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]int{"inserted": inserted})
			}
			return nil
		},
	}
}

// newRefreshCmd creates the refresh subcommand.
func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Replace the fact collection with the curated dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			client, db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer storage.Disconnect(ctx, client)

			refresher := refresh.NewRefresher(
				storage.NewFactRepository(db),
				company.DefaultProfile(),
				cfg.Refresh,
				logger,
			)
			if err := refresher.RunOnce(ctx); err != nil {
				return fmt.Errorf("refresh facts: %w", err)
			}

			ui.Success("Fact collection refreshed")
			return nil
		},
	}
}

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send a test message through the full pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			client, db, err := connect(ctx)
			if err != nil {
				return err
			}
			defer storage.Disconnect(ctx, client)

			completer, err := llm.NewClient(cfg.Completion)
			if err != nil {
				return fmt.Errorf("completion client: %w", err)
			}

			service := pipeline.NewService(
				pipeline.NewClassifier(completer, cfg.Completion, logger),
				pipeline.NewRetriever(
					storage.NewTourRepository(db),
					storage.NewFactRepository(db),
					cfg.Retrieval,
					logger,
				),
				completer,
				storage.NewChatLogRepository(db),
				nil,
				company.DefaultProfile(),
				cfg.Completion,
				cfg.Retrieval,
				logger,
			)

			reply, err := service.Ask(ctx, pipeline.Request{
				Message:   args[0],
				SessionID: sessionID,
			})
			if err != nil {
				ui.Warn("Pipeline degraded: %v", err)
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(reply)
			}

			ui.Answer(reply.Answer)
			ui.Info("Category: %s", reply.Category)
			for _, btn := range reply.Buttons {
				ui.Info("Action: %s (%s)", btn.Text, btn.Action)
			}
			for _, tour := range reply.Tours {
				ui.Info("Tour: %s (%s)", tour.Name, tour.Destination)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "cli-session", "session identifier for the exchange")
	return cmd
}
