// Command reviewctl manages a reviewhub database from the shell: CSV
// templates and imports, AI drafts and seeding.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/loganlanou/reviewhub/internal/ai"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/importer"
	"github.com/loganlanou/reviewhub/service"
	"github.com/loganlanou/reviewhub/storage"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "reviewctl",
	Short:         "Manage reviewhub content from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})))
	},
}

var templateCmd = &cobra.Command{
	Use:   "template <kind>",
	Short: "Print the CSV import template for a record kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := importer.ParseKind(args[0])
		if err != nil {
			return err
		}
		text, err := importer.TemplateCSV(kind)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <kind> <file|url>",
	Short: "Parse a CSV file or published sheet and print its records as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := importer.ParseKind(args[0]); err != nil {
			return err
		}
		table, err := readTable(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), table.Records)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <kind> <file|url>",
	Short: "Append products or replace a section's items from CSV",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := importer.ParseKind(args[0])
		if err != nil {
			return err
		}
		table, err := readTable(cmd.Context(), args[1])
		if err != nil {
			return err
		}
		batch := ulid.Make().String()
		ctx := cms.WithImportBatch(cmd.Context(), batch)
		return withService(func(svc *cms.Service) error {
			n, err := applyRecords(ctx, svc, kind, table.Records)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d %s records (batch %s)\n", n, kind, batch)
			return nil
		})
	},
}

var (
	genTopic string
	genCount int
)

var generateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Draft records with the AI provider configured in site settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := importer.ParseKind(args[0])
		if err != nil {
			return err
		}
		if strings.TrimSpace(genTopic) == "" {
			return fmt.Errorf("--topic is required")
		}
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		gen := ai.NewGenerator(ai.Config{
			Timeout:       config.AI.Timeout,
			OpenAIBaseURL: config.AI.OpenAIBaseURL,
			GeminiBaseURL: config.AI.GeminiBaseURL,
			OllamaURL:     config.AI.OllamaURL,
		})
		return withService(func(svc *cms.Service) error {
			settings, err := svc.AISettings(cmd.Context())
			if err != nil {
				return err
			}
			records, err := gen.Generate(cmd.Context(), settings, kind, genTopic, genCount)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		})
	},
}

var (
	seedFile string
	seedFake int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load content from a YAML file or generate fake products",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (seedFile == "") == (seedFake == 0) {
			return fmt.Errorf("exactly one of --file or --fake is required")
		}
		return withService(func(svc *cms.Service) error {
			if seedFake > 0 {
				created, err := svc.ImportProducts(cmd.Context(), fakeProducts(seedFake))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d fake products\n", len(created))
				return nil
			}

			f, err := os.Open(seedFile)
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := readSeed(f)
			if err != nil {
				return err
			}
			summary, err := applySeed(cmd.Context(), svc, doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (defaults to DB_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	generateCmd.Flags().StringVar(&genTopic, "topic", "", "what the records should be about")
	generateCmd.Flags().IntVar(&genCount, "count", 5, "number of records to request")

	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML seed document")
	seedCmd.Flags().IntVar(&seedFake, "fake", 0, "number of fake products to create")

	rootCmd.AddCommand(templateCmd, previewCmd, importCmd, generateCmd, seedCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// withService opens the configured database for the duration of fn.
func withService(fn func(svc *cms.Service) error) error {
	path := dbPath
	if path == "" {
		config, err := service.LoadConfig()
		if err != nil {
			return err
		}
		path = config.DBPath
	}

	store, err := storage.New(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(cms.New(store))
}

// readTable parses a local CSV file or fetches a published sheet.
func readTable(ctx context.Context, src string) (*importer.Table, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return importer.NewFetcher(0).FetchCSV(ctx, src)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return importer.ParseCSV(f)
}

// applyRecords confirms records the same way the admin import page does.
func applyRecords(ctx context.Context, svc *cms.Service, kind importer.Kind, records []importer.Record) (int, error) {
	if kind.Appends() {
		created, err := svc.ImportProducts(ctx, importer.ProductsFromRecords(records))
		return len(created), err
	}
	id, err := importer.ModuleFor(kind)
	if err != nil {
		return 0, err
	}
	items, err := importer.ModuleItems(kind, records)
	if err != nil {
		return 0, err
	}
	if _, err := svc.ReplaceModuleItems(ctx, string(id), items); err != nil {
		return 0, err
	}
	return len(records), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
