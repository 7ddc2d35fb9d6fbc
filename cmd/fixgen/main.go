package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmrzaf/fixgen/internal/app"
	"github.com/mmrzaf/fixgen/internal/config"
	"github.com/mmrzaf/fixgen/internal/domain"
	"github.com/mmrzaf/fixgen/internal/generate"
	"github.com/mmrzaf/fixgen/internal/infra/shapes"
	"github.com/mmrzaf/fixgen/internal/infra/sinks"
	"github.com/mmrzaf/fixgen/internal/logging"
	"github.com/mmrzaf/fixgen/internal/timeutil"
	"github.com/mmrzaf/fixgen/internal/validation"
)

var version = "0.1.0"

var (
	shapesDir string
	logLevel  string
	logFormat string
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "fixgen",
		Short: "Name-driven synthetic record generator",
		Long: `fixgen generates plausible-looking synthetic records for test
fixtures and seed data. Field values are chosen by matching field names
against a prioritized semantic pattern table, with type-driven defaults,
and generation is fully reproducible under a fixed seed.`,
	}

	rootCmd.PersistentFlags().StringVar(&shapesDir, "shapes-dir", cfg.ShapesDir, "Shapes directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text, json)")

	rootCmd.AddCommand(shapeCmd())
	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func shapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Manage record shapes",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := shapes.NewFileRepository(shapesDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				data, _ := json.MarshalIndent(list, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTABLE\tROWS\tFIELDS")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", s.Name, s.TargetTable(), s.Rows, len(s.Fields))
			}
			w.Flush()
			return nil
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show shape details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := shapes.NewFileRepository(shapesDir)
			s, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			data, _ := yaml.Marshal(s)
			fmt.Println(string(data))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <name|path>",
		Short: "Validate a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := shapes.NewFileRepository(shapesDir)
			s, err := loadShapeArg(repo, args[0])
			if err != nil {
				return err
			}
			if err := validation.ValidateShape(s); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}
			fmt.Printf("Shape '%s' is valid\n", s.Name)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}

func generateCmd(cfg *config.Config) *cobra.Command {
	var (
		shapeRef   string
		count      int
		seed       int64
		locale     string
		currency   string
		format     string
		outPath    string
		targetDSN  string
		table      string
		truncate   bool
		pastWindow string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate records for a shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(logLevel, logFormat)
			defer log.Sync()

			window, err := timeutil.ParseWindow(pastWindow)
			if err != nil {
				return fmt.Errorf("invalid --past-window: %w", err)
			}

			genCfg := domain.Config{
				Seed:           seed,
				Locale:         locale,
				CurrencySymbol: currency,
			}

			req := &app.RunRequest{
				ShapeRef:  shapeRef,
				Config:    genCfg,
				TargetDSN: targetDSN,
				Table:     table,
				Truncate:  truncate,
				Format:    format,
			}
			if cmd.Flags().Changed("count") {
				req.Count = &count
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			if targetDSN == "" {
				out := os.Stdout
				if outPath != "" {
					f, err := os.Create(outPath)
					if err != nil {
						return err
					}
					defer f.Close()
					out = f
				}
				req.Out = out
			}

			svc := app.NewService(
				shapes.NewFileRepository(shapesDir),
				sinks.DefaultRegistry(),
				generate.New(generate.WithPastWindow(window)),
				log,
			)

			summary, err := svc.Run(req)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Generated %d records for shape '%s' (seed %d, fingerprint %s)\n",
				summary.Rows, summary.Shape, summary.Seed, summary.Fingerprint[:12])
			return nil
		},
	}

	cmd.Flags().StringVarP(&shapeRef, "shape", "s", "", "Shape name or path (required)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of records (overrides the shape's rows)")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "Random seed")
	cmd.Flags().StringVar(&locale, "locale", cfg.Locale, "Locale recorded with the run (generated values are English-only)")
	cmd.Flags().StringVar(&currency, "currency", cfg.Currency, "Currency symbol for money values")
	cmd.Flags().StringVarP(&format, "format", "f", cfg.Format, "Output format (jsonl|csv|table)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&targetDSN, "target", "", "Database DSN to insert into instead of file output")
	cmd.Flags().StringVar(&table, "table", "", "Target table (overrides the shape's table)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Truncate the target table before inserting")
	cmd.Flags().StringVar(&pastWindow, "past-window", cfg.PastWindow, "How far back past dates reach (e.g. 90d, 2w, 36h)")
	cmd.MarkFlagRequired("shape")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fixgen %s\n", version)
		},
	}
}

func loadShapeArg(repo *shapes.FileRepository, ref string) (*domain.Shape, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		if len(ref) > len(ext) && ref[len(ref)-len(ext):] == ext {
			return repo.GetByPath(ref)
		}
	}
	return repo.Get(ref)
}
