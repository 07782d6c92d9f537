package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/config"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/readability"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/source"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dbPath     string

	// run flags
	seed         uint64
	outputFormat string
	producerName string

	// history flags
	historyLimit int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "simplify",
	Short: "Rewrite dense text into five easy-to-read formats",
	Long: `simplify turns dense or semi-structured text into a grade-5 explanation,
a bullet summary, a chat message, a voice script and a Hinglish version.

The pipeline is deterministic for a fixed --seed and needs no network access.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Simplify a file (or stdin) and print the outputs",
	Long: `Reads .txt, .md, .html, .pdf or .docx input, runs the selected producer
and prints the outputs. The run is recorded when --db is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimplify,
}

var gradeCmd = &cobra.Command{
	Use:   "grade [file]",
	Short: "Report the reading grade of a file (or stdin) before and after simplification",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGrade,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs from the --db database",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite run history (or set SIMPLIFY_DB env)")

	runCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for phrase selection (random when unset)")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "txt", "Output format: json, txt, md or html")
	runCmd.Flags().StringVarP(&producerName, "producer", "p", config.DefaultProducer, "Producer: pipeline, canned or llm")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", store.DefaultListLimit, "Number of runs to show")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadComponents applies --config and --db and builds the components.
func loadComponents(ctx context.Context) (*config.Components, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.Store.Path = dbPath
	}
	return (&config.Loader{Config: cfg, Logger: logger}).Load(ctx)
}

// readInput extracts prose from path, or reads stdin when path is empty.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		return (&source.TextExtractor{}).Extract(stdin)
	}
	extractor, err := source.ForFile(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return extractor.Extract(f)
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func pipelineResult(engine *simplify.Engine, text string, seeded bool) simplify.Result {
	if seeded {
		return engine.SimplifySeeded(text, seed)
	}
	return engine.Simplify(text)
}

func gradeReport(w io.Writer, input string, result simplify.Result) {
	fmt.Fprintf(w, "Input grade:       %5.1f (avg %.1f words/sentence)\n",
		readability.Grade(input), readability.AverageSentenceLength(input))
	fmt.Fprintf(w, "Simplified grade:  %5.1f (avg %.1f words/sentence)\n",
		result.Grade, readability.AverageSentenceLength(result.Outputs.Grade5Explanation))
	if result.FellBack {
		fmt.Fprintf(w, "Fallback used:     %d violation(s)\n", len(result.Violations))
	}
}
