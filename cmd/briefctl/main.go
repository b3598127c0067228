// briefctl is the one-shot CLI for generating market intelligence briefs:
// event details in via flags or a chat-format message on stdin, a report out
// as JSON, Markdown, or CSV.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/marketbrief/marketbrief/internal/config"
	"github.com/marketbrief/marketbrief/internal/generator"
	"github.com/marketbrief/marketbrief/internal/intake"
	"github.com/marketbrief/marketbrief/internal/logging"
	"github.com/marketbrief/marketbrief/internal/models"
	"github.com/marketbrief/marketbrief/internal/render"
)

var version = "dev"

var (
	flagName        string
	flagTiming      string
	flagDescription string
	flagDrivers     []string
	flagStdin       bool
	flagEngine      string
	flagFormat      string
	flagOutput      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "briefctl",
	Short:         "Generate event-driven market intelligence briefs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("briefctl %s\n", version)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a brief from event details",
	Long: `Generate a market intelligence brief from an event description.

Event details come from flags, or from a chat-format message on stdin
(--stdin) using Event:/Timing:/Drivers: prefixed lines. The model-backed
engine is used when DEEPSEEK_API_KEY is set; otherwise the deterministic
template engine produces the brief.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagName, "name", "", "event headline")
	generateCmd.Flags().StringVar(&flagTiming, "timing", "", "expected timing")
	generateCmd.Flags().StringVar(&flagDescription, "description", "", "event narrative")
	generateCmd.Flags().StringArrayVar(&flagDrivers, "driver", nil, "key driver (repeatable)")
	generateCmd.Flags().BoolVar(&flagStdin, "stdin", false, "read a chat-format message from stdin")
	generateCmd.Flags().StringVar(&flagEngine, "engine", "model", "engine: model or deterministic")
	generateCmd.Flags().StringVar(&flagFormat, "format", "markdown", "output format: json, markdown, or csv")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "write to file instead of stdout")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// CLI runs keep stderr quiet unless something goes wrong.
	cfg.Logging.Format = "text"
	cfg.Logging.Level = slog.LevelWarn
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	input, err := resolveInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	briefGenerator := generator.New(cfg.DeepSeek, logger)

	var (
		report     models.Report
		provenance generator.Provenance
	)
	switch flagEngine {
	case "model":
		report, provenance = briefGenerator.Generate(context.Background(), input)
	case "deterministic":
		report, provenance = briefGenerator.Deterministic(input)
	default:
		return fmt.Errorf("unknown engine %q", flagEngine)
	}

	document, err := renderDocument(report, provenance)
	if err != nil {
		return err
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(document), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", provenance.Note)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), document)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", provenance.Note)
	return nil
}

func resolveInput(stdin io.Reader) (models.EventInput, error) {
	if flagStdin {
		message, err := io.ReadAll(stdin)
		if err != nil {
			return models.EventInput{}, fmt.Errorf("read stdin: %w", err)
		}
		return intake.ParseMessage(string(message)), nil
	}
	return models.EventInput{
		Name:           flagName,
		ExpectedTiming: flagTiming,
		Description:    flagDescription,
		KeyDrivers:     flagDrivers,
	}, nil
}

func renderDocument(report models.Report, provenance generator.Provenance) (string, error) {
	switch flagFormat {
	case "json":
		encoded, err := json.MarshalIndent(struct {
			Brief      models.Report        `json:"brief"`
			Provenance generator.Provenance `json:"provenance"`
		}{report, provenance}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(encoded) + "\n", nil
	case "markdown":
		return render.Markdown(report) + "\n", nil
	case "csv":
		return render.OpportunitiesCSV(report)
	default:
		return "", fmt.Errorf("unknown format %q (expected json, markdown, or csv)", flagFormat)
	}
}
