// Command punkt splits plain text into sentences using a pre-trained Punkt
// parameter bundle. It reads a file argument or stdin and writes the
// sentences (or spans) to stdout as text lines, a JSON array, or NDJSON.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kavan72/punkt/internal/config"
	"github.com/kavan72/punkt/internal/logging"
	"github.com/kavan72/punkt/internal/output"
	"github.com/kavan72/punkt/pkg/punkt"
)

var (
	flagConfig    string
	flagParams    string
	flagFormat    string
	flagSpans     bool
	flagNoRealign bool
	flagEndChars  string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "punkt [file]",
	Short: "Split text into sentences with a trained Punkt model",
	Long: `punkt decides, for each sentence-ending punctuation mark in a document,
whether it terminates a sentence or belongs to an abbreviation, ordinal,
initial, or ellipsis. Decisions are driven by a language-specific JSON
parameter bundle produced by a Punkt training run.

With no file argument, the document is read from stdin.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	rootCmd.Flags().StringVarP(&flagParams, "params", "p", "", "JSON parameter bundle")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "output format: text, json, ndjson")
	rootCmd.Flags().BoolVar(&flagSpans, "spans", false, "emit byte-offset spans instead of sentence text")
	rootCmd.Flags().BoolVar(&flagNoRealign, "no-realign", false, "disable boundary realignment")
	rootCmd.Flags().StringVar(&flagEndChars, "sent-end-chars", "", "override sentence-end characters (e.g. \".?!\")")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	// Flags override config-file and environment values.
	if cmd.Flags().Changed("params") {
		cfg.ParamsPath = flagParams
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flagFormat
	}
	if cmd.Flags().Changed("spans") {
		cfg.Spans = flagSpans
	}
	if cmd.Flags().Changed("no-realign") {
		cfg.NoRealign = flagNoRealign
	}
	if cmd.Flags().Changed("sent-end-chars") {
		cfg.SentEndChars = flagEndChars
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(cfg.Format != "text", logging.ParseLevel(cfg.LogLevel))

	t0 := time.Now()
	params, err := punkt.LoadParams(cfg.ParamsPath)
	if err != nil {
		return err
	}
	slog.Debug("parameter bundle loaded", "path", cfg.ParamsPath, "elapsed", time.Since(t0))

	var opts []punkt.Option
	if cfg.SentEndChars != "" {
		opts = append(opts, punkt.WithSentEndChars([]rune(cfg.SentEndChars)...))
	}
	splitter, err := punkt.New(params, opts...)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	out, err := output.New(cfg.Format, os.Stdout, cfg.Spans)
	if err != nil {
		return err
	}

	spans := splitter.SpanTokenize(text, !cfg.NoRealign)
	for i, sp := range spans {
		s := output.Sentence{Index: i, Start: sp.Start, End: sp.End}
		if !cfg.Spans {
			s.Text = text[sp.Start:sp.End]
		}
		if err := out.Write(s); err != nil {
			return err
		}
	}
	if err := out.Close(); err != nil {
		return err
	}
	slog.Info("document split", "sentences", len(spans), "bytes", len(text), "elapsed", time.Since(t0))
	return nil
}

// readInput returns the document from the file argument, or stdin when no
// argument was given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
