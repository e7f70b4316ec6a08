package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mtgban/go-mtgscript/cardscript"
	"github.com/mtgban/go-mtgscript/mtgjson"
	"github.com/mtgban/go-mtgscript/rewrite"
)

var Commit = func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return ""
}()

var (
	verbose    bool
	configPath string

	logger = zap.NewNop()
	policy = cardscript.DefaultPolicy()
)

var rootCmd = &cobra.Command{
	Use:   "mtgscript",
	Short: "Generate card scripts from MTGJSON set data",
	Long: `mtgscript reads an MTGJSON AllSets feed and writes one key=value script
per card, deriving ability, effect, oracle and timing from the rules text.

The feed, output and missing list locations may be local paths or URLs
(http, gs and b2 are supported) and default to the MTGJSON_ALLSETS_PATH,
MTGSCRIPT_OUTPUT_PATH and MTGSCRIPT_MISSING_PATH environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cmd == versionCmd {
			return nil
		}
		policy, err = LoadConfig(configPath)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var convertOpts struct {
	allSets    string
	outputPath string
	missing    string
	format     string
	strict     bool
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Write the scripts of every eligible card",
	Long: `Convert loads the feed, skips excluded sets and ineligible printings, and
writes scripts/<card>.txt under the output path, keeping the first printing
of every card name.

When a missing list is given, only the cards it names are written, and the
names with no card are reported in MissingCardOrphans.txt. Cards without an
image are reported in ledger.ndjson.

With --format ndjson (optionally .xz or .bz2) all cards are written to a
single cards.ndjson file instead of one script each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.Context())
	},
}

var showCmd = &cobra.Command{
	Use:   "show [card name]",
	Short: "Print the script of a single card",
	Long: `Show prints the script convert would write for the named card. Cards that
convert skips, such as printings of excluded sets, are looked up in the whole
feed and shown anyway.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List keyword rules and timing tags in the order they are tried",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printRules(cmd.OutOrStdout(), policy.PlaceholderToken)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mtgscript version", Commit)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the policy file (default $XDG_CONFIG_HOME/mtgscript/config.toml)")
	rootCmd.PersistentFlags().StringVar(&convertOpts.allSets, "allsets", envOr("MTGJSON_ALLSETS_PATH", mtgjson.DefaultAllSetsURL), "Path or URL of the AllSets feed")

	convertCmd.Flags().StringVar(&convertOpts.outputPath, "output-path", os.Getenv("MTGSCRIPT_OUTPUT_PATH"), "Path where to write results")
	convertCmd.Flags().StringVar(&convertOpts.missing, "missing", os.Getenv("MTGSCRIPT_MISSING_PATH"), "Path to the list of card names to write")
	convertCmd.Flags().StringVar(&convertOpts.format, "format", "script", "Output format (script/ndjson/ndjson.xz/ndjson.bz2)")
	convertCmd.Flags().BoolVar(&convertOpts.strict, "strict", false, "Abort on the first malformed record")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func validFormat(format string) bool {
	switch format {
	case "script", "ndjson", "ndjson.xz", "ndjson.bz2":
		return true
	}
	return false
}

// Load the feed and build the batch of eligible cards. The whole feed is
// returned alongside, excluded sets included.
func buildBatch(ctx context.Context, strict bool) (*cardscript.Batch, mtgjson.Feed, error) {
	sugar := logger.Sugar()

	err := initializeBucket(ctx, convertOpts.allSets)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	feed, err := loadFeed(ctx, convertOpts.allSets)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load %s: %w", convertOpts.allSets, err)
	}
	filtered := feed.Filter(policy.ExcludedSets)
	sugar.Infof("loaded %d sets with %d printings (%d sets excluded) in %s",
		len(filtered), filtered.Size(), len(feed)-len(filtered), time.Since(now))

	batch := cardscript.NewBatch(cardscript.NewNormalizer(policy))
	batch.LogCallback = sugar.Debugf
	batch.Strict = strict

	now = time.Now()
	err = batch.AddFeed(filtered)
	if err != nil {
		return nil, nil, err
	}
	sugar.Infof("normalized %d cards in %s (%d ineligible, %d duplicates, %d malformed)",
		batch.Len(), time.Since(now), batch.Skipped, batch.Duplicates, batch.Malformed)

	return batch, feed, nil
}

func runConvert(ctx context.Context) error {
	sugar := logger.Sugar()
	start := time.Now()

	if !validFormat(convertOpts.format) {
		return errors.New("invalid --format option, see -h for supported values")
	}
	outputPath := convertOpts.outputPath
	if outputPath == "" {
		return errors.New("missing output-path argument")
	}

	u, err := url.Parse(outputPath)
	if err != nil {
		return fmt.Errorf("cannot parse output-path: %w", err)
	}
	if u.Scheme == "" {
		err = os.MkdirAll(outputPath, 0755)
		if err != nil {
			return err
		}
	}
	err = initializeBucket(ctx, outputPath)
	if err != nil {
		return fmt.Errorf("cannot initialize buckets: %w", err)
	}

	batch, _, err := buildBatch(ctx, convertOpts.strict)
	if err != nil {
		return err
	}

	cards := batch.Cards()
	var orphans []string
	if convertOpts.missing != "" {
		err = initializeBucket(ctx, convertOpts.missing)
		if err != nil {
			return err
		}
		names, err := loadMissingList(ctx, convertOpts.missing)
		if err != nil {
			return fmt.Errorf("cannot load missing list: %w", err)
		}
		cards, orphans = cardscript.CrossReference(batch, names)
		sugar.Infof("%d of %d missing cards found", len(cards), len(names))

		err = dumpOrphans(ctx, orphans, outputPath)
		if err != nil {
			return err
		}
	}

	sugar.Infof("writing results to %s", outputPath)
	if convertOpts.format == "script" {
		err = dumpScripts(ctx, cards, outputPath)
	} else {
		err = dumpCards(ctx, cards, outputPath, convertOpts.format)
	}
	if err != nil {
		return err
	}

	err = dumpLedger(ctx, batch.Ledger(), outputPath)
	if err != nil {
		return err
	}

	printSummary(len(cards), batch.Ledger().Len(), len(orphans), time.Since(start))
	return nil
}

func printSummary(written, ledger, orphans int, elapsed time.Duration) {
	color.New(color.FgGreen, color.Bold).Fprintf(os.Stderr, "%d cards written", written)
	fmt.Fprintf(os.Stderr, " in %s\n", elapsed.Round(time.Millisecond))
	if ledger > 0 {
		color.New(color.FgRed).Fprintf(os.Stderr, "%d cards without image\n", ledger)
	}
	if orphans > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "%d missing cards not found\n", orphans)
	}
}

func runShow(ctx context.Context, w io.Writer, name string) error {
	batch, feed, err := buildBatch(ctx, false)
	if err != nil {
		return err
	}

	var diag *cardscript.Diagnostic
	card, found := batch.Lookup(name)
	if found {
		entry, found := batch.Ledger().Get(card.Name)
		if found {
			diag = &entry
		}
	} else {
		raw, err := feed.Find(name)
		if err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		logger.Sugar().Infof("%s from %s is not converted, showing it anyway", raw.Name, raw.SetCode)

		card, diag, err = cardscript.NewNormalizer(policy).Normalize(raw, raw.SetCode)
		if err != nil {
			return err
		}
	}

	err = cardscript.WriteScript(w, card)
	if err != nil {
		return err
	}
	if diag != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, diag.Message)
	}
	return nil
}

func printRules(w io.Writer, placeholder string) {
	title := color.New(color.Bold)

	title.Fprintln(w, "Keywords")
	for i, name := range rewrite.NewCatalog(placeholder).Rules() {
		fmt.Fprintf(w, "%3d %s\n", i+1, name)
	}
	title.Fprintln(w, "Timing")
	for i, tag := range cardscript.TimingTags() {
		fmt.Fprintf(w, "%3d %s\n", i+1, tag)
	}
	fmt.Fprintf(w, "    %s otherwise\n", cardscript.DefaultTiming)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
