package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mbti/internal/config"
	"github.com/abhisek/mbti/internal/logging"
	"github.com/abhisek/mbti/internal/questions"
)

// tuiAnnotation marks commands that take over the terminal. Their logs go to
// the log file instead of stderr.
const tuiAnnotation = "tui"

var (
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()

	verbose  bool
	noSplash bool
)

var rootCmd = &cobra.Command{
	Use:   "mbti",
	Short: "Personality type quiz",
	Long: `mbti: a terminal personality quiz.

Answer agree/disagree questions on four dimensions (E/I, S/N, T/F, J/P),
get a four-letter type code, a profile and an 8-axis radar chart.

Run without arguments to open the interactive app.`,
	Annotations:       map[string]string{tuiAnnotation: "true"},
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("theme", "", "Colour palette: aurora, sunset, mono, light (overrides MBTI_THEME)")
	pf.String("log-file", "", "Log file for the interactive app (overrides MBTI_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides MBTI_LOG_LEVEL)")
	pf.String("catalog", "", "YAML question catalog replacing the bundled one (overrides MBTI_CATALOG)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&noSplash, "no-splash", false, "Skip the opening animation")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves config from .env, environment and flags, then builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	flags := map[string]*string{
		"theme":     &c.Theme,
		"log-file":  &c.LogFile,
		"log-level": &c.LogLevel,
		"catalog":   &c.Catalog,
	}
	for name, dst := range flags {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	opts := logging.Options{Level: cfg.LogLevel, Verbose: verbose}
	if isTUI(cmd) {
		opts.File = cfg.LogFile
		opts.Discard = cfg.LogFile == ""
	} else if !verbose {
		// Headless output is for humans and pipes; only surface problems.
		opts.Level = "warn"
	}
	l, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = l
	return nil
}

func isTUI(cmd *cobra.Command) bool {
	return cmd.Annotations[tuiAnnotation] == "true"
}

// loadCatalog returns the configured catalog, or the bundled one.
func loadCatalog() (*questions.Catalog, error) {
	if cfg.Catalog == "" {
		return questions.Default(), nil
	}
	c, err := questions.LoadFile(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded catalog", zap.String("path", cfg.Catalog))
	return c, nil
}
