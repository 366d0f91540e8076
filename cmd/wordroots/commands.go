package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordroots/internal/app"
	"github.com/heartmarshall/wordroots/internal/config"
	"github.com/heartmarshall/wordroots/internal/corpus"
	"github.com/heartmarshall/wordroots/internal/metrics"
	"github.com/heartmarshall/wordroots/internal/service/lookup"
	"github.com/heartmarshall/wordroots/internal/transport/cli"
)

// errNoResult marks a lookup miss. The miss is already printed, so main
// only sets the exit code.
var errNoResult = errors.New("no result")

type options struct {
	corpusPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wordroots",
		Short: "Query a vocabulary corpus by anchor word or by root",
		Long: `wordroots indexes a plain-text vocabulary corpus and answers two queries:
the full entry of an anchor word, and every word built on a given root.

Without a subcommand it starts the interactive loop.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.corpusPath, "corpus", "c", "",
		"path to the corpus file (overrides corpus.path / CORPUS_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides log.level / LOG_LEVEL)")

	root.AddCommand(
		newREPLCmd(opts),
		newLookupCmd(opts),
		newStatsCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)

	return root
}

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive lookup loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func newLookupCmd(opts *options) *cobra.Command {
	lookup := &cobra.Command{
		Use:   "lookup",
		Short: "Run a single anchor or root query",
	}

	lookup.AddCommand(
		&cobra.Command{
			Use:   "anchor <word>",
			Short: "Print the entry stored under an anchor word",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				env, err := setup(opts, nil)
				if err != nil {
					return err
				}
				session := cli.NewSession(env.service(), cmd.InOrStdin(), cmd.OutOrStdout())
				if !session.LookupAnchor(cmd.Context(), args[0]) {
					return errNoResult
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "root <root>",
			Short: "Print every word associated with a root",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				env, err := setup(opts, nil)
				if err != nil {
					return err
				}
				session := cli.NewSession(env.service(), cmd.InOrStdin(), cmd.OutOrStdout())
				if !session.LookupRoot(cmd.Context(), args[0]) {
					return errNoResult
				}
				return nil
			},
		},
	)

	return lookup
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print corpus load statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(opts, nil)
			if err != nil {
				return err
			}
			cli.NewPrinter(cmd.OutOrStdout()).Stats(env.index.Info())
			return nil
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only lookup API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := metrics.New()
			env, err := setup(opts, m)
			if err != nil {
				return err
			}

			env.log.Info("starting wordroots server",
				slog.String("version", app.BuildVersion()),
				slog.String("addr", env.cfg.Server.Addr()),
				slog.Bool("metrics", env.cfg.Metrics.Enabled),
			)

			return app.NewServer(env.log, *env.cfg, env.index, m).Run(cmd.Context())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	env, err := setup(opts, nil)
	if err != nil {
		return err
	}
	return cli.NewSession(env.service(), cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}

// environment is what every corpus command needs once flags are parsed.
type environment struct {
	cfg     *config.Config
	log     *slog.Logger
	index   *corpus.Index
	metrics *metrics.Metrics
}

// setup loads configuration, applies flag overrides, validates, and loads
// the corpus. m may be nil.
func setup(opts *options, m *metrics.Metrics) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.corpusPath != "" {
		cfg.Corpus.Path = opts.corpusPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	idx, err := app.LoadCorpusFile(logger, cfg.Corpus.Path, m)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, log: logger, index: idx, metrics: m}, nil
}

func (e *environment) service() *lookup.Service {
	return app.NewLookupService(e.log, e.index, e.metrics)
}
