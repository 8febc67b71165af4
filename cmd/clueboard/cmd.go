package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/five82/clueboard/internal/app"
	"github.com/five82/clueboard/internal/config"
	"github.com/five82/clueboard/internal/logtail"
)

type runFunc func(context.Context, app.Options) error

// flagValues holds raw flag values. Only flags that were set, on the
// command line or through CLUEBOARD_* variables, override the config file.
type flagValues struct {
	configPath  string
	prefsPath   string
	apiBase     string
	categories  int
	clues       int
	pool        int
	timeout     time.Duration
	loadTimeout time.Duration
	logFile     string
	listen      string
	verbose     bool
	lines       int
	level       string
}

func newRootCmd(runTUI, runServe runFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CLUEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	vals := &flagValues{}
	defaults := config.Default()

	root := &cobra.Command{
		Use:     "clueboard",
		Short:   "A trivia board for the terminal, backed by a public clue service.",
		Args:    cobra.NoArgs,
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := vals.options(cmd.Flags())
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), opts)
		},
	}

	pfs := root.PersistentFlags()
	pfs.SetNormalizeFunc(normalizeFlagName)
	pfs.StringVarP(&vals.configPath, "config", "c", "", "config file path (default "+config.DefaultPath+") (env: CLUEBOARD_CONFIG)")
	pfs.StringVar(&vals.prefsPath, "prefs", "", "preferences file path (env: CLUEBOARD_PREFS)")
	pfs.StringVar(&vals.apiBase, "api-base", defaults.APIBase, "trivia service base URL (env: CLUEBOARD_API_BASE)")
	pfs.IntVar(&vals.categories, "categories", defaults.CategoryCount, "categories per board (env: CLUEBOARD_CATEGORIES)")
	pfs.IntVar(&vals.clues, "clues", defaults.CluesPerCategory, "clues per category (env: CLUEBOARD_CLUES)")
	pfs.IntVar(&vals.pool, "pool", defaults.PoolSize, "categories to sample from (env: CLUEBOARD_POOL)")
	pfs.DurationVar(&vals.timeout, "timeout", defaults.RequestTimeout, "timeout for each trivia request (env: CLUEBOARD_TIMEOUT)")
	pfs.DurationVar(&vals.loadTimeout, "load-timeout", defaults.LoadTimeout, "timeout for building a whole board (env: CLUEBOARD_LOAD_TIMEOUT)")
	pfs.StringVar(&vals.logFile, "log-file", defaults.LogFile, "log file for the terminal UI (env: CLUEBOARD_LOG_FILE)")
	pfs.BoolVarP(&vals.verbose, "verbose", "v", false, "log debug records (env: CLUEBOARD_VERBOSE)")
	bindEnv(v, pfs)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board to web browsers; each tab plays its own game.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := vals.options(cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), opts)
		},
	}

	sfs := serve.Flags()
	sfs.SetNormalizeFunc(normalizeFlagName)
	sfs.StringVarP(&vals.listen, "listen", "l", defaults.Listen, "address to listen on (env: CLUEBOARD_LISTEN)")
	bindEnv(v, sfs)

	logs := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the terminal UI log file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return vals.printLogs(cmd)
		},
	}

	lfs := logs.Flags()
	lfs.IntVarP(&vals.lines, "lines", "n", 50, "number of lines to show (0 for all)")
	lfs.StringVar(&vals.level, "level", "info", "minimum level to show: debug, info, warn, error")

	root.AddCommand(serve, logs)

	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.SetVersionTemplate("clueboard v{{.Version}}\n")

	root.SilenceErrors = true
	root.SilenceUsage = true

	return root
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// bindEnv copies CLUEBOARD_* variables into flags the command line left
// unset, marking them changed so they override the config file.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

// options loads the config file and layers set flags on top.
func (f *flagValues) options(fs *pflag.FlagSet) (app.Options, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return app.Options{}, err
	}

	if fs.Changed("api-base") {
		cfg.APIBase = f.apiBase
	}
	if fs.Changed("categories") {
		cfg.CategoryCount = f.categories
	}
	if fs.Changed("clues") {
		cfg.CluesPerCategory = f.clues
	}
	if fs.Changed("pool") {
		cfg.PoolSize = f.pool
	}
	if fs.Changed("timeout") {
		cfg.RequestTimeout = f.timeout
	}
	if fs.Changed("load-timeout") {
		cfg.LoadTimeout = f.loadTimeout
	}
	if fs.Changed("log-file") {
		path, err := config.ExpandPath(f.logFile)
		if err != nil {
			return app.Options{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	if fs.Lookup("listen") != nil && fs.Changed("listen") {
		cfg.Listen = f.listen
	}

	if err := cfg.Validate(); err != nil {
		return app.Options{}, err
	}

	return app.Options{
		Config:    cfg,
		PrefsPath: f.prefsPath,
		Verbose:   f.verbose,
		Version:   releaseVersion,
	}, nil
}

// printLogs writes the formatted tail of the configured log file.
func (f *flagValues) printLogs(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.level)); err != nil {
		return fmt.Errorf("level: %w", err)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	path := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		if path, err = config.ExpandPath(f.logFile); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
	}

	lines, err := logtail.Read(path, f.lines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	formatted := logtail.FormatLines(lines, level)
	if len(formatted) == 0 {
		fmt.Fprintf(out, "no log records in %s\n", path)
		return nil
	}
	for _, line := range formatted {
		fmt.Fprintln(out, line)
	}
	return nil
}
