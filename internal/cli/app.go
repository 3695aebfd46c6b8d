package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/clipdir/internal/config"
	"github.com/dmitrijs2005/clipdir/internal/history"
	"github.com/dmitrijs2005/clipdir/internal/logging"
)

// App carries the process streams and the state resolved before a
// subcommand runs.
type App struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg config.Config
	log logging.Logger

	// global flag values
	configPath  string
	storagePath string
	logLevel    string
	logFormat   string

	// subcommand flag values
	state             string
	byteLimit         int
	dedupeSearchLimit int
	previewLength     int
}

func NewApp(stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run executes the command line in args (without the program name) and
// returns the process exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(normalizeArgs(args))
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", root.Name(), err)
		return 1
	}
	return 0
}

// setup resolves configuration and the logger for cmd.
func (a *App) setup(cmd *cobra.Command) error {
	path := a.configPath
	if !cmd.Flags().Changed("config") {
		path = os.Getenv(config.EnvConfig)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(a.stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With("cmd", cmd.Name())
	return nil
}

// applyFlags overlays cfg with flags the user set explicitly.
func (a *App) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("storage-path") {
		cfg.StoragePath = a.storagePath
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if fs.Changed("byte-limit") {
		cfg.ByteLimit = a.byteLimit
	}
	if fs.Changed("dedupe-search-limit") {
		cfg.DedupeSearchLimit = a.dedupeSearchLimit
	}
	if fs.Changed("preview-length") {
		cfg.PreviewLength = a.previewLength
	}
}

func (a *App) service() *history.Service {
	return history.New(a.cfg, history.WithLogger(a.log))
}

func (a *App) sync() {
	if z, ok := a.log.(interface{ Sync() error }); ok {
		// stderr sync fails with EINVAL on terminals; nothing to report.
		_ = z.Sync()
	}
}

var errNoCommand = errors.New("a subcommand is required (store, list or decode)")
