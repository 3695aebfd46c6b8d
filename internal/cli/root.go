package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/clipdir/internal/config"
	"github.com/dmitrijs2005/clipdir/internal/logging"
)

// shortCommands maps the flag-style spellings of the subcommands.
var shortCommands = map[string]string{
	"-s": "store", "--store": "store",
	"-l": "list", "--list": "list",
	"-d": "decode", "--decode": "decode",
}

// normalizeArgs rewrites the first flag-style subcommand ("-s", "--list",
// ...) into its command name so that "clipdir -s" and "clipdir store" are
// the same.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i, arg := range out {
		if name, ok := shortCommands[arg]; ok {
			out[i] = name
			break
		}
	}
	return out
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clipdir",
		Short: "Clipboard history stored as one file per entry",
		Long: `clipdir keeps clipboard history in a plain directory. Each entry is one
file named after its creation time in microseconds and its content type.

Configuration is read from defaults, an optional JSON/YAML file, CLIPDIR_*
environment variables and flags, in increasing order of precedence.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errNoCommand
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a JSON or YAML config file (env "+config.EnvConfig+")")
	pf.StringVar(&a.storagePath, "storage-path", "", "clipboard history directory (env "+config.EnvStoragePath+")")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	pf.StringVar(&a.logFormat, "log-format", logging.FormatText, "log format: text or json (env "+config.EnvLogFormat+")")

	root.AddCommand(a.storeCmd(), a.listCmd(), a.decodeCmd())
	return root
}
