package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrijs2005/clipdir/internal/config"
)

// ClipboardState is the value wl-paste --watch exports in CLIPBOARD_STATE.
type ClipboardState string

const (
	StateNil       ClipboardState = "nil"
	StateSensitive ClipboardState = "sensitive"
	StateClear     ClipboardState = "clear"
	StateData      ClipboardState = "data"
	StateUnknown   ClipboardState = "unknown"
)

const envClipboardState = "CLIPBOARD_STATE"

// ParseState is case-insensitive; unrecognised values map to StateUnknown.
func ParseState(v string) ClipboardState {
	switch s := ClipboardState(strings.ToLower(strings.TrimSpace(v))); s {
	case StateNil, StateSensitive, StateClear, StateData:
		return s
	default:
		return StateUnknown
	}
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

var errTerminalInput = errors.New("stdin is a terminal; pipe the clipboard contents into store")

func (a *App) storeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "store",
		Aliases: []string{"s"},
		Short:   "Store a clipboard entry read from stdin",
		Long: `Store reads stdin to the end and saves it as the newest entry, then
removes older byte-identical entries within the dedupe search window.

Blank input is ignored. The clipboard state (--state or CLIPBOARD_STATE)
controls what happens: "nil" and "sensitive" do nothing, "clear" deletes
the newest entry, anything else stores.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := a.state
			if !cmd.Flags().Changed("state") {
				if v := os.Getenv(envClipboardState); v != "" {
					state = v
				}
			}
			return a.store(cmd, ParseState(state))
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&a.state, "state", string(StateData), "clipboard state: nil, sensitive, clear or data (env "+envClipboardState+")")
	fs.IntVar(&a.byteLimit, "byte-limit", config.DefaultByteLimit, "largest entry to store, in bytes (env "+config.EnvByteLimit+")")
	fs.IntVar(&a.dedupeSearchLimit, "dedupe-search-limit", config.DefaultDedupeSearchLimit, "older entries compared for duplicates (env "+config.EnvDedupeSearchLimit+")")
	return cmd
}

func (a *App) store(cmd *cobra.Command, state ClipboardState) error {
	ctx := cmd.Context()
	svc := a.service()

	switch state {
	case StateNil, StateSensitive:
		a.log.Debug(ctx, "clipboard state skipped", "state", string(state))
		return nil
	case StateClear:
		return svc.DeleteNewest(ctx)
	}

	data, err := a.readStdin(cmd.InOrStdin())
	if err != nil {
		return err
	}
	return svc.Store(ctx, data)
}

func (a *App) readStdin(r io.Reader) ([]byte, error) {
	if f, ok := r.(*os.File); ok && isTerminal(int(f.Fd())) {
		return nil, errTerminalInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read new entry from stdin: %w", err)
	}
	return data, nil
}
