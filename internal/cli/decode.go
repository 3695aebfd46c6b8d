package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode",
		Aliases: []string{"d"},
		Short:   "Output the clipboard entry whose id starts the stdin line",
		Long: `Decode reads a line produced by list (typically echoed back by a menu
program), takes the leading decimal id and writes that entry's raw bytes
to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := ParseID(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.service().Decode(cmd.Context(), id, cmd.OutOrStdout())
		},
	}
}
